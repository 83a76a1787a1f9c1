package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/api/metrics"
	"github.com/brightweb/agency-api/internal/notification"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher delivers outbound mail on a fixed set of workers, sharded by
// recipient so mails to one address keep their submission order. Delivery is
// single-attempt; failures are logged and dropped, never surfaced to the
// operation that queued the mail.
type Dispatcher struct {
	workers []chan notification.Mail
	sender  notification.Sender
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender notification.Sender, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan notification.Mail, numWorkers),
		sender:  sender,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan notification.Mail, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands a mail to the worker responsible for its recipient.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(mail notification.Mail) {
	d.workers[d.shardIndex(mail.To)] <- mail
}

// shardIndex maps a recipient deterministically to a worker index.
func (d *Dispatcher) shardIndex(recipient string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(recipient))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan notification.Mail) {
	for {
		select {
		case <-ctx.Done():
			return
		case mail, ok := <-ch:
			if !ok {
				return
			}
			if err := d.sender.Send(mail); err != nil {
				metrics.MailsFailedTotal.WithLabelValues(mail.Kind).Inc()
				d.log.Error().Err(err).
					Str("kind", mail.Kind).
					Str("to", mail.To).
					Int("worker_id", id).
					Msg("mail delivery failed")
				continue
			}
			metrics.MailsSentTotal.WithLabelValues(mail.Kind).Inc()
			d.log.Info().Str("kind", mail.Kind).Str("to", mail.To).Msg("mail delivered")
		}
	}
}
