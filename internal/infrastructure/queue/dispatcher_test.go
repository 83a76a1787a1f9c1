package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/notification"
)

// chanSender pushes every attempted delivery onto a channel so tests can wait
// for the async workers without sleeping.
type chanSender struct {
	mu        sync.Mutex
	delivered chan notification.Mail
	failFor   map[string]error
}

func newChanSender(capacity int) *chanSender {
	return &chanSender{
		delivered: make(chan notification.Mail, capacity),
		failFor:   make(map[string]error),
	}
}

func (s *chanSender) Send(mail notification.Mail) error {
	s.mu.Lock()
	err := s.failFor[mail.To]
	s.mu.Unlock()
	s.delivered <- mail
	return err
}

func (s *chanSender) wait(t *testing.T) notification.Mail {
	t.Helper()
	select {
	case mail := <-s.delivered:
		return mail
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for delivery")
		return notification.Mail{}
	}
}

func TestDispatcher_DeliversEnqueuedMail(t *testing.T) {
	sender := newChanSender(4)
	d := NewDispatcher(2, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(notification.Mail{Kind: notification.KindCompletion, To: "eve@example.com", Subject: "done"})

	mail := sender.wait(t)
	if mail.To != "eve@example.com" || mail.Subject != "done" {
		t.Fatalf("unexpected mail: %+v", mail)
	}
}

// A failed delivery is dropped; the worker keeps draining its queue.
func TestDispatcher_FailureDoesNotStallWorker(t *testing.T) {
	sender := newChanSender(4)
	sender.failFor["broken@example.com"] = errors.New("smtp: 550")
	d := NewDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(notification.Mail{Kind: notification.KindCompletion, To: "broken@example.com"})
	d.Enqueue(notification.Mail{Kind: notification.KindCompletion, To: "fine@example.com"})

	first := sender.wait(t)
	second := sender.wait(t)
	if first.To != "broken@example.com" || second.To != "fine@example.com" {
		t.Fatalf("unexpected delivery order: %s then %s", first.To, second.To)
	}
}

// Mails to one recipient always land on the same worker, preserving their
// submission order even with many workers.
func TestDispatcher_ShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(8, newChanSender(1), zerolog.Nop())

	first := d.shardIndex("eve@example.com")
	for i := 0; i < 16; i++ {
		if got := d.shardIndex("eve@example.com"); got != first {
			t.Fatalf("shard moved from %d to %d", first, got)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard out of range: %d", first)
	}
}

func TestDispatcher_StopsOnContextCancel(t *testing.T) {
	sender := newChanSender(4)
	d := NewDispatcher(1, sender, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(notification.Mail{To: "eve@example.com"})
	sender.wait(t)

	cancel()
	// Give the worker a moment to observe cancellation, then verify nothing
	// else is delivered.
	time.Sleep(50 * time.Millisecond)
	d.Enqueue(notification.Mail{To: "eve@example.com"})

	select {
	case mail := <-sender.delivered:
		t.Fatalf("unexpected delivery after cancel: %+v", mail)
	case <-time.After(200 * time.Millisecond):
	}
}
