package notification

import (
	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/core/domain"
)

// Enqueuer is the async delivery queue the notifier hands mail to.
type Enqueuer interface {
	Enqueue(mail Mail)
}

// Notifier implements ports.Notifier. It composes the mail and enqueues it;
// delivery happens on the dispatcher's workers, so callers never block on
// SMTP and never see a delivery error.
type Notifier struct {
	queue     Enqueuer
	adminAddr string
	log       zerolog.Logger
}

func NewNotifier(queue Enqueuer, adminAddr string, log zerolog.Logger) *Notifier {
	return &Notifier{queue: queue, adminAddr: adminAddr, log: log}
}

// NewRequestSubmitted alerts the operator about a fresh service request.
func (n *Notifier) NewRequestSubmitted(user *domain.User, service *domain.Service, formData map[string]any) {
	n.queue.Enqueue(Mail{
		Kind:    KindNewRequest,
		To:      n.adminAddr,
		Subject: "New Service Request: " + service.Name,
		Body:    newRequestHTML(service.Name, user.Name, user.Email, formData),
		HTML:    true,
	})
}

// RequestCompleted mails the customer their completion notice, with copy
// selected by service name.
func (n *Notifier) RequestCompleted(name, email, serviceName string) {
	if serviceName == "" {
		serviceName = "Service"
	}
	subject, body := completionContent(serviceName, name)
	n.queue.Enqueue(Mail{
		Kind:    KindCompletion,
		To:      email,
		Subject: subject,
		Body:    body,
	})
}

// ContactMessageReceived alerts the operator about a contact-form message.
func (n *Notifier) ContactMessageReceived(msg *domain.ContactMessage) {
	n.queue.Enqueue(Mail{
		Kind:    KindContact,
		To:      n.adminAddr,
		Subject: "New Contact Message from " + msg.Name,
		Body:    contactHTML(msg.Name, msg.Email, msg.Message),
		HTML:    true,
	})
}
