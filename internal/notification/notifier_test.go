package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/brightweb/agency-api/internal/core/domain"
)

type captureQueue struct {
	mails []Mail
}

func (q *captureQueue) Enqueue(mail Mail) {
	q.mails = append(q.mails, mail)
}

func TestNotifier_NewRequestSubmitted(t *testing.T) {
	q := &captureQueue{}
	n := NewNotifier(q, "admin@agency.test", zerolog.Nop())

	user := &domain.User{Name: "Eve", Email: "eve@example.com"}
	svc := &domain.Service{Name: "SEO Optimization"}
	n.NewRequestSubmitted(user, svc, map[string]any{
		"website_url": "https://example.com",
		"budget":      500,
	})

	if len(q.mails) != 1 {
		t.Fatalf("expected one mail, got %d", len(q.mails))
	}
	mail := q.mails[0]
	if mail.Kind != KindNewRequest {
		t.Fatalf("unexpected kind: %s", mail.Kind)
	}
	if mail.To != "admin@agency.test" {
		t.Fatalf("operator alert must go to the admin address, got %s", mail.To)
	}
	if !mail.HTML {
		t.Fatalf("operator alert should be HTML")
	}
	if mail.Subject != "New Service Request: SEO Optimization" {
		t.Fatalf("unexpected subject: %s", mail.Subject)
	}
	for _, want := range []string{"Eve", "eve@example.com", "website url", "https://example.com", "budget", "500"} {
		if !strings.Contains(mail.Body, want) {
			t.Fatalf("body missing %q:\n%s", want, mail.Body)
		}
	}
}

func TestNotifier_RequestCompleted_TemplateSelection(t *testing.T) {
	cases := []struct {
		serviceName string
		wantSubject string
	}{
		{"SEO Optimization", "SEO Optimization Completed"},
		{"Social Media Marketing", "Social Media Marketing Completed"},
		{"Paid Advertising", "Paid Advertising Completed"},
		{"Content Marketing", "Content Marketing Completed"},
		{"Email Marketing", "Service Completed"},
		{"", "Service Completed"},
	}

	for _, tc := range cases {
		t.Run(tc.serviceName, func(t *testing.T) {
			q := &captureQueue{}
			n := NewNotifier(q, "admin@agency.test", zerolog.Nop())

			n.RequestCompleted("Eve", "eve@example.com", tc.serviceName)

			if len(q.mails) != 1 {
				t.Fatalf("expected one mail, got %d", len(q.mails))
			}
			mail := q.mails[0]
			if mail.Kind != KindCompletion {
				t.Fatalf("unexpected kind: %s", mail.Kind)
			}
			if mail.To != "eve@example.com" {
				t.Fatalf("completion mail must go to the customer, got %s", mail.To)
			}
			if mail.Subject != tc.wantSubject {
				t.Fatalf("expected subject %q, got %q", tc.wantSubject, mail.Subject)
			}
			if !strings.Contains(mail.Body, "Hi Eve,") {
				t.Fatalf("body missing greeting:\n%s", mail.Body)
			}
			if mail.HTML {
				t.Fatalf("completion mail is plain text")
			}
		})
	}
}

func TestNotifier_ContactMessageReceived(t *testing.T) {
	q := &captureQueue{}
	n := NewNotifier(q, "admin@agency.test", zerolog.Nop())

	n.ContactMessageReceived(&domain.ContactMessage{
		Name:      "Frank",
		Email:     "frank@example.com",
		Message:   "Do you do <b>rebrands</b>?",
		CreatedAt: time.Now(),
	})

	if len(q.mails) != 1 {
		t.Fatalf("expected one mail, got %d", len(q.mails))
	}
	mail := q.mails[0]
	if mail.Kind != KindContact || mail.To != "admin@agency.test" {
		t.Fatalf("unexpected mail: %+v", mail)
	}
	if strings.Contains(mail.Body, "<b>rebrands</b>") {
		t.Fatalf("message content must be escaped:\n%s", mail.Body)
	}
	if !strings.Contains(mail.Body, "&lt;b&gt;rebrands&lt;/b&gt;") {
		t.Fatalf("expected escaped markup:\n%s", mail.Body)
	}
}
