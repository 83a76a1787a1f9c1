// Package notification composes and delivers the transactional emails the
// agency sends: operator alerts for new submissions and customer mails when
// a request is completed. Delivery is always best-effort.
package notification

// Mail kinds, used as metric labels.
const (
	KindNewRequest = "admin_new_request"
	KindCompletion = "completion"
	KindContact    = "admin_contact"
)

// Mail is a single outbound message.
type Mail struct {
	Kind    string
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Sender delivers a single mail. Implementations make one attempt; the
// dispatcher owns retry policy (currently: none, log and drop).
type Sender interface {
	Send(mail Mail) error
}
