package domain

import (
	"errors"
	"time"
)

// RequestStatus represents the lifecycle state of a service request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "pending"
	StatusInProgress RequestStatus = "in_progress"
	StatusCompleted  RequestStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// Completed is terminal; re-asserting completed is a tolerated no-op.
var validTransitions = map[RequestStatus][]RequestStatus{
	StatusPending:    {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted, StatusPending},
	StatusCompleted:  {StatusCompleted},
}

var ErrRequestNotFound = errors.New("request not found")
var ErrInvalidStatus = errors.New("unknown request status")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrForbidden = errors.New("access forbidden")
var ErrMissingField = errors.New("missing required field")

// IsValid reports whether s is one of the recognised statuses.
func (s RequestStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is allowed.
func (s RequestStatus) CanTransitionTo(next RequestStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ServiceRequest binds a customer to a catalog service with the intake form
// values they submitted. UserID and ServiceID are weak references: deleting
// the referenced user or service leaves the request intact.
type ServiceRequest struct {
	ID        string         `json:"id" bson:"_id,omitempty"`
	UserID    string         `json:"user_id" bson:"user_id"`
	ServiceID string         `json:"service_id" bson:"service_id"`
	FormData  map[string]any `json:"form_data" bson:"form_data"`
	Status    RequestStatus  `json:"status" bson:"status"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}
