package domain

import (
	"errors"
	"time"
)

// Field types accepted in a service's intake form schema.
const (
	FieldText     = "text"
	FieldTextarea = "textarea"
	FieldNumber   = "number"
	FieldURL      = "url"
	FieldSelect   = "select"
)

var ErrServiceNotFound = errors.New("service not found")

// FormField describes a single input in a service's intake form.
// Options is only meaningful for select fields.
type FormField struct {
	Name     string   `json:"name" bson:"name"`
	Label    string   `json:"label" bson:"label"`
	Type     string   `json:"type" bson:"type"`
	Required bool     `json:"required" bson:"required"`
	Options  []string `json:"options,omitempty" bson:"options,omitempty"`
}

// Service is a catalog entry customers submit requests against. Fields
// defines the dynamic intake form rendered and validated per service.
type Service struct {
	ID          string      `json:"id" bson:"_id,omitempty"`
	Name        string      `json:"name" bson:"name"`
	Description string      `json:"description" bson:"description"`
	Fields      []FormField `json:"fields" bson:"fields"`
	CreatedBy   string      `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt   time.Time   `json:"created_at" bson:"created_at"`
}

// RequiredFields returns the names of all required form fields.
func (s *Service) RequiredFields() []string {
	var out []string
	for _, f := range s.Fields {
		if f.Required {
			out = append(out, f.Name)
		}
	}
	return out
}
