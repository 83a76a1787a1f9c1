package domain

import (
	"errors"
	"time"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

// PortfolioItem is a published case study shown on the marketing site.
type PortfolioItem struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description" bson:"description"`
	ImageURL    string    `json:"image_url" bson:"image_url"`
	Category    string    `json:"category" bson:"category"`
	Client      string    `json:"client,omitempty" bson:"client,omitempty"`
	Challenge   string    `json:"challenge,omitempty" bson:"challenge,omitempty"`
	Strategy    string    `json:"strategy,omitempty" bson:"strategy,omitempty"`
	Results     string    `json:"results,omitempty" bson:"results,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
