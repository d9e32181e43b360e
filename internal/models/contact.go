package models

import "time"

// ContactMessage represents a message submitted via the contact form.
type ContactMessage struct {
	Name      string     `bson:"name" json:"name" validate:"required"`
	Email     string     `bson:"email" json:"email" validate:"required"`
	Message   string     `bson:"message" json:"message" validate:"required"`
	CreatedAt *time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
