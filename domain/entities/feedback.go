package entities

import "time"

// Feedback is an unauthenticated feedback submission.
type Feedback struct {
	Name      string    `json:"name,omitempty"`
	Email     string    `json:"email,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Message   string    `json:"message" validate:"required"`
	Timestamp time.Time `json:"timestamp"`
}
