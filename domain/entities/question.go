package entities

import "time"

// QuestionStatus is the moderation state of a question.
type QuestionStatus string

const (
	QuestionPending  QuestionStatus = "pending"
	QuestionAnswered QuestionStatus = "answered"
)

// Question is an anonymous expert question. Questions are created pending
// with no answer, mutated only by moderators, and never deleted.
type Question struct {
	ID         string         `json:"id" validate:"required"`
	Question   string         `json:"question" validate:"required"`
	Category   string         `json:"category"`
	IsPrivate  bool           `json:"isPrivate"`
	AskedBy    string         `json:"askedBy"`
	AskedAt    time.Time      `json:"askedAt"`
	Answer     string         `json:"answer,omitempty"`
	AnsweredBy string         `json:"answeredBy,omitempty"`
	AnsweredAt *time.Time     `json:"answeredAt,omitempty"`
	Status     QuestionStatus `json:"status" validate:"required,oneof=pending answered"`
}

// Answered reports whether the question is in the answered state.
func (q *Question) Answered() bool { return q.Status == QuestionAnswered }
