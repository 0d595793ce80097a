// Package questions forwards community-sourced questions into the
// relational questions table, where a separate review tool consumes them.
package questions

import (
	"context"
	"time"
)

// Item is a row in the relational questions table.
type Item struct {
	ID        int64     `json:"id,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	Question  string    `json:"question"`
	Category  string    `json:"category,omitempty"`
	Answered  bool      `json:"answered"`
	Answer    *string   `json:"answer,omitempty"`
}

// Sink accepts questions and lists what has been collected so far.
type Sink interface {
	Insert(ctx context.Context, question, category string) error
	List(ctx context.Context) ([]Item, error)
}
