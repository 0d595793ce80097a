package questions

import (
	"context"

	"github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	apperrors "ejama-backend/pkg/errors"
)

// PostgrestSink writes questions to the Supabase "questions" table.
type PostgrestSink struct {
	client *supabase.Client
	table  string
	logger *zap.Logger
}

var _ Sink = (*PostgrestSink)(nil)

// NewPostgrestSink builds a sink over an existing Supabase client.
func NewPostgrestSink(client *supabase.Client, table string, logger *zap.Logger) *PostgrestSink {
	if table == "" {
		table = "questions"
	}
	return &PostgrestSink{client: client, table: table, logger: logger}
}

// Insert stores a new unanswered question. The postgrest builder does not
// accept a context; ctx is kept for interface symmetry.
func (s *PostgrestSink) Insert(ctx context.Context, question, category string) error {
	row := Item{Question: question, Category: category, Answered: false}
	_, _, err := s.client.From(s.table).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		s.logger.Error("question insert failed", zap.Error(err))
		return apperrors.NewExternalError("questions table", err)
	}
	return nil
}

// List returns all collected questions, newest first.
func (s *PostgrestSink) List(ctx context.Context) ([]Item, error) {
	var rows []Item
	_, err := s.client.From(s.table).
		Select("id,created_at,question,category,answered,answer", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&rows)
	if err != nil {
		s.logger.Error("question list failed", zap.Error(err))
		return nil, apperrors.NewExternalError("questions table", err)
	}
	return rows, nil
}
