package repos

import (
	"context"

	"ejama-backend/application/ports"
	"ejama-backend/domain/entities"
	"ejama-backend/infrastructure/persistence"
	apperrors "ejama-backend/pkg/errors"
)

const (
	qaPartition    = "QA"
	questionPrefix = "QUESTION#"
	askedSortKey   = "QA#ASKED"
)

// QuestionRepository persists expert questions in the QA partition and each
// asker's question-id list in the asker's partition.
type QuestionRepository struct {
	store persistence.Store
}

// NewQuestionRepository creates a question repository over the store.
func NewQuestionRepository(store persistence.Store) *QuestionRepository {
	return &QuestionRepository{store: store}
}

var _ ports.QuestionRepository = (*QuestionRepository)(nil)

func questionKey(id string) persistence.Key {
	return persistence.Key{PartitionKey: qaPartition, SortKey: questionPrefix + id}
}

func askedKey(userID string) persistence.Key {
	return persistence.Key{PartitionKey: userPartition(userID), SortKey: askedSortKey}
}

// Put upserts a question under its fixed key.
func (r *QuestionRepository) Put(ctx context.Context, question entities.Question) error {
	return putJSON(ctx, r.store, questionKey(question.ID), question)
}

// Get returns the question by id, or a NotFound error. Moderation targets a
// specific record, so absence is an error here, unlike list reads.
func (r *QuestionRepository) Get(ctx context.Context, id string) (*entities.Question, error) {
	var question entities.Question
	found, err := getJSON(ctx, r.store, questionKey(id), &question)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, apperrors.NewNotFoundError("question " + id)
	}
	return &question, nil
}

// All returns every stored question, public and private.
func (r *QuestionRepository) All(ctx context.Context) ([]entities.Question, error) {
	records, err := r.store.QueryPrefix(ctx, qaPartition, questionPrefix)
	if err != nil {
		return nil, dbError("scan questions", err)
	}
	questions := make([]entities.Question, 0, len(records))
	for _, record := range records {
		var question entities.Question
		if err := decodeValidated(record.Key, record.Data, &question); err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}
	return questions, nil
}

// AskedIDs returns the ids of questions the user submitted, newest first.
func (r *QuestionRepository) AskedIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	found, err := getJSON(ctx, r.store, askedKey(userID), &ids)
	if err != nil {
		return nil, err
	}
	if !found || ids == nil {
		return []string{}, nil
	}
	return ids, nil
}

// PutAskedIDs overwrites the user's question-id list.
func (r *QuestionRepository) PutAskedIDs(ctx context.Context, userID string, ids []string) error {
	return putJSON(ctx, r.store, askedKey(userID), ids)
}
