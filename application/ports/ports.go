// Package ports declares the interfaces the application services depend on.
// Implementations live under infrastructure; services never see the record
// store or key layout directly.
package ports

import (
	"context"

	"ejama-backend/domain/entities"
	"ejama-backend/domain/events"
)

// CommunityRepository persists categories, threads, posts, and per-user
// membership sets.
type CommunityRepository interface {
	Categories(ctx context.Context) ([]entities.Category, error)
	Threads(ctx context.Context) ([]entities.Thread, error)
	Posts(ctx context.Context) ([]entities.Post, error)

	PutCategory(ctx context.Context, category entities.Category) error
	PutThread(ctx context.Context, thread entities.Thread) error
	PutPost(ctx context.Context, post entities.Post) error

	// Membership returns the user's joined category ids, empty when never
	// written.
	Membership(ctx context.Context, userID string) ([]string, error)
	PutMembership(ctx context.Context, userID string, categoryIDs []string) error
}

// QuestionRepository persists expert questions and each asker's question-id
// list.
type QuestionRepository interface {
	Put(ctx context.Context, question entities.Question) error

	// Get returns a question by id, or a NotFound application error.
	Get(ctx context.Context, id string) (*entities.Question, error)

	All(ctx context.Context) ([]entities.Question, error)

	AskedIDs(ctx context.Context, userID string) ([]string, error)
	PutAskedIDs(ctx context.Context, userID string, ids []string) error
}

// LibraryRepository persists per-user bookmark sets and progress maps,
// partitioned by content domain.
type LibraryRepository interface {
	Bookmarks(ctx context.Context, domain entities.ContentDomain, userID string) ([]string, error)
	PutBookmarks(ctx context.Context, domain entities.ContentDomain, userID string, articleIDs []string) error

	Progress(ctx context.Context, domain entities.ContentDomain, userID string) (map[string]float64, error)
	PutProgress(ctx context.Context, domain entities.ContentDomain, userID string, progress map[string]float64) error
}

// PeriodRepository persists per-user period logs keyed by start date.
type PeriodRepository interface {
	Put(ctx context.Context, log entities.PeriodLog) error
	History(ctx context.Context, userID string) ([]entities.PeriodLog, error)
}

// FeedbackRepository stores feedback submissions. Returns the generated
// entry id.
type FeedbackRepository interface {
	Put(ctx context.Context, feedback entities.Feedback) (string, error)
}

// ProfileRepository stores per-user profile data.
type ProfileRepository interface {
	PutPicture(ctx context.Context, userID, data string) error
	// Picture returns the stored picture payload, empty when never set.
	Picture(ctx context.Context, userID string) (string, error)
}

// EventBus publishes domain events. Event delivery is best effort; services
// log publish failures and never fail the request over them.
type EventBus interface {
	Publish(ctx context.Context, event events.DomainEvent) error
	PublishBatch(ctx context.Context, batch []events.DomainEvent) error
}
