package events

import "time"

// DomainEvent is the base interface for all domain events. Events describe
// something that already happened; publishing failures never roll back the
// write that produced them.
type DomainEvent interface {
	GetAggregateID() string
	GetEventType() string
	GetTimestamp() time.Time
}

// BaseEvent provides the common event fields.
type BaseEvent struct {
	AggregateID string    `json:"aggregate_id"`
	EventType   string    `json:"event_type"`
	Timestamp   time.Time `json:"timestamp"`
}

func (e BaseEvent) GetAggregateID() string  { return e.AggregateID }
func (e BaseEvent) GetEventType() string    { return e.EventType }
func (e BaseEvent) GetTimestamp() time.Time { return e.Timestamp }

// CommunityCreated is raised when a user creates a new community category.
type CommunityCreated struct {
	BaseEvent
	CategoryID string `json:"category_id"`
	CreatedBy  string `json:"created_by"`
	Title      string `json:"title"`
}

func NewCommunityCreated(categoryID, createdBy, title string, at time.Time) CommunityCreated {
	return CommunityCreated{
		BaseEvent: BaseEvent{
			AggregateID: categoryID,
			EventType:   "community.created",
			Timestamp:   at,
		},
		CategoryID: categoryID,
		CreatedBy:  createdBy,
		Title:      title,
	}
}

// MembershipChanged is raised when a user joins or leaves a category.
type MembershipChanged struct {
	BaseEvent
	UserID     string `json:"user_id"`
	CategoryID string `json:"category_id"`
	Joined     bool   `json:"joined"`
}

func NewMembershipChanged(userID, categoryID string, joined bool, at time.Time) MembershipChanged {
	return MembershipChanged{
		BaseEvent: BaseEvent{
			AggregateID: userID,
			EventType:   "community.membership_changed",
			Timestamp:   at,
		},
		UserID:     userID,
		CategoryID: categoryID,
		Joined:     joined,
	}
}

// QuestionSubmitted is raised when a new expert question is stored.
type QuestionSubmitted struct {
	BaseEvent
	QuestionID string `json:"question_id"`
	Category   string `json:"category"`
	IsPrivate  bool   `json:"is_private"`
}

func NewQuestionSubmitted(questionID, category string, isPrivate bool, at time.Time) QuestionSubmitted {
	return QuestionSubmitted{
		BaseEvent: BaseEvent{
			AggregateID: questionID,
			EventType:   "qa.submitted",
			Timestamp:   at,
		},
		QuestionID: questionID,
		Category:   category,
		IsPrivate:  isPrivate,
	}
}

// QuestionAnswered is raised on the pending-to-answered transition.
type QuestionAnswered struct {
	BaseEvent
	QuestionID string `json:"question_id"`
	AnsweredBy string `json:"answered_by"`
}

func NewQuestionAnswered(questionID, answeredBy string, at time.Time) QuestionAnswered {
	return QuestionAnswered{
		BaseEvent: BaseEvent{
			AggregateID: questionID,
			EventType:   "qa.answered",
			Timestamp:   at,
		},
		QuestionID: questionID,
		AnsweredBy: answeredBy,
	}
}

// FeedbackReceived is raised when feedback is stored.
type FeedbackReceived struct {
	BaseEvent
	Topic string `json:"topic"`
}

func NewFeedbackReceived(id, topic string, at time.Time) FeedbackReceived {
	return FeedbackReceived{
		BaseEvent: BaseEvent{
			AggregateID: id,
			EventType:   "feedback.received",
			Timestamp:   at,
		},
		Topic: topic,
	}
}
