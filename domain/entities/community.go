package entities

import "time"

// Category is a community forum category. MembersCount is a display counter
// set once at creation; it is not reconciled with actual join/leave activity.
type Category struct {
	ID           string `json:"id" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	MembersCount int    `json:"membersCount" validate:"min=0"`
	CreatedBy    string `json:"createdBy,omitempty"`
}

// Thread belongs to exactly one category. The store does not enforce the
// reference; the community service does.
type Thread struct {
	ID         string    `json:"id" validate:"required"`
	CategoryID string    `json:"categoryId" validate:"required"`
	Title      string    `json:"title" validate:"required"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Post belongs to exactly one thread. Likes only ever increments.
type Post struct {
	ID        string    `json:"id" validate:"required"`
	ThreadID  string    `json:"threadId" validate:"required"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes" validate:"min=0"`
}

// CommunityData is the aggregate payload for the community screen.
type CommunityData struct {
	Categories       []Category `json:"categories"`
	Threads          []Thread   `json:"threads"`
	Posts            []Post     `json:"posts"`
	JoinedCategories []string   `json:"joinedCategories"`
}
