package models

import "time"

// Post categories.
const (
	CategoryComplaint    = "Complaint"
	CategorySuggestion   = "Suggestion"
	CategoryAppreciation = "Appreciation"
)

// Post represents a feedback post stored in MongoDB. The author id is
// kept internally for vote bookkeeping but never serialized; consumers
// only ever see the anonymous tag snapshotted at creation time.
type Post struct {
	ID              string    `json:"id" bson:"id"`
	Title           string    `json:"title" bson:"title"`
	Content         string    `json:"content" bson:"content"`
	Category        string    `json:"category" bson:"category"`
	TargetGroupType string    `json:"target_group_type" bson:"target_group_type"`
	TargetGroupName string    `json:"target_group_name" bson:"target_group_name"`
	AuthorID        string    `json:"-" bson:"author_id"`
	AnonymousTag    string    `json:"anonymous_tag" bson:"anonymous_tag"`
	Upvotes         []string  `json:"upvotes" bson:"upvotes"`
	Downvotes       []string  `json:"downvotes" bson:"downvotes"`
	CommentCount    int       `json:"comment_count" bson:"comment_count"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title           string `json:"title" validate:"required,min=1,max=200"`
	Content         string `json:"content" validate:"required,min=1,max=2000"`
	Category        string `json:"category" validate:"required,oneof=Complaint Suggestion Appreciation"`
	TargetGroupType string `json:"target_group_type" validate:"required,oneof=Department Club House"`
	TargetGroupName string `json:"target_group_name" validate:"required"`
}

// PostFilter narrows post listings. Zero-value fields are ignored.
type PostFilter struct {
	Category        string
	TargetGroupType string
	TargetGroupName string
}
