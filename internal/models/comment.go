package models

import "time"

// Comment represents a comment on a post. Comments are append-only:
// they are never updated or deleted, and the author's anonymous tag is
// snapshotted at creation time.
type Comment struct {
	ID           string    `json:"id" bson:"id"`
	PostID       string    `json:"post_id" bson:"post_id"`
	AuthorID     string    `json:"-" bson:"author_id"`
	AnonymousTag string    `json:"anonymous_tag" bson:"anonymous_tag"`
	Content      string    `json:"content" bson:"content"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
