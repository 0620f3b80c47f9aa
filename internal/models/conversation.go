package models

import "time"

// Conversation links an unordered pair of users. At most one
// conversation exists per pair; lookups check both orderings. The last
// message is denormalized onto the document for cheap inbox listings.
type Conversation struct {
	ID              string    `json:"id" bson:"id"`
	Participant1ID  string    `json:"participant1_id" bson:"participant1_id"`
	Participant2ID  string    `json:"participant2_id" bson:"participant2_id"`
	LastMessage     string    `json:"last_message" bson:"last_message"`
	LastMessageTime time.Time `json:"last_message_time" bson:"last_message_time"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

// Involves reports whether the given user is one of the two participants.
func (c *Conversation) Involves(userID string) bool {
	return c.Participant1ID == userID || c.Participant2ID == userID
}
