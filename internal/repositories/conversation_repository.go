package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
)

// ConversationRepository defines the interface for conversation data operations
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation *models.Conversation) error
	FindByParticipants(ctx context.Context, userA, userB string) (*models.Conversation, error)
	GetForParticipant(ctx context.Context, conversationID, userID string) (*models.Conversation, error)
	ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error)
	SetLastMessage(ctx context.Context, conversationID, content string, at time.Time) error
}

// MongoConversationRepository implements ConversationRepository for MongoDB
type MongoConversationRepository struct {
	collection *mongo.Collection
}

// NewMongoConversationRepository creates a new MongoConversationRepository
func NewMongoConversationRepository(db *mongo.Database) *MongoConversationRepository {
	return &MongoConversationRepository{collection: db.Collection("conversations")}
}

// CreateConversation inserts a new conversation, assigning id and timestamps.
func (r *MongoConversationRepository) CreateConversation(ctx context.Context, conversation *models.Conversation) error {
	now := time.Now().UTC()
	conversation.ID = uuid.NewString()
	conversation.LastMessage = ""
	conversation.LastMessageTime = now
	conversation.CreatedAt = now
	_, err := r.collection.InsertOne(ctx, conversation)
	return err
}

// FindByParticipants looks up the conversation for an unordered pair of
// users, checking both orderings.
func (r *MongoConversationRepository) FindByParticipants(ctx context.Context, userA, userB string) (*models.Conversation, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"participant1_id": userA, "participant2_id": userB},
			bson.M{"participant1_id": userB, "participant2_id": userA},
		},
	}

	var conversation models.Conversation
	err := r.collection.FindOne(ctx, filter).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// GetForParticipant retrieves a conversation by id, but only if the
// given user is one of its two participants.
func (r *MongoConversationRepository) GetForParticipant(ctx context.Context, conversationID, userID string) (*models.Conversation, error) {
	filter := bson.M{
		"id": conversationID,
		"$or": bson.A{
			bson.M{"participant1_id": userID},
			bson.M{"participant2_id": userID},
		},
	}

	var conversation models.Conversation
	err := r.collection.FindOne(ctx, filter).Decode(&conversation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

// ListByParticipant retrieves every conversation the user takes part
// in, most recent activity first.
func (r *MongoConversationRepository) ListByParticipant(ctx context.Context, userID string) ([]models.Conversation, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"participant1_id": userID},
			bson.M{"participant2_id": userID},
		},
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "last_message_time", Value: -1}}).
		SetLimit(listCap)

	var conversations []models.Conversation
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// SetLastMessage updates the denormalized last-message projection of a
// conversation in a single atomic field set.
func (r *MongoConversationRepository) SetLastMessage(ctx context.Context, conversationID, content string, at time.Time) error {
	update := bson.M{
		"$set": bson.M{
			"last_message":      content,
			"last_message_time": at,
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": conversationID}, update)
	return err
}
