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

// listCap bounds every list retrieval. There is no pagination.
const listCap = 1000

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id string) (*models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
	ListPostsByTargetGroup(ctx context.Context, groupType, groupName string) ([]models.Post, error)
	RemoveUpvote(ctx context.Context, postID, userID string) (bool, error)
	CastUpvote(ctx context.Context, postID, userID string) error
	RemoveDownvote(ctx context.Context, postID, userID string) (bool, error)
	CastDownvote(ctx context.Context, postID, userID string) error
	IncrementCommentCount(ctx context.Context, postID string) error
}

// MongoPostRepository implements PostRepository for MongoDB
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// CreatePost inserts a new post, assigning id, creation time, empty
// vote sets and a zero comment count.
func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	post.ID = uuid.NewString()
	post.CreatedAt = time.Now().UTC()
	post.Upvotes = []string{}
	post.Downvotes = []string{}
	post.CommentCount = 0
	_, err := r.collection.InsertOne(ctx, post)
	return err
}

// GetPostByID retrieves a post by id.
func (r *MongoPostRepository) GetPostByID(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts retrieves posts matching the filter, newest first.
func (r *MongoPostRepository) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.TargetGroupType != "" {
		query["target_group_type"] = filter.TargetGroupType
	}
	if filter.TargetGroupName != "" {
		query["target_group_name"] = filter.TargetGroupName
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listCap)

	var posts []models.Post
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// ListPostsByTargetGroup retrieves every post targeting the exact
// group, for score computation.
func (r *MongoPostRepository) ListPostsByTargetGroup(ctx context.Context, groupType, groupName string) ([]models.Post, error) {
	query := bson.M{
		"target_group_type": groupType,
		"target_group_name": groupName,
	}

	var posts []models.Post
	cursor, err := r.collection.Find(ctx, query, options.Find().SetLimit(listCap))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// RemoveUpvote removes the user's upvote if present. The filter
// matches on membership so the pull is conditional and atomic; the
// return value reports whether a vote was actually removed.
func (r *MongoPostRepository) RemoveUpvote(ctx context.Context, postID, userID string) (bool, error) {
	return r.removeVote(ctx, postID, userID, "upvotes")
}

// CastUpvote adds the user's upvote and clears any downvote by the
// same user within a single document update, so the two vote sets can
// never both contain the user.
func (r *MongoPostRepository) CastUpvote(ctx context.Context, postID, userID string) error {
	return r.castVote(ctx, postID, userID, "upvotes", "downvotes")
}

// RemoveDownvote removes the user's downvote if present.
func (r *MongoPostRepository) RemoveDownvote(ctx context.Context, postID, userID string) (bool, error) {
	return r.removeVote(ctx, postID, userID, "downvotes")
}

// CastDownvote adds the user's downvote and clears any upvote by the
// same user within a single document update.
func (r *MongoPostRepository) CastDownvote(ctx context.Context, postID, userID string) error {
	return r.castVote(ctx, postID, userID, "downvotes", "upvotes")
}

func (r *MongoPostRepository) removeVote(ctx context.Context, postID, userID, field string) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"id": postID, field: userID},
		bson.M{"$pull": bson.M{field: userID}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *MongoPostRepository) castVote(ctx context.Context, postID, userID, field, oppositeField string) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"id": postID},
		bson.M{
			"$addToSet": bson.M{field: userID},
			"$pull":     bson.M{oppositeField: userID},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementCommentCount increments the denormalized comment count of a post.
func (r *MongoPostRepository) IncrementCommentCount(ctx context.Context, postID string) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"id": postID}, bson.M{"$inc": bson.M{"comment_count": 1}})
	return err
}
