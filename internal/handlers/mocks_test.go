package handlers

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
	"github.com/Sulav-subedi/BNKS-Student-voice/internal/repositories"
)

// In-memory repository implementations for handler tests.

type mockUserRepo struct {
	seq   int
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) CreateUser(_ context.Context, user *models.User) error {
	m.seq++
	user.ID = fmt.Sprintf("user-%d", m.seq)
	user.CreatedAt = time.Now().UTC()
	clone := *user
	m.users[user.ID] = &clone
	return nil
}

func (m *mockUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := m.users[id]; ok {
		clone := *u
		return &clone, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockUserRepo) SearchUsers(_ context.Context, pattern, excludeUserID string, limit int64) ([]models.User, error) {
	needle := strings.ToLower(pattern)
	var out []models.User
	for _, u := range m.users {
		if u.ID == excludeUserID {
			continue
		}
		if strings.Contains(strings.ToLower(u.AnonymousTag), needle) ||
			strings.Contains(strings.ToLower(u.Name), needle) {
			out = append(out, *u)
		}
		if int64(len(out)) == limit {
			break
		}
	}
	return out, nil
}

type mockPostRepo struct {
	seq   int
	posts map[string]*models.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{posts: make(map[string]*models.Post)}
}

func (m *mockPostRepo) CreatePost(_ context.Context, post *models.Post) error {
	m.seq++
	post.ID = fmt.Sprintf("post-%d", m.seq)
	post.CreatedAt = time.Now().UTC()
	post.Upvotes = []string{}
	post.Downvotes = []string{}
	post.CommentCount = 0
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *mockPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	if p, ok := m.posts[id]; ok {
		clone := *p
		clone.Upvotes = append([]string{}, p.Upvotes...)
		clone.Downvotes = append([]string{}, p.Downvotes...)
		return &clone, nil
	}
	return nil, repositories.ErrNotFound
}

func (m *mockPostRepo) ListPosts(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
	var out []models.Post
	for _, p := range m.posts {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.TargetGroupType != "" && p.TargetGroupType != filter.TargetGroupType {
			continue
		}
		if filter.TargetGroupName != "" && p.TargetGroupName != filter.TargetGroupName {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *mockPostRepo) ListPostsByTargetGroup(ctx context.Context, groupType, groupName string) ([]models.Post, error) {
	return m.ListPosts(ctx, models.PostFilter{TargetGroupType: groupType, TargetGroupName: groupName})
}

func (m *mockPostRepo) RemoveUpvote(_ context.Context, postID, userID string) (bool, error) {
	p, ok := m.posts[postID]
	if !ok {
		return false, nil
	}
	if !containsString(p.Upvotes, userID) {
		return false, nil
	}
	p.Upvotes = removeString(p.Upvotes, userID)
	return true, nil
}

func (m *mockPostRepo) CastUpvote(_ context.Context, postID, userID string) error {
	p, ok := m.posts[postID]
	if !ok {
		return repositories.ErrNotFound
	}
	if !containsString(p.Upvotes, userID) {
		p.Upvotes = append(p.Upvotes, userID)
	}
	p.Downvotes = removeString(p.Downvotes, userID)
	return nil
}

func (m *mockPostRepo) RemoveDownvote(_ context.Context, postID, userID string) (bool, error) {
	p, ok := m.posts[postID]
	if !ok {
		return false, nil
	}
	if !containsString(p.Downvotes, userID) {
		return false, nil
	}
	p.Downvotes = removeString(p.Downvotes, userID)
	return true, nil
}

func (m *mockPostRepo) CastDownvote(_ context.Context, postID, userID string) error {
	p, ok := m.posts[postID]
	if !ok {
		return repositories.ErrNotFound
	}
	if !containsString(p.Downvotes, userID) {
		p.Downvotes = append(p.Downvotes, userID)
	}
	p.Upvotes = removeString(p.Upvotes, userID)
	return nil
}

func (m *mockPostRepo) IncrementCommentCount(_ context.Context, postID string) error {
	if p, ok := m.posts[postID]; ok {
		p.CommentCount++
	}
	return nil
}

type mockCommentRepo struct {
	seq      int
	comments []models.Comment
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{}
}

func (m *mockCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	m.seq++
	comment.ID = fmt.Sprintf("comment-%d", m.seq)
	comment.CreatedAt = time.Now().UTC()
	m.comments = append(m.comments, *comment)
	return nil
}

func (m *mockCommentRepo) ListCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockConversationRepo struct {
	seq           int
	conversations map[string]*models.Conversation
}

func newMockConversationRepo() *mockConversationRepo {
	return &mockConversationRepo{conversations: make(map[string]*models.Conversation)}
}

func (m *mockConversationRepo) CreateConversation(_ context.Context, conversation *models.Conversation) error {
	m.seq++
	now := time.Now().UTC()
	conversation.ID = fmt.Sprintf("conv-%d", m.seq)
	conversation.LastMessage = ""
	conversation.LastMessageTime = now
	conversation.CreatedAt = now
	clone := *conversation
	m.conversations[conversation.ID] = &clone
	return nil
}

func (m *mockConversationRepo) FindByParticipants(_ context.Context, userA, userB string) (*models.Conversation, error) {
	for _, c := range m.conversations {
		if (c.Participant1ID == userA && c.Participant2ID == userB) ||
			(c.Participant1ID == userB && c.Participant2ID == userA) {
			clone := *c
			return &clone, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *mockConversationRepo) GetForParticipant(_ context.Context, conversationID, userID string) (*models.Conversation, error) {
	c, ok := m.conversations[conversationID]
	if !ok || !c.Involves(userID) {
		return nil, repositories.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (m *mockConversationRepo) ListByParticipant(_ context.Context, userID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range m.conversations {
		if c.Involves(userID) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastMessageTime.After(out[j].LastMessageTime) })
	return out, nil
}

func (m *mockConversationRepo) SetLastMessage(_ context.Context, conversationID, content string, at time.Time) error {
	if c, ok := m.conversations[conversationID]; ok {
		c.LastMessage = content
		c.LastMessageTime = at
	}
	return nil
}

type mockMessageRepo struct {
	seq      int
	messages []models.Message
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{}
}

func (m *mockMessageRepo) CreateMessage(_ context.Context, message *models.Message) error {
	m.seq++
	message.ID = fmt.Sprintf("msg-%d", m.seq)
	message.CreatedAt = time.Now().UTC()
	m.messages = append(m.messages, *message)
	return nil
}

func (m *mockMessageRepo) ListByConversationID(_ context.Context, conversationID string) ([]models.Message, error) {
	var out []models.Message
	for _, msg := range m.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	return out, nil
}

func containsString(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func removeString(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}
