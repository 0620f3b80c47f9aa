package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sulav-subedi/BNKS-Student-voice/internal/models"
)

func registerUser(t *testing.T, repo *mockUserRepo, name string) *models.User {
	t.Helper()
	u := &models.User{Name: name, Email: name + "@bnks.edu.np", Role: models.RoleStudent, AnonymousTag: "Calm" + name + "-100"}
	require.NoError(t, repo.CreateUser(context.Background(), u))
	return u
}

func TestGetOrCreateConversationDedup(t *testing.T) {
	userRepo := newMockUserRepo()
	convRepo := newMockConversationRepo()
	h := NewConversationHandler(convRepo, userRepo)

	alice := registerUser(t, userRepo, "Alice")
	bob := registerUser(t, userRepo, "Bob")

	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/conversations?other_user_id="+bob.ID, "", alice)
	require.NoError(t, h.GetOrCreateConversation(c))
	var first models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))

	// Same pair, reversed initiator: same conversation comes back.
	c, rec = newJSONContext(e, http.MethodPost, "/api/conversations?other_user_id="+alice.ID, "", bob)
	require.NoError(t, h.GetOrCreateConversation(c))
	var second models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, convRepo.conversations, 1)
}

func TestGetOrCreateConversationWithSelf(t *testing.T) {
	userRepo := newMockUserRepo()
	h := NewConversationHandler(newMockConversationRepo(), userRepo)
	alice := registerUser(t, userRepo, "Alice")

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/conversations?other_user_id="+alice.ID, "", alice)

	assert.Equal(t, http.StatusBadRequest, httpStatus(h.GetOrCreateConversation(c)))
}

func TestGetOrCreateConversationUnknownUser(t *testing.T) {
	userRepo := newMockUserRepo()
	h := NewConversationHandler(newMockConversationRepo(), userRepo)
	alice := registerUser(t, userRepo, "Alice")

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/conversations?other_user_id=user-999", "", alice)

	assert.Equal(t, http.StatusNotFound, httpStatus(h.GetOrCreateConversation(c)))
}

func TestGetOrCreateConversationMissingParam(t *testing.T) {
	userRepo := newMockUserRepo()
	h := NewConversationHandler(newMockConversationRepo(), userRepo)
	alice := registerUser(t, userRepo, "Alice")

	c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/conversations", "", alice)

	assert.Equal(t, http.StatusBadRequest, httpStatus(h.GetOrCreateConversation(c)))
}

func TestListConversationsNewestActivityFirst(t *testing.T) {
	userRepo := newMockUserRepo()
	convRepo := newMockConversationRepo()
	msgRepo := newMockMessageRepo()
	convHandler := NewConversationHandler(convRepo, userRepo)
	msgHandler := NewMessageHandler(msgRepo, convRepo)

	alice := registerUser(t, userRepo, "Alice")
	bob := registerUser(t, userRepo, "Bob")
	carol := registerUser(t, userRepo, "Carol")

	e := newTestEcho()

	c, rec := newJSONContext(e, http.MethodPost, "/api/conversations?other_user_id="+bob.ID, "", alice)
	require.NoError(t, convHandler.GetOrCreateConversation(c))
	var withBob models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withBob))

	c, rec = newJSONContext(e, http.MethodPost, "/api/conversations?other_user_id="+carol.ID, "", alice)
	require.NoError(t, convHandler.GetOrCreateConversation(c))
	var withCarol models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &withCarol))

	// A message in the older conversation bumps it to the top.
	body := `{"conversation_id":"` + withBob.ID + `","content":"hi Bob"}`
	c, _ = newJSONContext(e, http.MethodPost, "/api/messages", body, alice)
	require.NoError(t, msgHandler.SendMessage(c))

	c, rec = newJSONContext(e, http.MethodGet, "/api/conversations", "", alice)
	require.NoError(t, convHandler.ListConversations(c))
	var conversations []models.Conversation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &conversations))

	require.Len(t, conversations, 2)
	assert.Equal(t, withBob.ID, conversations[0].ID)
	assert.Equal(t, withCarol.ID, conversations[1].ID)
}
