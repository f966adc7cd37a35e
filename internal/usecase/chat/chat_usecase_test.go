package chat_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/storage"
	"github.com/soulmatch/soulmatch-backend/internal/notify"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
	"github.com/soulmatch/soulmatch-backend/internal/repository/kv"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/chat"
)

type chatFixture struct {
	store            *storage.MemoryStore
	conversationRepo repository.ConversationRepository
	broadcaster      *notify.Broadcaster
	uc               *chat.ChatUseCase
}

func setupChatTest(replyDelay time.Duration) *chatFixture {
	store := storage.NewMemoryStore()
	conversationRepo := kv.NewConversationRepository(store)
	broadcaster := notify.NewBroadcaster()
	log := logger.NewNop()
	simulator := chat.NewSimulator(conversationRepo, nil, broadcaster, replyDelay, log)
	uc := chat.NewChatUseCase(conversationRepo, simulator, broadcaster, log)
	return &chatFixture{
		store:            store,
		conversationRepo: conversationRepo,
		broadcaster:      broadcaster,
		uc:               uc,
	}
}

// A delay long enough that scheduled replies never fire within a test.
const neverDelay = time.Minute

func TestStartSeedsSystemMessage(t *testing.T) {
	f := setupChatTest(neverDelay)
	ctx := context.Background()

	conversation, err := f.uc.Start(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, conversation.MatchID)
	assert.Equal(t, "Alex", conversation.MatchName)
	assert.Equal(t, "Thoughtful Conversationalist", conversation.MatchPersonalityType)
	assert.Equal(t, 94, conversation.Compatibility)
	require.Len(t, conversation.Messages, 1)
	assert.Equal(t, domain.SenderSystem, conversation.Messages[0].Sender)
	assert.Contains(t, conversation.Messages[0].Text, "You've been matched with Alex!")

	_, err = time.Parse(time.RFC3339, conversation.Messages[0].Timestamp)
	assert.NoError(t, err)
}

func TestStartUnknownCandidate(t *testing.T) {
	f := setupChatTest(neverDelay)

	_, err := f.uc.Start(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCandidateNotFound)
}

func TestStartTwiceResetsHistory(t *testing.T) {
	f := setupChatTest(neverDelay)
	ctx := context.Background()

	_, err := f.uc.Start(ctx, 1)
	require.NoError(t, err)

	message, err := f.uc.Send(ctx, 1, "hello there")
	require.NoError(t, err)
	require.NotNil(t, message)

	_, err = f.uc.Start(ctx, 1)
	require.NoError(t, err)

	conversations, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	// History is reset to a single system message, not accumulated
	require.Len(t, conversations[0].Messages, 1)
	assert.Equal(t, domain.SenderSystem, conversations[0].Messages[0].Sender)
}

func TestSendWhitespaceIsNoOp(t *testing.T) {
	f := setupChatTest(neverDelay)
	ctx := context.Background()

	_, err := f.uc.Start(ctx, 1)
	require.NoError(t, err)

	message, err := f.uc.Send(ctx, 1, "   \t\n")
	require.NoError(t, err)
	assert.Nil(t, message)

	conversation, err := f.uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, conversation.Messages, 1)
}

func TestSendToMissingConversationIsNoOp(t *testing.T) {
	f := setupChatTest(neverDelay)

	message, err := f.uc.Send(context.Background(), 1, "hello")
	require.NoError(t, err)
	assert.Nil(t, message)

	conversations, err := f.uc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestSendAppendsUserMessageThenSimulatedReply(t *testing.T) {
	f := setupChatTest(20 * time.Millisecond)
	ctx := context.Background()

	_, err := f.uc.Start(ctx, 1)
	require.NoError(t, err)

	message, err := f.uc.Send(ctx, 1, "  hello  ")
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, domain.SenderUser, message.Sender)
	assert.Equal(t, "hello", message.Text)

	// The user message is persisted immediately, appended last
	conversation, err := f.uc.Get(ctx, 1)
	require.NoError(t, err)
	require.Len(t, conversation.Messages, 2)
	assert.Equal(t, message.ID, conversation.Messages[1].ID)

	// After the delay exactly one match reply lands after it
	require.Eventually(t, func() bool {
		c, err := f.uc.Get(ctx, 1)
		return err == nil && len(c.Messages) == 3
	}, time.Second, 10*time.Millisecond)

	conversation, err = f.uc.Get(ctx, 1)
	require.NoError(t, err)
	reply := conversation.Messages[2]
	assert.Equal(t, domain.SenderMatch, reply.Sender)
	assert.NotEmpty(t, reply.Text)
	assert.Greater(t, reply.ID, message.ID)

	// No further replies show up
	time.Sleep(60 * time.Millisecond)
	conversation, err = f.uc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, conversation.Messages, 3)
}

func TestReplySkippedWhenConversationCleared(t *testing.T) {
	f := setupChatTest(30 * time.Millisecond)
	ctx := context.Background()

	_, err := f.uc.Start(ctx, 1)
	require.NoError(t, err)

	_, err = f.uc.Send(ctx, 1, "hello")
	require.NoError(t, err)

	// Logout clears the store before the reply fires
	require.NoError(t, f.store.Clear(ctx))

	time.Sleep(100 * time.Millisecond)

	conversations, err := f.uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestListOrdersByLastActivity(t *testing.T) {
	f := setupChatTest(neverDelay)
	ctx := context.Background()

	base := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	seed := func(matchID int, last time.Time) {
		require.NoError(t, f.conversationRepo.Upsert(ctx, &domain.Conversation{
			MatchID: matchID,
			Messages: []domain.Message{
				{ID: 1, Sender: domain.SenderSystem, Text: "matched", Timestamp: base.Add(-time.Hour).Format(time.RFC3339)},
				{ID: 2, Sender: domain.SenderUser, Text: "hi", Timestamp: last.Format(time.RFC3339)},
			},
		}))
	}

	seed(1, base)
	seed(2, base.Add(5*time.Second))
	seed(3, base.Add(1*time.Second))

	conversations, err := f.uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, conversations, 3)

	order := []int{conversations[0].MatchID, conversations[1].MatchID, conversations[2].MatchID}
	assert.Equal(t, []int{2, 3, 1}, order)
}

func TestMutationsPublishEvents(t *testing.T) {
	f := setupChatTest(20 * time.Millisecond)
	ctx := context.Background()

	events, cancel := f.uc.Subscribe()
	defer cancel()

	_, err := f.uc.Start(ctx, 1)
	require.NoError(t, err)

	select {
	case event := <-events:
		assert.Equal(t, 1, event.MatchID)
	case <-time.After(time.Second):
		t.Fatal("no event after Start")
	}

	_, err = f.uc.Send(ctx, 1, "hello")
	require.NoError(t, err)

	// One event for the user message, one for the simulated reply
	for i := 0; i < 2; i++ {
		select {
		case event := <-events:
			assert.Equal(t, 1, event.MatchID)
		case <-time.After(time.Second):
			t.Fatalf("missing event %d after Send", i+1)
		}
	}
}
