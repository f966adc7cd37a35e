package chat

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/soulmatch/soulmatch-backend/internal/catalog"
	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/notify"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

// ChatUseCase drives the conversation lifecycle: start a thread with a
// candidate, append user messages, and hand replies off to the
// simulator.
type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	simulator        *Simulator
	broadcaster      *notify.Broadcaster
	log              *logger.Logger
}

func NewChatUseCase(
	conversationRepo repository.ConversationRepository,
	simulator *Simulator,
	broadcaster *notify.Broadcaster,
	log *logger.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		conversationRepo: conversationRepo,
		simulator:        simulator,
		broadcaster:      broadcaster,
		log:              log,
	}
}

// Start creates a conversation with the candidate, seeded with a
// single system message. Starting again with the same candidate
// replaces the existing thread and discards its history; that reset is
// observable, intended behavior.
func (uc *ChatUseCase) Start(ctx context.Context, matchID int) (*domain.Conversation, error) {
	candidate, err := catalog.GetByID(matchID)
	if err != nil {
		return nil, err
	}

	conversation := &domain.Conversation{
		MatchID:              candidate.ID,
		MatchName:            candidate.Name,
		MatchPersonalityType: candidate.PersonalityType,
		Compatibility:        candidate.Compatibility,
		Messages: []domain.Message{
			{
				ID:        time.Now().UnixMilli(),
				Sender:    domain.SenderSystem,
				Text:      fmt.Sprintf("You've been matched with %s! Start with a personality-based conversation.", candidate.Name),
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			},
		},
	}

	if err := uc.conversationRepo.Upsert(ctx, conversation); err != nil {
		return nil, err
	}

	uc.broadcaster.Publish(notify.Event{MatchID: candidate.ID})
	uc.log.Info("conversation started", "match_id", candidate.ID, "match_name", candidate.Name)
	return conversation, nil
}

// Send appends a user message and schedules a simulated reply. A
// trimmed-empty text or a missing conversation is a silent no-op: no
// message is created and nothing is persisted.
func (uc *ChatUseCase) Send(ctx context.Context, matchID int, text string) (*domain.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	conversation, err := uc.conversationRepo.GetByMatchID(ctx, matchID)
	if err != nil {
		if err == domain.ErrConversationNotFound {
			return nil, nil
		}
		return nil, err
	}

	message := domain.Message{
		ID:        nextMessageID(conversation.LastMessage()),
		Sender:    domain.SenderUser,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := uc.conversationRepo.AppendMessage(ctx, matchID, message); err != nil {
		if err == domain.ErrConversationNotFound {
			return nil, nil
		}
		return nil, err
	}

	uc.broadcaster.Publish(notify.Event{MatchID: matchID})
	uc.simulator.Schedule(*conversation, text)
	return &message, nil
}

// List returns all conversations ordered by the timestamp of each
// conversation's last message, most recent activity first. An empty or
// missing store yields an empty slice.
func (uc *ChatUseCase) List(ctx context.Context) ([]domain.Conversation, error) {
	conversations, err := uc.conversationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return lastActivity(&conversations[i]).After(lastActivity(&conversations[j]))
	})
	return conversations, nil
}

// Get returns the conversation for the given match id.
func (uc *ChatUseCase) Get(ctx context.Context, matchID int) (*domain.Conversation, error) {
	return uc.conversationRepo.GetByMatchID(ctx, matchID)
}

// Subscribe registers for conversation change events; the cancel func
// releases the subscription.
func (uc *ChatUseCase) Subscribe() (<-chan notify.Event, func()) {
	return uc.broadcaster.Subscribe()
}

func lastActivity(c *domain.Conversation) time.Time {
	last := c.LastMessage()
	if last == nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, last.Timestamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nextMessageID derives an id from the current time in milliseconds,
// bumped past the previous message so ids stay strictly increasing
// even when two messages land within the same millisecond.
func nextMessageID(last *domain.Message) int64 {
	id := time.Now().UnixMilli()
	if last != nil && id <= last.ID {
		id = last.ID + 1
	}
	return id
}
