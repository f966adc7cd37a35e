package chat

import (
	"context"
	"math/rand"
	"time"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/gemini"
	"github.com/soulmatch/soulmatch-backend/internal/notify"
	"github.com/soulmatch/soulmatch-backend/internal/pkg/logger"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

// cannedReplies is the fixed response pool. Replies are picked
// uniformly at random and are content-agnostic to the sent message.
var cannedReplies = []string{
	"That's such an interesting perspective! I never thought about it that way.",
	"I completely relate to that. It reminds me of a similar experience I had...",
	"Fascinating! Tell me more about your thoughts on this.",
	"I love how thoughtful your answer is. It shows real depth.",
	"That's a great point. It makes me wonder about...",
	"I appreciate you sharing that with me. It's quite insightful.",
}

// Simulator fabricates the match's reply a fixed delay after a user
// message. Delivery is fire-and-forget: it runs on its own goroutine
// with a background context and completes even if the triggering
// request is long gone. If the target conversation disappears in the
// interim, the reply is silently dropped.
type Simulator struct {
	conversationRepo repository.ConversationRepository
	geminiClient     *gemini.GeminiClient
	broadcaster      *notify.Broadcaster
	delay            time.Duration
	log              *logger.Logger
}

// NewSimulator creates a simulator. geminiClient may be nil, in which
// case replies always come from the canned pool.
func NewSimulator(
	conversationRepo repository.ConversationRepository,
	geminiClient *gemini.GeminiClient,
	broadcaster *notify.Broadcaster,
	delay time.Duration,
	log *logger.Logger,
) *Simulator {
	return &Simulator{
		conversationRepo: conversationRepo,
		geminiClient:     geminiClient,
		broadcaster:      broadcaster,
		delay:            delay,
		log:              log,
	}
}

// Schedule arranges for a reply to the conversation after the fixed
// delay. There is no cancellation handle; navigation away from the
// chat does not stop the reply.
func (s *Simulator) Schedule(conversation domain.Conversation, incoming string) {
	time.AfterFunc(s.delay, func() {
		s.deliver(conversation, incoming)
	})
}

func (s *Simulator) deliver(conversation domain.Conversation, incoming string) {
	ctx := context.Background()

	text := cannedReplies[rand.Intn(len(cannedReplies))]
	if s.geminiClient != nil {
		reply, err := s.geminiClient.GenerateReply(ctx, conversation.MatchName, conversation.MatchPersonalityType, incoming)
		if err != nil {
			s.log.Warn("gemini reply unavailable, using canned response", "match_id", conversation.MatchID, "error", err)
		} else {
			text = reply
		}
	}

	current, err := s.conversationRepo.GetByMatchID(ctx, conversation.MatchID)
	if err != nil {
		// Conversation cleared in the interim; the trigger was
		// fire-and-forget, so there is nobody to report to.
		s.log.Debug("skipping simulated reply", "match_id", conversation.MatchID, "error", err)
		return
	}

	message := domain.Message{
		ID:        nextMessageID(current.LastMessage()),
		Sender:    domain.SenderMatch,
		Text:      text,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.conversationRepo.AppendMessage(ctx, conversation.MatchID, message); err != nil {
		if err == domain.ErrConversationNotFound {
			s.log.Debug("skipping simulated reply", "match_id", conversation.MatchID)
			return
		}
		s.log.Error("failed to persist simulated reply", "match_id", conversation.MatchID, "error", err)
		return
	}

	s.broadcaster.Publish(notify.Event{MatchID: conversation.MatchID})
}
