package repository

import (
	"context"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
)

// ConversationRepository owns the persisted conversation list. Every
// mutation rewrites the entire list (read-modify-write over one
// document); mutations within a single process are serialized, but
// across processes the last writer wins. That lost-update behavior is
// inherited from the whole-document persistence strategy and is
// documented rather than hidden.
type ConversationRepository interface {
	List(ctx context.Context) ([]domain.Conversation, error)
	GetByMatchID(ctx context.Context, matchID int) (*domain.Conversation, error)
	// Upsert replaces the conversation with the same match id, or
	// appends it as new, then persists the full list.
	Upsert(ctx context.Context, conversation *domain.Conversation) error
	// AppendMessage adds a message to the conversation for matchID and
	// persists the full list. Returns ErrConversationNotFound if no
	// such conversation exists.
	AppendMessage(ctx context.Context, matchID int, message domain.Message) error
}
