package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/infrastructure/storage"
	"github.com/soulmatch/soulmatch-backend/internal/repository"
)

type conversationRepository struct {
	store storage.Store

	// Serializes the read-modify-write cycle within this process. A
	// second process writing the same key still wins blindly; see the
	// ConversationRepository contract.
	mu sync.Mutex
}

func NewConversationRepository(store storage.Store) repository.ConversationRepository {
	return &conversationRepository{store: store}
}

func (r *conversationRepository) load(ctx context.Context) ([]domain.Conversation, error) {
	raw, err := r.store.Get(ctx, conversationsKey)
	if err != nil {
		if errors.Is(err, storage.ErrKeyNotFound) {
			return []domain.Conversation{}, nil
		}
		return nil, fmt.Errorf("failed to load conversations: %w", err)
	}

	var conversations []domain.Conversation
	if err := json.Unmarshal([]byte(raw), &conversations); err != nil {
		return nil, fmt.Errorf("failed to decode conversations: %w", err)
	}
	return conversations, nil
}

func (r *conversationRepository) save(ctx context.Context, conversations []domain.Conversation) error {
	raw, err := json.Marshal(conversations)
	if err != nil {
		return fmt.Errorf("failed to encode conversations: %w", err)
	}
	if err := r.store.Set(ctx, conversationsKey, string(raw)); err != nil {
		return fmt.Errorf("failed to persist conversations: %w", err)
	}
	return nil
}

func (r *conversationRepository) List(ctx context.Context) ([]domain.Conversation, error) {
	return r.load(ctx)
}

func (r *conversationRepository) GetByMatchID(ctx context.Context, matchID int) (*domain.Conversation, error) {
	conversations, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range conversations {
		if conversations[i].MatchID == matchID {
			c := conversations[i]
			return &c, nil
		}
	}
	return nil, domain.ErrConversationNotFound
}

func (r *conversationRepository) Upsert(ctx context.Context, conversation *domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversations, err := r.load(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range conversations {
		if conversations[i].MatchID == conversation.MatchID {
			conversations[i] = *conversation
			replaced = true
			break
		}
	}
	if !replaced {
		conversations = append(conversations, *conversation)
	}

	return r.save(ctx, conversations)
}

func (r *conversationRepository) AppendMessage(ctx context.Context, matchID int, message domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversations, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range conversations {
		if conversations[i].MatchID == matchID {
			conversations[i].Messages = append(conversations[i].Messages, message)
			return r.save(ctx, conversations)
		}
	}
	return domain.ErrConversationNotFound
}
