package store

import (
	"context"
	"errors"
	"time"

	"museum-chat/internal/dialogue"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

// ConversationStore keeps conversations between chat requests. Get returns a
// copy; changes are only visible to other callers after Save.
type ConversationStore interface {
	Get(ctx context.Context, id uuid.UUID) (*dialogue.Conversation, error)
	Save(ctx context.Context, conv *dialogue.Conversation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// EvictIdle removes conversations not updated since before and returns
	// how many were removed.
	EvictIdle(ctx context.Context, before time.Time) (int, error)
}
