package store

import (
	"context"
	"sync"
	"time"

	"museum-chat/internal/dialogue"

	"github.com/google/uuid"
)

type MemoryStore struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*dialogue.Conversation
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{conversations: make(map[uuid.UUID]*dialogue.Conversation)}
}

func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*dialogue.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, ErrConversationNotFound
	}
	return conv.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, conv *dialogue.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.conversations[conv.ID] = conv.Clone()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.conversations[id]; !ok {
		return ErrConversationNotFound
	}
	delete(s.conversations, id)
	return nil
}

func (s *MemoryStore) EvictIdle(_ context.Context, before time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, conv := range s.conversations {
		if conv.UpdatedAt.Before(before) {
			delete(s.conversations, id)
			evicted++
		}
	}
	return evicted, nil
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
