package store

import (
	"context"
	"testing"
	"time"

	"museum-chat/internal/dialogue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	conv := dialogue.NewConversation(uuid.New(), time.Now())

	_, err := s.Get(ctx, conv.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	require.NoError(t, s.Save(ctx, conv))

	got, err := s.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)
	assert.Equal(t, 1, got.Transcript.Len())

	require.NoError(t, s.Delete(ctx, conv.ID))
	assert.ErrorIs(t, s.Delete(ctx, conv.ID), ErrConversationNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	conv := dialogue.NewConversation(uuid.New(), time.Now())
	require.NoError(t, s.Save(ctx, conv))

	got, err := s.Get(ctx, conv.ID)
	require.NoError(t, err)
	got.Transcript.Append(dialogue.Message{Content: "ciao", Sender: dialogue.SenderUser})
	got.Session.Stage = dialogue.StageAwaitingDate

	again, err := s.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Transcript.Len())
	assert.Equal(t, dialogue.StageIdle, again.Session.Stage)
}

func TestMemoryStore_EvictIdle(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	now := time.Now()

	old := dialogue.NewConversation(uuid.New(), now.Add(-2*time.Hour))
	fresh := dialogue.NewConversation(uuid.New(), now)
	require.NoError(t, s.Save(ctx, old))
	require.NoError(t, s.Save(ctx, fresh))

	n, err := s.EvictIdle(ctx, now.Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = s.Get(ctx, old.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)
	_, err = s.Get(ctx, fresh.ID)
	assert.NoError(t, err)
}
