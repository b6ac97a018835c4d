package store

import (
	"context"
	"testing"
	"time"

	"museum-chat/internal/data/entity"
	"museum-chat/internal/dialogue"
	"museum-chat/pkg/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return mr, client
}

func TestRedisStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	s := NewRedisStore(client, 30*time.Minute)

	conv := dialogue.NewConversation(uuid.New(), time.Now().UTC())
	conv.Session.Stage = dialogue.StageAwaitingTime
	conv.Session.Date = "15/03/2025"
	conv.Transcript.Append(dialogue.Message{Content: "15/03/2025", Sender: dialogue.SenderUser, At: time.Now().UTC()})

	require.NoError(t, s.Save(ctx, conv))
	assert.Equal(t, 30*time.Minute, mr.TTL(conversationKey(conv.ID)))

	got, err := s.Get(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, conv.Session, got.Session)
	assert.Equal(t, conv.Transcript.Messages(), got.Transcript.Messages())

	require.NoError(t, s.Delete(ctx, conv.ID))
	_, err = s.Get(ctx, conv.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)
	assert.ErrorIs(t, s.Delete(ctx, conv.ID), ErrConversationNotFound)
}

func TestRedisStore_Expires(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	s := NewRedisStore(client, time.Minute)

	conv := dialogue.NewConversation(uuid.New(), time.Now())
	require.NoError(t, s.Save(ctx, conv))

	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, conv.ID)
	assert.ErrorIs(t, err, ErrConversationNotFound)

	n, err := s.EvictIdle(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisHoursCache(t *testing.T) {
	ctx := context.Background()
	_, client := newRedis(t)
	c := NewRedisHoursCache(client, time.Minute)

	_, ok, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	hours := entity.DefaultOpeningHours()
	require.NoError(t, c.Set(ctx, hours))

	got, ok, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, got, 7)
	assert.Equal(t, "Domenica", got[6].Day)

	require.NoError(t, c.Invalidate(ctx))
	_, ok, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(context.Background(), utils.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	client.Close()

	mr.Close()
	_, err = NewRedisClient(context.Background(), utils.RedisConfig{Addr: mr.Addr()})
	assert.Error(t, err)
}
