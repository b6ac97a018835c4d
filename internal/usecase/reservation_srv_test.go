package usecase

import (
	"context"
	"testing"

	"museum-chat/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReservationService_CreateAndGet(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewReservationService(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateReservation(ctx, &request.CreateReservationRequest{Nome: " Giulia ", Giorno: "sabato", Persone: 3})
	require.NoError(t, err)
	assert.Equal(t, "Giulia", created.Nome)
	assert.False(t, created.Timestamp.IsZero())

	got, err := svc.GetReservation(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetReservation(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetReservation(ctx, "123")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestReservationService_CreateValidation(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewReservationService(repo, zap.NewNop())

	_, err := svc.CreateReservation(context.Background(), &request.CreateReservationRequest{Nome: "Anna", Giorno: "lunedì"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestReservationService_List(t *testing.T) {
	repo, _, _, _ := newFakeRepository()
	svc := NewReservationService(repo, zap.NewNop())
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C"} {
		_, err := svc.CreateReservation(ctx, &request.CreateReservationRequest{Nome: name, Giorno: "lunedì", Persone: 1})
		require.NoError(t, err)
	}

	page, err := svc.ListReservations(ctx, &request.PageQuery{Page: 2, PerPage: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "C", page.Items[0].Nome)
	assert.Equal(t, int64(3), page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.False(t, page.Meta.HasNext)
}
