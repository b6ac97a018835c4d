package usecase

import (
	"context"
	"testing"

	"museum-chat/internal/data/entity"
	"museum-chat/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFAQService_Answer(t *testing.T) {
	repo, _, _, hours := newFakeRepository()
	hours.hours = entity.DefaultOpeningHours()[5:]
	svc := NewFAQService(NewHoursService(repo, nil, zap.NewNop()), zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		msg      string
		wantType string
		contains string
	}{
		{"booking", "Vorrei acquistare un biglietto", FAQTypeBooking, "Data della visita"},
		{"hours from database", "Quali sono gli orari?", FAQTypeText, "• Sabato: 10:00 - 20:00"},
		{"info", "Dove si trova il museo?", FAQTypeText, "Green Hub"},
		{"default", "ciao", FAQTypeText, "Come posso esserti utile?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Answer(ctx, &request.FAQRequest{Messaggio: tt.msg})
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Contains(t, got.Risposta, tt.contains)
		})
	}
}

func TestFAQService_HoursFallbackAndEmpty(t *testing.T) {
	svc := NewFAQService(nil, zap.NewNop())

	got, err := svc.Answer(context.Background(), &request.FAQRequest{Message: "siete aperti? orari"})
	require.NoError(t, err)
	assert.Contains(t, got.Risposta, "Lunedì - Venerdì: 9:00 - 18:00")

	_, err = svc.Answer(context.Background(), &request.FAQRequest{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalogService(t *testing.T) {
	svc := NewCatalogService(nil, nil)
	types := svc.TicketTypes()
	require.Len(t, types, 4)
	assert.Equal(t, "Intero", types[0].Name)
	assert.Equal(t, 15, types[0].Price)
	assert.Equal(t, "card", svc.PaymentMethods()[0].ID)
}
