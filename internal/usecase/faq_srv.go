package usecase

import (
	"context"
	"fmt"
	"strings"

	"museum-chat/internal/dto/request"
	"museum-chat/internal/dto/response"

	"go.uber.org/zap"
)

const (
	FAQTypeBooking = "booking"
	FAQTypeText    = "text"
)

const (
	faqBooking = "Perfetto! Per procedere con la prenotazione, ho bisogno di alcune informazioni:\n\n" +
		"1. Data della visita\n" +
		"2. Orario preferito\n" +
		"3. Numero di biglietti e tipo\n" +
		"4. Metodo di pagamento\n\n" +
		"Scrivi \"prenota\" nella chat per iniziare."

	faqHoursFallback = "Il Museo del Clima è aperto:\n\n" +
		"• Lunedì - Venerdì: 9:00 - 18:00\n" +
		"• Sabato - Domenica: 10:00 - 20:00"

	faqLastEntry = "\n\nL'ultimo ingresso è consentito 30 minuti prima della chiusura."

	faqInfo = "Il Museo del Clima si trova presso il Green Hub di Cava de' Tirreni.\n\n" +
		"• Parcheggio disponibile\n" +
		"• Accesso per disabili\n" +
		"• Visite guidate su prenotazione\n\n" +
		"Posso aiutarti con qualcos'altro?"

	faqDefault = "Sono l'assistente virtuale del Museo del Clima. Posso aiutarti con:\n\n" +
		"• Prenotazione biglietti\n" +
		"• Informazioni sugli orari\n" +
		"• Informazioni generali sul museo\n" +
		"• Guide alla visita\n\n" +
		"Come posso esserti utile?"
)

var (
	faqBookingKeywords = []string{"prenot", "bigliett", "acquist"}
	faqHoursKeywords   = []string{"orari", "aperto", "chiuso"}
	faqInfoKeywords    = []string{"informazion", "dove", "come"}
)

// FAQService answers with canned text picked by keyword, without a language
// model.
type FAQService interface {
	Answer(ctx context.Context, req *request.FAQRequest) (*response.FAQResponse, error)
}

type faqService struct {
	hours HoursService
	log   *zap.Logger
}

func NewFAQService(hours HoursService, log *zap.Logger) FAQService {
	return &faqService{
		hours: hours,
		log:   log.With(zap.String("service", "faq")),
	}
}

func (s *faqService) Answer(ctx context.Context, req *request.FAQRequest) (*response.FAQResponse, error) {
	text := strings.ToLower(strings.TrimSpace(req.Text()))
	if text == "" {
		return nil, fmt.Errorf("%w: messaggio is required", ErrValidation)
	}

	switch {
	case containsAny(text, faqBookingKeywords):
		return &response.FAQResponse{Type: FAQTypeBooking, Risposta: faqBooking}, nil
	case containsAny(text, faqHoursKeywords):
		return &response.FAQResponse{Type: FAQTypeText, Risposta: s.hoursAnswer(ctx)}, nil
	case containsAny(text, faqInfoKeywords):
		return &response.FAQResponse{Type: FAQTypeText, Risposta: faqInfo}, nil
	}
	return &response.FAQResponse{Type: FAQTypeText, Risposta: faqDefault}, nil
}

func (s *faqService) hoursAnswer(ctx context.Context) string {
	if s.hours == nil {
		return faqHoursFallback + faqLastEntry
	}

	hours, err := s.hours.GetOpeningHours(ctx)
	if err != nil || len(hours) == 0 {
		s.log.Warn("Answering with default opening hours", zap.Error(err))
		return faqHoursFallback + faqLastEntry
	}

	var b strings.Builder
	b.WriteString("Il Museo del Clima è aperto:\n")
	for _, h := range hours {
		fmt.Fprintf(&b, "\n• %s: %s - %s", h.Giorno, h.Apertura, h.Chiusura)
	}
	b.WriteString(faqLastEntry)
	return b.String()
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
