package wire

import (
	"museum-chat/internal/adaptor"
	"museum-chat/pkg/middleware"

	"github.com/go-chi/chi/v5"
)

func wireChat(r chi.Router, chatHandler *adaptor.ChatHandler, limiter *middleware.RateLimiter) {
	r.Route("/api/chat", func(r chi.Router) {
		r.With(limiter.Handler).Post("/", chatHandler.SendMessage)

		r.Get("/{id}/transcript", chatHandler.GetTranscript)
		r.Get("/{id}/tickets", chatHandler.GetTickets)
		r.Delete("/{id}", chatHandler.EndConversation)
	})

	// keyword answers, no language model behind it
	r.With(limiter.Handler).Post("/api/chatbot", chatHandler.FAQ)
}
