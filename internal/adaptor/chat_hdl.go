package adaptor

import (
	"encoding/json"
	"net/http"

	"museum-chat/internal/dto/request"
	"museum-chat/internal/usecase"
	"museum-chat/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxChatBody = 16 << 10

type ChatHandler struct {
	service usecase.ChatService
	faq     usecase.FAQService
	log     *zap.Logger
}

func NewChatHandler(service usecase.ChatService, faq usecase.FAQService, log *zap.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		faq:     faq,
		log:     log.With(zap.String("handler", "chat")),
	}
}

// SendMessage handles POST /api/chat
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req request.ChatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Il messaggio è obbligatorio", validationErrors)
		return
	}

	resp, err := h.service.SendMessage(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "send message")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetTranscript handles GET /api/chat/{id}/transcript
func (h *ChatHandler) GetTranscript(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetTranscript(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get transcript")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// GetTickets handles GET /api/chat/{id}/tickets
func (h *ChatHandler) GetTickets(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetTickets(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get conversation tickets")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

// EndConversation handles DELETE /api/chat/{id}
func (h *ChatHandler) EndConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.EndConversation(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.handleServiceError(w, err, "end conversation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// FAQ handles POST /api/chatbot
func (h *ChatHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	var req request.FAQRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxChatBody)).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.faq.Answer(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "faq")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

func (h *ChatHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	writeServiceError(w, h.log, err, operation)
}
