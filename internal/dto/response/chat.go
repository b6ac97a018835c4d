package response

import "time"

type ChatResponse struct {
	ConversationID string          `json:"conversation_id"`
	Reply          string          `json:"reply"`
	Kind           string          `json:"kind"`
	Stage          string          `json:"stage"`
	IsFallback     bool            `json:"is_fallback"`
	Ticket         *TicketResponse `json:"ticket,omitempty"`
}

type MessageResponse struct {
	Content string    `json:"content"`
	Sender  string    `json:"sender"`
	At      time.Time `json:"at"`
}

type TranscriptResponse struct {
	ConversationID string            `json:"conversation_id"`
	Stage          string            `json:"stage"`
	Messages       []MessageResponse `json:"messages"`
}

type FAQResponse struct {
	Type     string `json:"type"`
	Risposta string `json:"risposta"`
}
