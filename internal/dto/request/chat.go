package request

// ChatRequest is one user utterance. An empty ConversationID starts a new
// conversation.
type ChatRequest struct {
	ConversationID string `json:"conversation_id" validate:"omitempty,uuid"`
	Message        string `json:"message" validate:"required,max=2000"`
}

// FAQRequest accepts both field names used by the web client.
type FAQRequest struct {
	Messaggio string `json:"messaggio"`
	Message   string `json:"message"`
}

func (r FAQRequest) Text() string {
	if r.Messaggio != "" {
		return r.Messaggio
	}
	return r.Message
}
