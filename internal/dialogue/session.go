package dialogue

import (
	"time"

	"github.com/google/uuid"
)

// Stage is a position in the booking dialogue.
type Stage string

const (
	StageIdle                   Stage = "idle"
	StageAwaitingDate           Stage = "awaiting_date"
	StageAwaitingTime           Stage = "awaiting_time"
	StageAwaitingTicketType     Stage = "awaiting_ticket_type"
	StageAwaitingTicketQuantity Stage = "awaiting_ticket_quantity"
	StageAwaitingPaymentMethod  Stage = "awaiting_payment_method"
)

// Session is the booking progress of one conversation. The zero value is an
// idle session.
type Session struct {
	Stage          Stage  `json:"stage"`
	Date           string `json:"date,omitempty"`
	Time           string `json:"time,omitempty"`
	TicketType     string `json:"ticket_type,omitempty"`
	TicketQuantity int    `json:"ticket_quantity,omitempty"`
	PaymentMethod  string `json:"payment_method,omitempty"`
	FailedAttempts int    `json:"failed_attempts,omitempty"`
	// TicketID is reserved when the payment step starts. Every attempt to
	// pay for this booking issues the ticket under it.
	TicketID uuid.UUID `json:"ticket_id"`
}

func (s *Session) Active() bool {
	return s.Stage != "" && s.Stage != StageIdle
}

// CurrentStage reports idle for a zero session.
func (s *Session) CurrentStage() Stage {
	if s.Stage == "" {
		return StageIdle
	}
	return s.Stage
}

// Reset drops every selection and returns to idle.
func (s *Session) Reset() {
	*s = Session{Stage: StageIdle}
}

func (s *Session) advance(next Stage) {
	s.Stage = next
	s.FailedAttempts = 0
}

// Conversation is what the store keeps per chat: the transcript and the
// booking session.
type Conversation struct {
	ID         uuid.UUID  `json:"id"`
	Transcript Transcript `json:"transcript"`
	Session    Session    `json:"session"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewConversation starts a conversation with the bot greeting as its first
// message.
func NewConversation(id uuid.UUID, now time.Time) *Conversation {
	conv := &Conversation{
		ID:        id,
		Session:   Session{Stage: StageIdle},
		CreatedAt: now,
		UpdatedAt: now,
	}
	conv.Transcript.Append(Message{Content: msgGreeting, Sender: SenderBot, At: now})
	return conv
}

// Clone returns a copy that shares no transcript storage with c.
func (c *Conversation) Clone() *Conversation {
	out := *c
	out.Transcript = Transcript{messages: c.Transcript.Messages()}
	return &out
}
