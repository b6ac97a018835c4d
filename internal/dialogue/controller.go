package dialogue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"museum-chat/internal/catalog"
	"museum-chat/internal/completion"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var ErrEmptyMessage = errors.New("message is empty")

var (
	datePattern     = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)
	timePattern     = regexp.MustCompile(`\d{2}:\d{2}`)
	quantityPattern = regexp.MustCompile(`^\s*\+?(\d+)`)
)

// bookingKeywords are Italian stems for "book", "ticket" and "purchase".
var bookingKeywords = []string{"prenot", "bigliett", "acquist"}

// ReplyKind tells the caller what kind of bot message was produced.
type ReplyKind string

const (
	ReplyPrompt    ReplyKind = "prompt"
	ReplyReprompt  ReplyKind = "reprompt"
	ReplyCompleted ReplyKind = "completed"
	ReplyAborted   ReplyKind = "aborted"
	ReplyAnswer    ReplyKind = "answer"
	ReplyDegraded  ReplyKind = "degraded"
)

type Reply struct {
	Content  string    `json:"content"`
	Kind     ReplyKind `json:"kind"`
	Stage    Stage     `json:"stage"`
	Degraded bool      `json:"degraded"`
	Ticket   *Ticket   `json:"ticket,omitempty"`
}

// Completer answers free text outside of a booking.
type Completer interface {
	Complete(ctx context.Context, history []completion.Turn) string
}

// TicketSink receives every ticket the dialogue emits.
type TicketSink interface {
	Purchase(ctx context.Context, ticket *Ticket) error
}

// QREncoder renders a QR payload into something the UI can display.
type QREncoder interface {
	Encode(payload []byte) (string, error)
}

type Config struct {
	// MaxRetries aborts a booking after this many consecutive invalid
	// answers in one stage. Zero disables the limit.
	MaxRetries int
	// HistoryWindow is how many transcript messages are sent to the
	// completer. Zero sends the whole transcript.
	HistoryWindow int
	// MaxQuantity caps the ticket quantity. Zero means no cap.
	MaxQuantity int
}

type Deps struct {
	Tickets   *catalog.Tickets
	Payments  *catalog.PaymentMethods
	Completer Completer
	Sink      TicketSink
	QR        QREncoder
	NewID     func() uuid.UUID
	Now       func() time.Time
}

// Controller runs one utterance at a time against a conversation. It holds no
// per-conversation state; callers serialize calls for the same conversation.
type Controller struct {
	cfg       Config
	tickets   *catalog.Tickets
	payments  *catalog.PaymentMethods
	completer Completer
	sink      TicketSink
	qr        QREncoder
	newID     func() uuid.UUID
	now       func() time.Time
	log       *zap.Logger
}

func NewController(cfg Config, deps Deps, log *zap.Logger) *Controller {
	c := &Controller{
		cfg:       cfg,
		tickets:   deps.Tickets,
		payments:  deps.Payments,
		completer: deps.Completer,
		sink:      deps.Sink,
		qr:        deps.QR,
		newID:     deps.NewID,
		now:       deps.Now,
		log:       log.With(zap.String("service", "dialogue")),
	}
	if c.tickets == nil {
		c.tickets = catalog.DefaultTickets()
	}
	if c.payments == nil {
		c.payments = catalog.DefaultPaymentMethods()
	}
	if c.newID == nil {
		c.newID = uuid.New
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Handle appends the user text and the bot reply to the transcript and
// advances the booking session when one is active.
func (c *Controller) Handle(ctx context.Context, conv *Conversation, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyMessage
	}

	now := c.now()
	conv.Transcript.Append(Message{Content: text, Sender: SenderUser, At: now})

	var reply *Reply
	if conv.Session.Active() {
		reply = c.step(ctx, conv, text)
	} else if hasBookingIntent(text) {
		conv.Session.Reset()
		conv.Session.advance(StageAwaitingDate)
		reply = &Reply{Content: msgAskDate, Kind: ReplyPrompt}

		c.log.Info("Booking started", zap.String("conversation_id", conv.ID.String()))
	} else {
		reply = c.answer(ctx, conv)
	}

	reply.Stage = conv.Session.CurrentStage()
	conv.Transcript.Append(Message{Content: reply.Content, Sender: SenderBot, At: c.now()})
	conv.UpdatedAt = c.now()

	return reply, nil
}

func hasBookingIntent(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range bookingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func (c *Controller) answer(ctx context.Context, conv *Conversation) *Reply {
	if c.completer == nil {
		return &Reply{Content: completion.FallbackMessage, Kind: ReplyDegraded, Degraded: true}
	}

	content := c.completer.Complete(ctx, conv.Transcript.History(c.cfg.HistoryWindow))
	if completion.IsFallback(content) {
		c.log.Warn("Completion degraded", zap.String("conversation_id", conv.ID.String()))
		return &Reply{Content: content, Kind: ReplyDegraded, Degraded: true}
	}

	return &Reply{Content: content, Kind: ReplyAnswer}
}

func (c *Controller) step(ctx context.Context, conv *Conversation, text string) *Reply {
	s := &conv.Session

	switch s.Stage {
	case StageAwaitingDate:
		date := datePattern.FindString(text)
		if date == "" {
			return c.retry(conv, msgRetryDate)
		}
		s.Date = date
		s.advance(StageAwaitingTime)
		return &Reply{Content: msgAskTime, Kind: ReplyPrompt}

	case StageAwaitingTime:
		tm := timePattern.FindString(text)
		if tm == "" {
			return c.retry(conv, msgRetryTime)
		}
		s.Time = tm
		s.advance(StageAwaitingTicketType)
		return &Reply{Content: msgAskTicketType(c.tickets), Kind: ReplyPrompt}

	case StageAwaitingTicketType:
		tt, ok := c.tickets.Match(text)
		if !ok {
			return c.retry(conv, msgRetryTicketType(c.tickets))
		}
		s.TicketType = tt.Name
		s.advance(StageAwaitingTicketQuantity)
		return &Reply{Content: msgAskQuantity(tt), Kind: ReplyPrompt}

	case StageAwaitingTicketQuantity:
		price, _ := c.tickets.Price(s.TicketType)
		qty, ok := c.parseQuantity(text, price)
		if !ok {
			return c.retry(conv, msgRetryQuantity)
		}
		s.TicketQuantity = qty
		s.TicketID = c.newID()
		s.advance(StageAwaitingPaymentMethod)
		return &Reply{Content: msgAskPayment(qty, s.TicketType, c.payments), Kind: ReplyPrompt}

	case StageAwaitingPaymentMethod:
		method, ok := c.payments.Match(text)
		if !ok {
			return c.retry(conv, msgRetryPayment)
		}
		return c.complete(ctx, conv, method)
	}

	// unknown stage, e.g. from an older stored conversation
	c.log.Warn("Unknown booking stage, resetting",
		zap.String("conversation_id", conv.ID.String()),
		zap.String("stage", string(s.Stage)))
	s.Reset()
	return &Reply{Content: msgAborted, Kind: ReplyAborted}
}

// parseQuantity reads the leading positive integer. Quantities whose total
// would not fit in an int are refused even without a configured cap.
func (c *Controller) parseQuantity(text string, price int) (int, bool) {
	m := quantityPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	qty, err := strconv.Atoi(m[1])
	if err != nil || qty <= 0 {
		return 0, false
	}
	if c.cfg.MaxQuantity > 0 && qty > c.cfg.MaxQuantity {
		return 0, false
	}
	if price > 0 && qty > math.MaxInt/price {
		return 0, false
	}
	return qty, true
}

// retry keeps the stage and re-prompts, or abandons the booking once the
// retry ceiling is reached.
func (c *Controller) retry(conv *Conversation, prompt string) *Reply {
	s := &conv.Session
	s.FailedAttempts++

	if c.cfg.MaxRetries > 0 && s.FailedAttempts >= c.cfg.MaxRetries {
		c.log.Info("Booking aborted after repeated invalid input",
			zap.String("conversation_id", conv.ID.String()),
			zap.String("stage", string(s.Stage)),
			zap.Int("attempts", s.FailedAttempts))
		s.Reset()
		return &Reply{Content: msgAborted, Kind: ReplyAborted}
	}

	return &Reply{Content: prompt, Kind: ReplyReprompt}
}

func (c *Controller) complete(ctx context.Context, conv *Conversation, method catalog.PaymentMethod) *Reply {
	s := &conv.Session

	price, ok := c.tickets.Price(s.TicketType)
	if !ok {
		// catalog changed under a stored session
		c.log.Warn("Ticket type no longer in catalog",
			zap.String("conversation_id", conv.ID.String()),
			zap.String("ticket_type", s.TicketType))
		s.Reset()
		return &Reply{Content: msgAborted, Kind: ReplyAborted}
	}

	s.PaymentMethod = method.ID

	ticket, err := c.buildTicket(conv, price, method)
	if err != nil {
		c.log.Error("Failed to build ticket", zap.Error(err), zap.String("conversation_id", conv.ID.String()))
		return &Reply{Content: msgIssueFailed, Kind: ReplyReprompt}
	}

	if c.sink != nil {
		if err := c.sink.Purchase(ctx, ticket); err != nil {
			c.log.Error("Failed to hand over ticket",
				zap.Error(err),
				zap.String("conversation_id", conv.ID.String()),
				zap.String("ticket_id", ticket.ID.String()))
			return &Reply{Content: msgIssueFailed, Kind: ReplyReprompt}
		}
	}

	c.log.Info("Booking completed",
		zap.String("conversation_id", conv.ID.String()),
		zap.String("ticket_id", ticket.ID.String()),
		zap.String("type", ticket.Type),
		zap.Int("total", ticket.Total),
		zap.String("payment_method", method.ID))

	s.Reset()
	return &Reply{Content: msgCompleted(ticket.Total), Kind: ReplyCompleted, Ticket: ticket}
}

func (c *Controller) buildTicket(conv *Conversation, price int, method catalog.PaymentMethod) (*Ticket, error) {
	s := &conv.Session
	id := s.TicketID
	if id == uuid.Nil {
		// session restored without a reserved id
		id = c.newID()
		s.TicketID = id
	}
	total := price * s.TicketQuantity

	payload := QRPayload{
		ID:      id.String(),
		Date:    s.Date,
		Time:    s.Time,
		Tickets: map[string]int{s.TicketType: s.TicketQuantity},
		Total:   total,
	}

	ticket := &Ticket{
		ID:             id,
		ConversationID: conv.ID,
		Date:           s.Date,
		Time:           s.Time,
		Type:           fmt.Sprintf("%dx %s", s.TicketQuantity, s.TicketType),
		TicketType:     s.TicketType,
		Quantity:       s.TicketQuantity,
		PaymentMethod:  method.ID,
		Total:          total,
		QRPayload:      payload,
		CreatedAt:      c.now(),
	}

	if c.qr != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal qr payload: %w", err)
		}
		code, err := c.qr.Encode(raw)
		if err != nil {
			return nil, fmt.Errorf("encode qr code: %w", err)
		}
		ticket.QRCode = code
	}

	return ticket, nil
}
