package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"museum-chat/internal/data/repository"
	"museum-chat/internal/data/store"
	"museum-chat/internal/dialogue"
	"museum-chat/internal/dto/request"
	"museum-chat/internal/dto/response"
	"museum-chat/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatService interface {
	SendMessage(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error)
	GetTranscript(ctx context.Context, conversationID string) (*response.TranscriptResponse, error)
	GetTickets(ctx context.Context, conversationID string) ([]*response.TicketResponse, error)
	EndConversation(ctx context.Context, conversationID string) error
}

type chatService struct {
	store      store.ConversationStore
	controller *dialogue.Controller
	tickets    repository.TicketRepository
	qr         dialogue.QREncoder
	locks      *keyedMutex
	newID      func() uuid.UUID
	now        func() time.Time
	log        *zap.Logger
}

// ChatDeps groups what the booking dialogue needs besides storage.
type ChatDeps struct {
	Dialogue  dialogue.Config
	Catalog   dialogue.Deps
	Completer dialogue.Completer
	QR        dialogue.QREncoder
}

func NewChatService(repo *repository.Repository, conversations store.ConversationStore, deps ChatDeps, log *zap.Logger) ChatService {
	s := &chatService{
		store:   conversations,
		tickets: repo.Ticket,
		qr:      deps.QR,
		locks:   newKeyedMutex(),
		newID:   uuid.New,
		now:     time.Now,
		log:     log.With(zap.String("service", "chat")),
	}

	d := deps.Catalog
	d.Completer = deps.Completer
	d.QR = deps.QR
	d.Sink = &ticketSink{repo: repo.Ticket}
	if d.Now != nil {
		s.now = d.Now
	}
	s.controller = dialogue.NewController(deps.Dialogue, d, log)

	return s
}

func (s *chatService) SendMessage(ctx context.Context, req *request.ChatRequest) (*response.ChatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Chat message validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id := s.newID()
	if req.ConversationID != "" {
		parsed, err := uuid.Parse(req.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("%w: conversation %s", ErrInvalidID, req.ConversationID)
		}
		id = parsed
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	conv, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrConversationNotFound) {
		// expired or new: start over under the same id
		conv = dialogue.NewConversation(id, s.now())
		s.log.Info("Conversation started", zap.String("conversation_id", id.String()))
	} else if err != nil {
		s.log.Error("Failed to load conversation", zap.Error(err), zap.String("conversation_id", id.String()))
		return nil, fmt.Errorf("load conversation %s: %w", id, err)
	}

	reply, err := s.controller.Handle(ctx, conv, req.Message)
	if errors.Is(err, dialogue.ErrEmptyMessage) {
		return nil, fmt.Errorf("%w: message is empty", ErrValidation)
	}
	if err != nil {
		return nil, fmt.Errorf("handle message: %w", err)
	}

	if err := s.store.Save(ctx, conv); err != nil {
		s.log.Error("Failed to save conversation", zap.Error(err), zap.String("conversation_id", id.String()))
		return nil, fmt.Errorf("save conversation %s: %w", id, err)
	}

	resp := &response.ChatResponse{
		ConversationID: id.String(),
		Reply:          reply.Content,
		Kind:           string(reply.Kind),
		Stage:          string(reply.Stage),
		IsFallback:     reply.Degraded,
	}
	if reply.Ticket != nil {
		resp.Ticket = fromDialogueTicket(reply.Ticket)
	}

	return resp, nil
}

func (s *chatService) GetTranscript(ctx context.Context, conversationID string) (*response.TranscriptResponse, error) {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: conversation %s", ErrInvalidID, conversationID)
	}

	conv, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get transcript %s: %w", conversationID, err)
	}

	msgs := conv.Transcript.Messages()
	out := make([]response.MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, response.MessageResponse{Content: m.Content, Sender: string(m.Sender), At: m.At})
	}

	return &response.TranscriptResponse{
		ConversationID: id.String(),
		Stage:          string(conv.Session.CurrentStage()),
		Messages:       out,
	}, nil
}

func (s *chatService) GetTickets(ctx context.Context, conversationID string) ([]*response.TicketResponse, error) {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return nil, fmt.Errorf("%w: conversation %s", ErrInvalidID, conversationID)
	}

	tickets, err := s.tickets.FindByConversationID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get tickets of conversation %s: %w", conversationID, err)
	}

	out := make([]*response.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		code := ""
		if s.qr != nil {
			if code, err = s.qr.Encode(t.QRPayload); err != nil {
				s.log.Warn("Failed to encode qr code", zap.Error(err), zap.String("ticket_id", t.ID.String()))
			}
		}
		resp, err := toTicketResponse(t, code)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}

	return out, nil
}

func (s *chatService) EndConversation(ctx context.Context, conversationID string) error {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return fmt.Errorf("%w: conversation %s", ErrInvalidID, conversationID)
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("end conversation %s: %w", conversationID, err)
	}

	s.log.Info("Conversation ended", zap.String("conversation_id", id.String()))
	return nil
}

// ticketSink persists tickets emitted by the dialogue.
type ticketSink struct {
	repo repository.TicketRepository
}

func (s *ticketSink) Purchase(ctx context.Context, t *dialogue.Ticket) error {
	e, err := toTicketEntity(t)
	if err != nil {
		return err
	}
	return s.repo.Create(ctx, e)
}
