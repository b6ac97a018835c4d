package usecase

import (
	"context"
	"fmt"
	"strings"

	"museum-chat/internal/catalog"
	"museum-chat/internal/data/entity"
	"museum-chat/internal/data/repository"
	"museum-chat/internal/dto/response"
	"museum-chat/pkg/qrcode"
	"museum-chat/pkg/ticketpdf"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgShowQRCode    = "Mostra questo QR code all'ingresso del museo"
	msgUnknownQRCode = "QR code non riconosciuto"
)

// QRRenderer renders a ticket payload both as data URI and as raw PNG.
type QRRenderer interface {
	Encode(payload []byte) (string, error)
	PNG(payload []byte) ([]byte, error)
}

type TicketService interface {
	GetTicket(ctx context.Context, id string) (*response.TicketResponse, error)
	GetQRCodePNG(ctx context.Context, id string) ([]byte, error)
	GetTicketPDF(ctx context.Context, id string) ([]byte, error)
	// VerifyQRCode tells the entrance whether id belongs to a ticket or a
	// reservation.
	VerifyQRCode(ctx context.Context, id string) (*response.QRCodeResponse, error)
}

type ticketService struct {
	tickets      repository.TicketRepository
	reservations repository.ReservationRepository
	payments     *catalog.PaymentMethods
	qr           QRRenderer
	museum       string
	log          *zap.Logger
}

func NewTicketService(repo *repository.Repository, payments *catalog.PaymentMethods, qr QRRenderer, museum string, log *zap.Logger) TicketService {
	if payments == nil {
		payments = catalog.DefaultPaymentMethods()
	}
	if qr == nil {
		qr = qrcode.NewEncoder(0)
	}
	return &ticketService{
		tickets:      repo.Ticket,
		reservations: repo.Reservation,
		payments:     payments,
		qr:           qr,
		museum:       museum,
		log:          log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) find(ctx context.Context, id string) (*entity.Ticket, error) {
	ticketID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: ticket %s", ErrInvalidID, id)
	}

	ticket, err := s.tickets.FindByID(ctx, ticketID)
	if err != nil {
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if ticket == nil {
		return nil, fmt.Errorf("ticket %s: %w", id, ErrNotFound)
	}
	return ticket, nil
}

func (s *ticketService) GetTicket(ctx context.Context, id string) (*response.TicketResponse, error) {
	ticket, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	code, err := s.qr.Encode(ticket.QRPayload)
	if err != nil {
		s.log.Warn("Failed to encode qr code", zap.Error(err), zap.String("ticket_id", id))
		code = ""
	}

	return toTicketResponse(ticket, code)
}

func (s *ticketService) GetQRCodePNG(ctx context.Context, id string) ([]byte, error) {
	ticket, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qr.PNG(ticket.QRPayload)
	if err != nil {
		s.log.Error("Failed to render qr code", zap.Error(err), zap.String("ticket_id", id))
		return nil, fmt.Errorf("render qr code: %w", err)
	}
	return png, nil
}

func (s *ticketService) GetTicketPDF(ctx context.Context, id string) ([]byte, error) {
	ticket, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := s.qr.PNG(ticket.QRPayload)
	if err != nil {
		return nil, fmt.Errorf("render qr code: %w", err)
	}

	method := ticket.PaymentMethod
	if m, ok := s.payments.ByID(method); ok {
		method = m.Name
	}

	pdf, err := ticketpdf.Render(s.museum, ticketpdf.Ticket{
		ID:            ticket.ID.String(),
		Date:          ticket.VisitDate,
		Time:          ticket.VisitTime,
		Description:   fmt.Sprintf("%dx %s", ticket.Quantity, ticket.TicketType),
		PaymentMethod: method,
		Total:         ticket.Total,
		QRPNG:         png,
		IssuedAt:      ticket.CreatedAt,
	})
	if err != nil {
		s.log.Error("Failed to render ticket pdf", zap.Error(err), zap.String("ticket_id", id))
		return nil, err
	}
	return pdf, nil
}

func (s *ticketService) VerifyQRCode(ctx context.Context, id string) (*response.QRCodeResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", ErrValidation)
	}

	resp := &response.QRCodeResponse{ID: id, Message: msgUnknownQRCode}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return resp, nil
	}

	ticket, err := s.tickets.FindByID(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("verify qr code: %w", err)
	}
	if ticket == nil {
		reservation, err := s.reservations.FindByID(ctx, parsed)
		if err != nil {
			return nil, fmt.Errorf("verify qr code: %w", err)
		}
		if reservation == nil {
			return resp, nil
		}
	}

	resp.Valid = true
	resp.Message = msgShowQRCode
	return resp, nil
}
