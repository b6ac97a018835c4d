package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"museum-chat/internal/data/entity"
	"museum-chat/internal/data/repository"
	"museum-chat/internal/dto/request"
	"museum-chat/internal/dto/response"
	"museum-chat/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservation(ctx context.Context, id string) (*response.ReservationResponse, error)

	// Admin
	ListReservations(ctx context.Context, req *request.PageQuery) (*response.Page[*response.ReservationResponse], error)
}

type reservationService struct {
	repo repository.ReservationRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewReservationService(repo *repository.Repository, log *zap.Logger) ReservationService {
	return &reservationService{
		repo: repo.Reservation,
		now:  time.Now,
		log:  log.With(zap.String("service", "reservation")),
	}
}

func (s *reservationService) CreateReservation(ctx context.Context, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := s.now()
	reservation := &entity.Reservation{
		Record:    entity.Record{ID: uuid.New(), CreatedAt: now},
		Name:      strings.TrimSpace(req.Nome),
		Day:       strings.TrimSpace(req.Giorno),
		People:    req.Persone,
		Timestamp: now,
	}

	if err := s.repo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("save reservation: %w", err)
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("day", reservation.Day),
		zap.Int("people", reservation.People))

	return toReservationResponse(reservation), nil
}

func (s *reservationService) GetReservation(ctx context.Context, id string) (*response.ReservationResponse, error) {
	reservationID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: reservation %s", ErrInvalidID, id)
	}

	reservation, err := s.repo.FindByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", id, ErrNotFound)
	}

	return toReservationResponse(reservation), nil
}

func (s *reservationService) ListReservations(ctx context.Context, req *request.PageQuery) (*response.Page[*response.ReservationResponse], error) {
	reservations, err := s.repo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	out := make([]*response.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, toReservationResponse(r))
	}

	return response.NewPage(out, req.Page, req.Limit(), total), nil
}
