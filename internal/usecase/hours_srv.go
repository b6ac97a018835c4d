package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"museum-chat/internal/data/entity"
	"museum-chat/internal/data/repository"
	"museum-chat/internal/data/store"
	"museum-chat/internal/dto/request"
	"museum-chat/internal/dto/response"
	"museum-chat/pkg/utils"

	"go.uber.org/zap"
)

type HoursService interface {
	GetOpeningHours(ctx context.Context) ([]*response.OpeningHourResponse, error)
	UpdateOpeningHour(ctx context.Context, id string, req *request.UpdateOpeningHourRequest) (*response.OpeningHourResponse, error)
	// EnsureDefaults seeds the default week when the table is empty.
	EnsureDefaults(ctx context.Context) error
	// PromptContext lists the current opening hours for the system prompt.
	PromptContext(ctx context.Context, lastUserMessage string) string
}

type hoursService struct {
	repo  repository.OpeningHourRepository
	cache store.HoursCache
	log   *zap.Logger
}

func NewHoursService(repo *repository.Repository, cache store.HoursCache, log *zap.Logger) HoursService {
	if cache == nil {
		cache = store.NoopHoursCache{}
	}
	return &hoursService{
		repo:  repo.OpeningHour,
		cache: cache,
		log:   log.With(zap.String("service", "hours")),
	}
}

func (s *hoursService) list(ctx context.Context) ([]*entity.OpeningHour, error) {
	hours, ok, err := s.cache.Get(ctx)
	if err != nil {
		s.log.Warn("Opening hours cache unavailable", zap.Error(err))
	}
	if ok {
		return hours, nil
	}

	hours, err = s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list opening hours: %w", err)
	}

	if err := s.cache.Set(ctx, hours); err != nil {
		s.log.Warn("Failed to cache opening hours", zap.Error(err))
	}
	return hours, nil
}

func (s *hoursService) GetOpeningHours(ctx context.Context) ([]*response.OpeningHourResponse, error) {
	hours, err := s.list(ctx)
	if err != nil {
		s.log.Error("Failed to get opening hours", zap.Error(err))
		return nil, err
	}

	out := make([]*response.OpeningHourResponse, 0, len(hours))
	for _, h := range hours {
		out = append(out, toOpeningHourResponse(h))
	}
	return out, nil
}

func (s *hoursService) UpdateOpeningHour(ctx context.Context, id string, req *request.UpdateOpeningHourRequest) (*response.OpeningHourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	hourID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || hourID < 1 {
		return nil, fmt.Errorf("%w: opening hour %s", ErrInvalidID, id)
	}

	hour, err := s.repo.FindByID(ctx, hourID)
	if err != nil {
		return nil, fmt.Errorf("find opening hour: %w", err)
	}
	if hour == nil {
		return nil, fmt.Errorf("opening hour %d: %w", hourID, ErrNotFound)
	}

	hour.Day = strings.TrimSpace(req.Giorno)
	hour.Opens = strings.TrimSpace(req.Apertura)
	hour.Closes = strings.TrimSpace(req.Chiusura)

	if err := s.repo.Update(ctx, hour); err != nil {
		s.log.Error("Failed to update opening hour", zap.Error(err), zap.Int64("id", hourID))
		return nil, fmt.Errorf("update opening hour: %w", err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Failed to invalidate opening hours cache", zap.Error(err))
	}

	s.log.Info("Opening hour updated", zap.Int64("id", hourID), zap.String("day", hour.Day))
	return toOpeningHourResponse(hour), nil
}

func (s *hoursService) EnsureDefaults(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count opening hours: %w", err)
	}
	if count > 0 {
		return nil
	}

	if err := s.repo.CreateBatch(ctx, entity.DefaultOpeningHours()); err != nil {
		return fmt.Errorf("seed opening hours: %w", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("Failed to invalidate opening hours cache", zap.Error(err))
	}

	s.log.Info("Default opening hours seeded")
	return nil
}

func (s *hoursService) PromptContext(ctx context.Context, _ string) string {
	hours, err := s.list(ctx)
	if err != nil {
		s.log.Warn("Opening hours left out of prompt", zap.Error(err))
		return ""
	}
	if len(hours) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Orari di apertura aggiornati:")
	for _, h := range hours {
		fmt.Fprintf(&b, "\n- %s: %s - %s", h.Day, h.Opens, h.Closes)
	}
	return b.String()
}
