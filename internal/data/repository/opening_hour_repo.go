package repository

import (
	"context"
	"errors"
	"fmt"

	"museum-chat/internal/data/entity"
	"museum-chat/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OpeningHourRepository interface {
	FindAll(ctx context.Context) ([]*entity.OpeningHour, error)
	FindByID(ctx context.Context, id int64) (*entity.OpeningHour, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, hours []*entity.OpeningHour) error
	Update(ctx context.Context, hour *entity.OpeningHour) error
}

type openingHourRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOpeningHourRepository(db database.PgxIface, log *zap.Logger) OpeningHourRepository {
	return &openingHourRepository{
		db:  db,
		log: log.With(zap.String("repository", "opening_hour")),
	}
}

func (r *openingHourRepository) FindAll(ctx context.Context) ([]*entity.OpeningHour, error) {
	query := `
		SELECT id, giorno, apertura, chiusura, created_at
		FROM orari
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find opening hours", zap.Error(err))
		return nil, fmt.Errorf("find opening hours: %w", err)
	}
	defer rows.Close()

	var hours []*entity.OpeningHour
	for rows.Next() {
		var h entity.OpeningHour
		if err := rows.Scan(&h.ID, &h.Day, &h.Opens, &h.Closes, &h.CreatedAt); err != nil {
			r.log.Error("Failed to scan opening hour row", zap.Error(err))
			return nil, fmt.Errorf("scan opening hour row: %w", err)
		}
		hours = append(hours, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate opening hours: %w", err)
	}

	return hours, nil
}

func (r *openingHourRepository) FindByID(ctx context.Context, id int64) (*entity.OpeningHour, error) {
	query := `
		SELECT id, giorno, apertura, chiusura, created_at
		FROM orari
		WHERE id = $1
	`

	var h entity.OpeningHour
	err := r.db.QueryRow(ctx, query, id).Scan(&h.ID, &h.Day, &h.Opens, &h.Closes, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find opening hour by ID", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("find opening hour by ID %d: %w", id, err)
	}

	return &h, nil
}

func (r *openingHourRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orari`).Scan(&count); err != nil {
		r.log.Error("Failed to count opening hours", zap.Error(err))
		return 0, fmt.Errorf("count opening hours: %w", err)
	}
	return count, nil
}

func (r *openingHourRepository) CreateBatch(ctx context.Context, hours []*entity.OpeningHour) error {
	query := `
		INSERT INTO orari (giorno, apertura, chiusura)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, h := range hours {
			if err := tx.QueryRow(ctx, query, h.Day, h.Opens, h.Closes).Scan(&h.ID, &h.CreatedAt); err != nil {
				r.log.Error("Failed to insert opening hour", zap.Error(err), zap.String("day", h.Day))
				return fmt.Errorf("insert opening hour %s: %w", h.Day, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.log.Info("Opening hours created", zap.Int("count", len(hours)))
	return nil
}

func (r *openingHourRepository) Update(ctx context.Context, hour *entity.OpeningHour) error {
	query := `
		UPDATE orari
		SET giorno = $2, apertura = $3, chiusura = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, hour.ID, hour.Day, hour.Opens, hour.Closes)
	if err != nil {
		r.log.Error("Failed to update opening hour", zap.Error(err), zap.Int64("id", hour.ID))
		return fmt.Errorf("update opening hour %d: %w", hour.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("opening hour %d not found", hour.ID)
	}

	return nil
}
