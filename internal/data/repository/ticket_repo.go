package repository

import (
	"context"
	"errors"
	"fmt"

	"museum-chat/internal/data/entity"
	"museum-chat/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	Create(ctx context.Context, ticket *entity.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error)
	FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

const ticketColumns = `id, conversation_id, visit_date, visit_time, ticket_type, quantity, payment_method, total, qr_payload, created_at`

// Create stores a ticket. A ticket id that already exists is left as it is,
// so a replayed payment step does not issue a second ticket.
func (r *ticketRepository) Create(ctx context.Context, ticket *entity.Ticket) error {
	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING
	`

	tag, err := r.db.Exec(ctx, query,
		ticket.ID,
		ticket.ConversationID,
		ticket.VisitDate,
		ticket.VisitTime,
		ticket.TicketType,
		ticket.Quantity,
		ticket.PaymentMethod,
		ticket.Total,
		ticket.QRPayload,
		ticket.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create ticket",
			zap.Error(err),
			zap.String("ticket_id", ticket.ID.String()),
			zap.String("conversation_id", ticket.ConversationID.String()),
		)
		return fmt.Errorf("create ticket %s: %w", ticket.ID.String(), err)
	}
	if tag.RowsAffected() == 0 {
		r.log.Info("Ticket already issued", zap.String("ticket_id", ticket.ID.String()))
	}

	return nil
}

func (r *ticketRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`

	var t entity.Ticket
	err := scanTicket(r.db.QueryRow(ctx, query, id), &t)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by ID", zap.Error(err), zap.String("ticket_id", id.String()))
		return nil, fmt.Errorf("find ticket by ID %s: %w", id.String(), err)
	}

	return &t, nil
}

func (r *ticketRepository) FindByConversationID(ctx context.Context, conversationID uuid.UUID) ([]*entity.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE conversation_id = $1 ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		r.log.Error("Failed to find tickets by conversation",
			zap.Error(err),
			zap.String("conversation_id", conversationID.String()),
		)
		return nil, fmt.Errorf("find tickets by conversation %s: %w", conversationID.String(), err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var t entity.Ticket
		if err := scanTicket(rows, &t); err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tickets: %w", err)
	}

	return tickets, nil
}

func scanTicket(row pgx.Row, t *entity.Ticket) error {
	return row.Scan(
		&t.ID,
		&t.ConversationID,
		&t.VisitDate,
		&t.VisitTime,
		&t.TicketType,
		&t.Quantity,
		&t.PaymentMethod,
		&t.Total,
		&t.QRPayload,
		&t.CreatedAt,
	)
}
