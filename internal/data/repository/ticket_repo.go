package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// FindByEnrollmentID returns the enrollment's ticket with its type
	// joined, or (nil, nil) when none exists.
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*entity.Ticket, error)
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

func (r *ticketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*entity.Ticket, error) {
	query := `
		SELECT t.id, t.enrollment_id, t.ticket_type_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1
	`

	var ticket entity.Ticket
	err := r.db.QueryRow(ctx, query, enrollmentID).Scan(
		&ticket.ID,
		&ticket.EnrollmentID,
		&ticket.TicketTypeID,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TicketType.ID,
		&ticket.TicketType.Name,
		&ticket.TicketType.IsRemote,
		&ticket.TicketType.IncludesHotel,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find ticket by enrollment ID",
			zap.Error(err),
			zap.Int64("enrollment_id", enrollmentID),
		)
		return nil, fmt.Errorf("find ticket by enrollment ID %d: %w", enrollmentID, err)
	}

	return &ticket, nil
}
