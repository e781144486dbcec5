package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EnrollmentRepository interface {
	// FindWithAddressByUserID returns the user's enrollment only when a
	// registered address exists for it, or (nil, nil) otherwise.
	FindWithAddressByUserID(ctx context.Context, userID int64) (*entity.Enrollment, error)
}

type enrollmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnrollmentRepository(db database.PgxIface, log *zap.Logger) EnrollmentRepository {
	return &enrollmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "enrollment")),
	}
}

func (r *enrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID int64) (*entity.Enrollment, error) {
	query := `
		SELECT e.id, e.user_id, e.name, e.created_at, e.updated_at
		FROM enrollments e
		WHERE e.user_id = $1
		  AND EXISTS (SELECT 1 FROM addresses a WHERE a.enrollment_id = e.id)
	`

	var enrollment entity.Enrollment
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&enrollment.ID,
		&enrollment.UserID,
		&enrollment.Name,
		&enrollment.CreatedAt,
		&enrollment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find enrollment by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find enrollment by user ID %d: %w", userID, err)
	}

	return &enrollment, nil
}
