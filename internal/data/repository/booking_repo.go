package repository

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Sentinels surfaced by the capacity-guarded mutations. The usecase
// layer maps them onto its failure kinds.
var (
	ErrRoomFull       = errors.New("room capacity exhausted")
	ErrRoomMissing    = errors.New("room does not exist")
	ErrBookingMissing = errors.New("booking does not exist")
)

type BookingRepository interface {
	// FindByUserID returns the first booking held by the user with its
	// room joined, or (nil, nil) when the user holds none.
	FindByUserID(ctx context.Context, userID int64) (*entity.Booking, error)
	CountByRoomID(ctx context.Context, roomID int64) (int64, error)

	// CreateIfBelowCapacity inserts a booking for (userID, roomID) and
	// returns its assigned id. The room row is locked for the duration
	// of the occupancy recount, so two racing inserts cannot both pass
	// the capacity check.
	CreateIfBelowCapacity(ctx context.Context, userID, roomID int64) (int64, error)

	// ReassignIfBelowCapacity points an existing booking at roomID
	// under the same room-row lock.
	ReassignIfBelowCapacity(ctx context.Context, bookingID, roomID int64) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID int64) (*entity.Booking, error) {
	query := `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1
		ORDER BY b.id
		LIMIT 1
	`

	var booking entity.Booking
	var room entity.Room
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.HotelID,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find booking by user ID %d: %w", userID, err)
	}

	booking.Room = &room
	return &booking, nil
}

func (r *bookingRepository) CountByRoomID(ctx context.Context, roomID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE room_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by room ID",
			zap.Error(err),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("count bookings by room ID %d: %w", roomID, err)
	}

	return count, nil
}

func (r *bookingRepository) CreateIfBelowCapacity(ctx context.Context, userID, roomID int64) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin create booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.lockAndCheckCapacity(ctx, tx, roomID); err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (user_id, room_id, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id
	`, userID, roomID).Scan(&id)
	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int64("room_id", roomID),
		)
		return 0, fmt.Errorf("create booking for user %d in room %d: %w", userID, roomID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit create booking tx: %w", err)
	}

	return id, nil
}

func (r *bookingRepository) ReassignIfBelowCapacity(ctx context.Context, bookingID, roomID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reassign booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := r.lockAndCheckCapacity(ctx, tx, roomID); err != nil {
		return err
	}

	result, err := tx.Exec(ctx, `
		UPDATE bookings SET room_id = $2, updated_at = NOW() WHERE id = $1
	`, bookingID, roomID)
	if err != nil {
		r.log.Error("Failed to reassign booking",
			zap.Error(err),
			zap.Int64("booking_id", bookingID),
			zap.Int64("room_id", roomID),
		)
		return fmt.Errorf("reassign booking %d to room %d: %w", bookingID, roomID, err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingMissing
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reassign booking tx: %w", err)
	}

	return nil
}

// lockAndCheckCapacity takes a row lock on the target room and recounts
// its occupancy under that lock. Concurrent mutations for the same room
// queue behind the lock, so the count each one sees is final.
func (r *bookingRepository) lockAndCheckCapacity(ctx context.Context, tx pgx.Tx, roomID int64) error {
	var capacity int
	err := tx.QueryRow(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&capacity)
	if err == pgx.ErrNoRows {
		return ErrRoomMissing
	}
	if err != nil {
		return fmt.Errorf("lock room %d: %w", roomID, err)
	}

	var occupancy int
	err = tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&occupancy)
	if err != nil {
		return fmt.Errorf("count occupancy of room %d: %w", roomID, err)
	}

	if occupancy >= capacity {
		return ErrRoomFull
	}

	return nil
}
