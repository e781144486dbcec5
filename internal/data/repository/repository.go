package repository

import (
	"hotel-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Enrollment EnrollmentRepository
	Ticket     TicketRepository
	Hotel      HotelRepository
	Room       RoomRepository
	Booking    BookingRepository
	Session    SessionRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Enrollment: NewEnrollmentRepository(db, log),
		Ticket:     NewTicketRepository(db, log),
		Hotel:      NewHotelRepository(db, log),
		Room:       NewRoomRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Session:    NewSessionRepository(db, log),
	}
}
