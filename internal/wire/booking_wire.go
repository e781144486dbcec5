package wire

import (
	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/repository"
	"hotel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// All booking routes require an authenticated session.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /booking - The caller's booking with its room
		r.Get("/booking", bookingHandler.GetBooking)

		// POST /booking - Book a room
		r.Post("/booking", bookingHandler.CreateBooking)

		// PUT /booking/{bookingId} - Move the booking to another room
		r.Put("/booking/{bookingId}", bookingHandler.UpdateBooking)
	})
}
