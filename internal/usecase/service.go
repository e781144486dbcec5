package usecase

import (
	"hotel-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Hotel   HotelService
	Booking BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Hotel:   NewHotelService(repo, log),
		Booking: NewBookingService(repo, log),
	}
}
