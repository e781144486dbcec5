package usecase

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/response"

	apperrors "hotel-booking/pkg/errors"

	"go.uber.org/zap"
)

type HotelService interface {
	GetHotels(ctx context.Context, userID int64) ([]response.HotelResponse, error)
	GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*response.HotelWithRoomsResponse, error)
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

// GetHotels lists hotels for browsing. It sits behind the same
// eligibility gate as booking: only paid, in-person, hotel-inclusive
// tickets may see the inventory.
func (s *hotelService) GetHotels(ctx context.Context, userID int64) ([]response.HotelResponse, error) {
	if _, _, err := checkEligibility(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	hotels, err := s.repo.Hotel.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get hotels: %w", err)
	}
	if len(hotels) == 0 {
		return nil, apperrors.NotFound("hotels")
	}

	hotelResponses := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		hotelResponses[i] = response.HotelToResponse(hotel)
	}

	return hotelResponses, nil
}

func (s *hotelService) GetHotelWithRooms(ctx context.Context, userID, hotelID int64) (*response.HotelWithRoomsResponse, error) {
	if _, _, err := checkEligibility(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("get hotel rooms: %w", err)
	}
	if hotel == nil {
		return nil, apperrors.NotFound("hotel")
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotel.ID)
	if err != nil {
		return nil, fmt.Errorf("get hotel rooms: %w", err)
	}

	resp := response.HotelWithRoomsToResponse(hotel, rooms)
	return &resp, nil
}
