package usecase

import (
	"context"
	"errors"
	"fmt"

	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	apperrors "hotel-booking/pkg/errors"

	"go.uber.org/zap"
)

type BookingService interface {
	GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error)
	CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error) {
	if _, _, err := checkEligibility(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("booking")
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	// A missing room id short-circuits before any store read.
	if req.RoomID <= 0 {
		return nil, apperrors.NotFound("room")
	}

	if _, _, err := checkEligibility(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	// Capacity is always checked against the destination room.
	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if room == nil {
		return nil, apperrors.NotFound("room")
	}

	occupancy, err := s.repo.Booking.CountByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	if occupancy >= int64(room.Capacity) {
		return nil, apperrors.Forbidden("room capacity exhausted")
	}

	// The insert re-checks capacity under a room-row lock, so a racing
	// request that passed the count above still cannot overshoot.
	bookingID, err := s.repo.Booking.CreateIfBelowCapacity(ctx, userID, room.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomFull):
			return nil, apperrors.Forbidden("room capacity exhausted")
		case errors.Is(err, repository.ErrRoomMissing):
			return nil, apperrors.NotFound("room")
		default:
			return nil, fmt.Errorf("create booking: %w", err)
		}
	}

	s.log.Info("Booking created",
		zap.Int64("booking_id", bookingID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", room.ID),
	)

	return &response.CreateBookingResponse{BookingID: bookingID}, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update booking validation failed", zap.Any("errors", errs))
		return nil, apperrors.Validation("validation failed", toDetails(errs))
	}

	if _, _, err := checkEligibility(ctx, s.repo, userID); err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if existing == nil {
		return nil, apperrors.Forbidden("user has no booking to change")
	}
	if existing.ID != bookingID {
		return nil, apperrors.Forbidden("booking is not held by this user")
	}

	room, err := s.repo.Room.FindByID(ctx, req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if room == nil {
		return nil, apperrors.NotFound("room")
	}

	occupancy, err := s.repo.Booking.CountByRoomID(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}
	if occupancy >= int64(room.Capacity) {
		return nil, apperrors.Forbidden("room capacity exhausted")
	}

	if err := s.repo.Booking.ReassignIfBelowCapacity(ctx, existing.ID, room.ID); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomFull):
			return nil, apperrors.Forbidden("room capacity exhausted")
		case errors.Is(err, repository.ErrRoomMissing):
			return nil, apperrors.NotFound("room")
		case errors.Is(err, repository.ErrBookingMissing):
			return nil, apperrors.NotFound("booking")
		default:
			return nil, fmt.Errorf("update booking: %w", err)
		}
	}

	s.log.Info("Booking reassigned",
		zap.Int64("booking_id", existing.ID),
		zap.Int64("user_id", userID),
		zap.Int64("room_id", room.ID),
	)

	return &response.CreateBookingResponse{BookingID: existing.ID}, nil
}

func toDetails(errs map[string]string) map[string]any {
	details := make(map[string]any, len(errs))
	for field, msg := range errs {
		details[field] = msg
	}
	return details
}
