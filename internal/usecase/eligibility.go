package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"

	apperrors "hotel-booking/pkg/errors"
)

// checkEligibility is the single gate shared by every hotel and booking
// operation: the user must have an enrollment with an address, a ticket
// for it, and that ticket must be an in-person, hotel-inclusive, paid
// one. Failures propagate unchanged to the caller.
func checkEligibility(ctx context.Context, repo *repository.Repository, userID int64) (*entity.Enrollment, *entity.Ticket, error) {
	enrollment, err := repo.Enrollment.FindWithAddressByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if enrollment == nil {
		return nil, nil, apperrors.NotFound("enrollment")
	}

	ticket, err := repo.Ticket.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return nil, nil, err
	}
	if ticket == nil {
		return nil, nil, apperrors.NotFound("ticket")
	}

	if ticket.TicketType.IsRemote || !ticket.TicketType.IncludesHotel || ticket.Status == entity.TicketStatusReserved {
		return nil, nil, apperrors.Forbidden("ticket does not grant a hotel booking")
	}

	return enrollment, ticket, nil
}
