package adaptor

import (
	"net/http"

	"hotel-booking/internal/usecase"
	"hotel-booking/pkg/utils"

	apperrors "hotel-booking/pkg/errors"

	"go.uber.org/zap"
)

type Handler struct {
	Hotel   *HotelHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Hotel:   NewHotelHandler(service.Hotel, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// writeServiceError translates a usecase failure into a response.
// Business failures carry their kind; anything unrecognized becomes a
// generic client error, and store faults stay internal.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := apperrors.AsAppError(err)

	switch appErr.Code {
	case apperrors.CodeNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, appErr.Message)

	case apperrors.CodeForbidden:
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, appErr.Message)

	case apperrors.CodeUnauthorized:
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, appErr.Message)

	case apperrors.CodeValidation, apperrors.CodeBadRequest:
		log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, appErr.Message, appErr.Details)

	case apperrors.CodeInternal:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	default:
		log.Warn(operation+" failed - unrecognized kind", zap.Error(err))
		utils.ResponseBadRequest(w, appErr.Message, nil)
	}
}
