package request

type CreateBookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}

type UpdateBookingRequest struct {
	RoomID int64 `json:"roomId" validate:"required,gt=0"`
}
