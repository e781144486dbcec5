package response

import (
	"time"

	"hotel-booking/internal/data/entity"
)

// RoomResponse is the full room record exposed with a booking.
type RoomResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingResponse projects a booking to its id plus the assigned room.
// The holder's user id and the booking timestamps stay internal.
type BookingResponse struct {
	ID   int64        `json:"id"`
	Room RoomResponse `json:"Room"`
}

type CreateBookingResponse struct {
	BookingID int64 `json:"bookingId"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:        room.ID,
		Name:      room.Name,
		Capacity:  room.Capacity,
		HotelID:   room.HotelID,
		CreatedAt: room.CreatedAt,
		UpdatedAt: room.UpdatedAt,
	}
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:   booking.ID,
		Room: RoomToResponse(booking.Room),
	}
}
