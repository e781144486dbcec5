package entity

import "time"

// Booking assigns a user to a room. Room is populated only by queries
// that join the rooms table.
type Booking struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	RoomID    int64     `db:"room_id"`
	Room      *Room
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
