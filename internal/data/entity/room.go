package entity

import "time"

type Room struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Capacity  int       `db:"capacity"`
	HotelID   int64     `db:"hotel_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
