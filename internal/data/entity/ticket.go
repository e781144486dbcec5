package entity

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	ID            int64  `db:"id"`
	Name          string `db:"name"`
	IsRemote      bool   `db:"is_remote"`
	IncludesHotel bool   `db:"includes_hotel"`
}

type Ticket struct {
	ID           int64        `db:"id"`
	EnrollmentID int64        `db:"enrollment_id"`
	TicketTypeID int64        `db:"ticket_type_id"`
	Status       TicketStatus `db:"status"`
	TicketType   TicketType
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
