package usecase

import (
	"context"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
)

// Func-field mocks for the repository interfaces. A nil field means the
// record does not exist.

type mockEnrollmentRepo struct {
	findWithAddressFunc func(ctx context.Context, userID int64) (*entity.Enrollment, error)
	calls               int
}

func (m *mockEnrollmentRepo) FindWithAddressByUserID(ctx context.Context, userID int64) (*entity.Enrollment, error) {
	m.calls++
	if m.findWithAddressFunc != nil {
		return m.findWithAddressFunc(ctx, userID)
	}
	return nil, nil
}

type mockTicketRepo struct {
	findByEnrollmentFunc func(ctx context.Context, enrollmentID int64) (*entity.Ticket, error)
	calls                int
}

func (m *mockTicketRepo) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*entity.Ticket, error) {
	m.calls++
	if m.findByEnrollmentFunc != nil {
		return m.findByEnrollmentFunc(ctx, enrollmentID)
	}
	return nil, nil
}

type mockHotelRepo struct {
	findAllFunc  func(ctx context.Context) ([]*entity.Hotel, error)
	findByIDFunc func(ctx context.Context, id int64) (*entity.Hotel, error)
}

func (m *mockHotelRepo) FindAll(ctx context.Context) ([]*entity.Hotel, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockHotelRepo) FindByID(ctx context.Context, id int64) (*entity.Hotel, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockRoomRepo struct {
	findByIDFunc      func(ctx context.Context, id int64) (*entity.Room, error)
	findByHotelIDFunc func(ctx context.Context, hotelID int64) ([]*entity.Room, error)
	calls             int
}

func (m *mockRoomRepo) FindByID(ctx context.Context, id int64) (*entity.Room, error) {
	m.calls++
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomRepo) FindByHotelID(ctx context.Context, hotelID int64) ([]*entity.Room, error) {
	if m.findByHotelIDFunc != nil {
		return m.findByHotelIDFunc(ctx, hotelID)
	}
	return nil, nil
}

type mockBookingRepo struct {
	findByUserIDFunc  func(ctx context.Context, userID int64) (*entity.Booking, error)
	countByRoomIDFunc func(ctx context.Context, roomID int64) (int64, error)
	createFunc        func(ctx context.Context, userID, roomID int64) (int64, error)
	reassignFunc      func(ctx context.Context, bookingID, roomID int64) error
	calls             int

	createdUserID  int64
	createdRoomID  int64
	reassignedID   int64
	reassignedRoom int64
}

func (m *mockBookingRepo) FindByUserID(ctx context.Context, userID int64) (*entity.Booking, error) {
	m.calls++
	if m.findByUserIDFunc != nil {
		return m.findByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockBookingRepo) CountByRoomID(ctx context.Context, roomID int64) (int64, error) {
	m.calls++
	if m.countByRoomIDFunc != nil {
		return m.countByRoomIDFunc(ctx, roomID)
	}
	return 0, nil
}

func (m *mockBookingRepo) CreateIfBelowCapacity(ctx context.Context, userID, roomID int64) (int64, error) {
	m.calls++
	m.createdUserID = userID
	m.createdRoomID = roomID
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, roomID)
	}
	return 1, nil
}

func (m *mockBookingRepo) ReassignIfBelowCapacity(ctx context.Context, bookingID, roomID int64) error {
	m.calls++
	m.reassignedID = bookingID
	m.reassignedRoom = roomID
	if m.reassignFunc != nil {
		return m.reassignFunc(ctx, bookingID, roomID)
	}
	return nil
}

// eligibleTicket builds a paid, in-person, hotel-inclusive ticket.
func eligibleTicket() *entity.Ticket {
	return &entity.Ticket{
		ID:           10,
		EnrollmentID: 5,
		TicketTypeID: 3,
		Status:       entity.TicketStatusPaid,
		TicketType: entity.TicketType{
			ID:            3,
			Name:          "In-person with hotel",
			IsRemote:      false,
			IncludesHotel: true,
		},
	}
}

// eligibleRepo builds a repository group whose user 1 passes the
// eligibility gate. Tests override the fields they care about.
func eligibleRepo() *repository.Repository {
	return &repository.Repository{
		Enrollment: &mockEnrollmentRepo{
			findWithAddressFunc: func(ctx context.Context, userID int64) (*entity.Enrollment, error) {
				return &entity.Enrollment{ID: 5, UserID: userID, Name: "Attendee"}, nil
			},
		},
		Ticket: &mockTicketRepo{
			findByEnrollmentFunc: func(ctx context.Context, enrollmentID int64) (*entity.Ticket, error) {
				return eligibleTicket(), nil
			},
		},
		Hotel:   &mockHotelRepo{},
		Room:    &mockRoomRepo{},
		Booking: &mockBookingRepo{},
	}
}
