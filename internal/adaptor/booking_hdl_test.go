package adaptor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	apperrors "hotel-booking/pkg/errors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockBookingService struct {
	getFunc    func(ctx context.Context, userID int64) (*response.BookingResponse, error)
	createFunc func(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error)
	updateFunc func(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error)
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID int64) (*response.BookingResponse, error) {
	return m.getFunc(ctx, userID)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
	return m.createFunc(ctx, userID, req)
}

func (m *mockBookingService) UpdateBooking(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
	return m.updateFunc(ctx, userID, bookingID, req)
}

// newBookingRouter wires the handler behind routes that put userID on
// the context the way the auth middleware does.
func newBookingRouter(svc *mockBookingService, userID int64) *chi.Mux {
	h := NewBookingHandler(svc, zap.NewNop())

	r := chi.NewRouter()
	if userID > 0 {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				next.ServeHTTP(w, req.WithContext(utils.SetUserContext(req.Context(), userID)))
			})
		})
	}
	r.Get("/booking", h.GetBooking)
	r.Post("/booking", h.CreateBooking)
	r.Put("/booking/{bookingId}", h.UpdateBooking)
	return r
}

func TestGetBooking_Unauthenticated(t *testing.T) {
	router := newBookingRouter(&mockBookingService{}, 0)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetBooking_OK(t *testing.T) {
	svc := &mockBookingService{
		getFunc: func(ctx context.Context, userID int64) (*response.BookingResponse, error) {
			return &response.BookingResponse{
				ID:   42,
				Room: response.RoomResponse{ID: 2, Name: "101", Capacity: 3, HotelID: 7},
			}, nil
		},
	}
	router := newBookingRouter(svc, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status bool                     `json:"status"`
		Data   response.BookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Status)
	assert.Equal(t, int64(42), body.Data.ID)
	assert.Equal(t, int64(2), body.Data.Room.ID)
}

func TestGetBooking_NotFoundMapsTo404(t *testing.T) {
	svc := &mockBookingService{
		getFunc: func(ctx context.Context, userID int64) (*response.BookingResponse, error) {
			return nil, apperrors.NotFound("booking")
		},
	}
	router := newBookingRouter(svc, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBooking_ForbiddenMapsTo403(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
			return nil, apperrors.Forbidden("room capacity exhausted")
		},
	}
	router := newBookingRouter(svc, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId":2}`)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateBooking_OK(t *testing.T) {
	svc := &mockBookingService{
		createFunc: func(ctx context.Context, userID int64, req *request.CreateBookingRequest) (*response.CreateBookingResponse, error) {
			assert.Equal(t, int64(1), userID)
			assert.Equal(t, int64(2), req.RoomID)
			return &response.CreateBookingResponse{BookingID: 77}, nil
		},
	}
	router := newBookingRouter(svc, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{"roomId":2}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data response.CreateBookingResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(77), body.Data.BookingID)
}

func TestCreateBooking_BadBody(t *testing.T) {
	router := newBookingRouter(&mockBookingService{}, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(`{`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBooking_OK(t *testing.T) {
	svc := &mockBookingService{
		updateFunc: func(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
			assert.Equal(t, int64(42), bookingID)
			assert.Equal(t, int64(3), req.RoomID)
			return &response.CreateBookingResponse{BookingID: bookingID}, nil
		},
	}
	router := newBookingRouter(svc, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/booking/42", strings.NewReader(`{"roomId":3}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateBooking_InvalidBookingID(t *testing.T) {
	router := newBookingRouter(&mockBookingService{}, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/booking/abc", strings.NewReader(`{"roomId":3}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBooking_UnknownFailureKindMapsToBadRequest(t *testing.T) {
	svc := &mockBookingService{
		updateFunc: func(ctx context.Context, userID, bookingID int64, req *request.UpdateBookingRequest) (*response.CreateBookingResponse, error) {
			return nil, apperrors.New("SOMETHING_ELSE", "odd failure", http.StatusTeapot)
		},
	}
	router := newBookingRouter(svc, 1)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/booking/42", strings.NewReader(`{"roomId":3}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
