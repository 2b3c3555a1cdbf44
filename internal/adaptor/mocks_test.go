package adaptor

import (
	"context"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, req)
	if b := args.Get(0); b != nil {
		return b.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID)
	if b := args.Get(0); b != nil {
		return b.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	args := m.Called(ctx, userID, req)
	if p := args.Get(0); p != nil {
		return p.(*response.PaginatedResponse[response.BookingResponse]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) GetBookingLedger(ctx context.Context, userID uuid.UUID, bookingID string) ([]response.LedgerEntryResponse, error) {
	args := m.Called(ctx, userID, bookingID)
	if e := args.Get(0); e != nil {
		return e.([]response.LedgerEntryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) PayBooking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.PayBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID, req)
	if b := args.Get(0); b != nil {
		return b.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ConfirmPayment(ctx context.Context, bookingID string, result entity.PaymentResult) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, result)
	if b := args.Get(0); b != nil {
		return b.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, bookingID)
	if b := args.Get(0); b != nil {
		return b.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ExpireStaleBookings(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *mockBookingService) RunSweeper(ctx context.Context, interval time.Duration) error {
	return m.Called(ctx, interval).Error(0)
}

func (m *mockBookingService) RebuildSeatState(ctx context.Context, showtimeID string) (*response.RebuildResponse, error) {
	args := m.Called(ctx, showtimeID)
	if r := args.Get(0); r != nil {
		return r.(*response.RebuildResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShowtimeService struct {
	mock.Mock
}

func (m *mockShowtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	args := m.Called(ctx, req)
	if s := args.Get(0); s != nil {
		return s.(*response.ShowtimeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShowtimeService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	args := m.Called(ctx, showtimeID)
	if s := args.Get(0); s != nil {
		return s.(*response.ShowtimeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShowtimeService) ListUpcoming(ctx context.Context, limit int) ([]*response.ShowtimeResponse, error) {
	args := m.Called(ctx, limit)
	if s := args.Get(0); s != nil {
		return s.([]*response.ShowtimeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockShowtimeService) GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error) {
	args := m.Called(ctx, showtimeID)
	if s := args.Get(0); s != nil {
		return s.(*response.SeatMapResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
