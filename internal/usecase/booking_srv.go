package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"
	"seat-booking/internal/event"
	"seat-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway charges the booking total. It is called without any seat lock held;
// the hold expiry is what protects the seats meanwhile.
type PaymentGateway interface {
	Charge(ctx context.Context, amount int64, method entity.PaymentMethod) (*entity.PaymentResult, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingLedger(ctx context.Context, userID uuid.UUID, bookingID string) ([]response.LedgerEntryResponse, error)

	// PayBooking charges the booking through the gateway and applies the result.
	PayBooking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.PayBookingRequest) (*response.BookingResponse, error)
	// ConfirmPayment applies a payment result. Repeating it for a confirmed booking is a no-op.
	ConfirmPayment(ctx context.Context, bookingID string, result entity.PaymentResult) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)

	// ExpireStaleBookings cancels open bookings whose hold elapsed at now and frees their seats.
	ExpireStaleBookings(ctx context.Context, now time.Time) (int, error)
	RunSweeper(ctx context.Context, interval time.Duration) error
	// RebuildSeatState replays the ledger, overlaid with the booking rows, into the seat
	// store. Seats already claimed in the store are kept.
	RebuildSeatState(ctx context.Context, showtimeID string) (*response.RebuildResponse, error)
}

type BookingOptions struct {
	HoldDuration time.Duration
	SweepBatch   int
	Now          func() time.Time
}

type bookingService struct {
	repo      *repository.Repository
	gateway   PaymentGateway
	publisher event.Publisher
	opts      BookingOptions
	log       *zap.Logger
}

func NewBookingService(
	repo *repository.Repository,
	gateway PaymentGateway,
	publisher event.Publisher,
	opts BookingOptions,
	log *zap.Logger,
) BookingService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SweepBatch <= 0 {
		opts.SweepBatch = 100
	}
	if publisher == nil {
		publisher = event.NewNoopPublisher()
	}

	return &bookingService{
		repo:      repo,
		gateway:   gateway,
		publisher: publisher,
		opts:      opts,
		log:       log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	showtimeID := uuid.MustParse(req.ShowtimeID)
	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("find showtime %s: %w", req.ShowtimeID, err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowtimeNotFound, req.ShowtimeID)
	}

	now := s.opts.Now()
	if !now.Before(showtime.StartsAt) {
		return nil, fmt.Errorf("%w: %s", ErrShowtimeStarted, req.ShowtimeID)
	}

	for _, seat := range req.Seats {
		if !showtime.HasSeat(seat) {
			return nil, fmt.Errorf("%w: seat %d outside 1..%d", ErrValidation, seat, showtime.Capacity)
		}
	}

	bookingID := uuid.New()
	hold, err := s.repo.Seats.TryHoldSeats(ctx, showtimeID, bookingID, req.Seats, s.opts.HoldDuration)
	if err != nil {
		if errors.Is(err, repository.ErrSeatsUnavailable) {
			s.appendLedger(ctx, &entity.LedgerEntry{
				BookingID:  bookingID,
				ShowtimeID: showtimeID,
				Seats:      req.Seats,
				Kind:       entity.LedgerKindHoldRejected,
				Reason:     err.Error(),
			})
			s.log.Info("Seats unavailable",
				zap.String("showtime_id", req.ShowtimeID),
				zap.String("user_id", userID.String()),
				zap.Ints("seats", req.Seats),
			)
		}
		return nil, fmt.Errorf("hold seats: %w", err)
	}

	booking := &entity.Booking{
		Base: entity.Base{
			ID:        bookingID,
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		ShowtimeID:    showtimeID,
		Seats:         req.Seats,
		TotalPrice:    showtime.Price * int64(len(req.Seats)),
		State:         entity.BookingStateSeatsHeld,
		HoldExpiresAt: hold.ExpiresAt,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// Give the seats back so a failed insert leaves no orphan hold.
		if _, relErr := s.repo.Seats.ReleaseSeats(context.WithoutCancel(ctx), showtimeID, bookingID, req.Seats); relErr != nil {
			s.log.Error("Failed to release seats after booking insert failure",
				zap.Error(relErr),
				zap.String("booking_id", bookingID.String()),
			)
		}
		return nil, fmt.Errorf("create booking: %w", err)
	}

	expiresAt := hold.ExpiresAt
	s.appendLedger(ctx, &entity.LedgerEntry{
		BookingID:  bookingID,
		ShowtimeID: showtimeID,
		Seats:      req.Seats,
		Kind:       entity.LedgerKindHold,
		ExpiresAt:  &expiresAt,
	})

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("showtime_id", req.ShowtimeID),
		zap.Ints("seats", req.Seats),
		zap.Int64("total_price", booking.TotalPrice),
		zap.Time("hold_expires_at", booking.HoldExpiresAt),
	)

	return response.BookingToResponse(booking, nil), nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	// Reads apply the same expiry rule as the sweeper.
	if booking.Open() && booking.HoldExpired(s.opts.Now()) {
		if err := s.expireBooking(ctx, booking); err != nil {
			return nil, err
		}
		if booking, err = s.findBooking(ctx, bookingID); err != nil {
			return nil, err
		}
	}

	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking payment: %w", err)
	}

	return response.BookingToResponse(booking, payment), nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	data := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		data[i] = *response.BookingToResponse(b, nil)
	}

	return response.NewPaginatedResponse(data, req.CurrentPage(), limit, total), nil
}

func (s *bookingService) GetBookingLedger(ctx context.Context, userID uuid.UUID, bookingID string) ([]response.LedgerEntryResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.Ledger.FindByBooking(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking ledger: %w", err)
	}

	resp := make([]response.LedgerEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = response.LedgerEntryToResponse(e)
	}
	return resp, nil
}

func (s *bookingService) PayBooking(ctx context.Context, userID uuid.UUID, bookingID string, req *request.PayBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.State == entity.BookingStateConfirmed {
		return s.bookingResponse(ctx, booking)
	}
	if booking.Open() && booking.HoldExpired(s.opts.Now()) {
		if err := s.expireBooking(ctx, booking); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("pay booking %s: %w", bookingID, ErrHoldExpired)
	}
	if booking.State != entity.BookingStateSeatsHeld {
		return nil, fmt.Errorf("%w: cannot pay booking in state %s", ErrInvalidState, booking.State)
	}

	ok, err := s.repo.Booking.Transition(ctx, booking.ID,
		[]entity.BookingState{entity.BookingStateSeatsHeld}, entity.BookingStateAwaitingPayment, nil)
	if err != nil {
		return nil, fmt.Errorf("start payment: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: payment already in progress", ErrInvalidState)
	}

	method := entity.PaymentMethod(req.Method)
	result, err := s.gateway.Charge(ctx, booking.TotalPrice, method)
	if err != nil {
		s.log.Error("Payment gateway error",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		// No result came back, so the booking may be paid again while its hold lasts.
		if _, revErr := s.repo.Booking.Transition(context.WithoutCancel(ctx), booking.ID,
			[]entity.BookingState{entity.BookingStateAwaitingPayment}, entity.BookingStateSeatsHeld, nil); revErr != nil {
			s.log.Error("Failed to revert booking to seats_held",
				zap.Error(revErr),
				zap.String("booking_id", bookingID),
			)
		}
		return nil, fmt.Errorf("charge booking %s: %w", bookingID, err)
	}

	return s.ConfirmPayment(ctx, bookingID, *result)
}

func (s *bookingService) ConfirmPayment(ctx context.Context, bookingID string, result entity.PaymentResult) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.State {
	case entity.BookingStateConfirmed:
		return s.bookingResponse(ctx, booking)
	case entity.BookingStateSeatsHeld, entity.BookingStateAwaitingPayment, entity.BookingStateCanceled:
	default:
		return nil, fmt.Errorf("%w: cannot confirm booking in state %s", ErrInvalidState, booking.State)
	}

	if !result.Method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrValidation, result.Method)
	}
	if result.Status != entity.PaymentStatusCompleted && result.Status != entity.PaymentStatusFailed {
		return nil, fmt.Errorf("%w: payment status must be completed or failed", ErrValidation)
	}
	if result.Amount != booking.TotalPrice {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrAmountMismatch, result.Amount, booking.TotalPrice)
	}

	// A result for a closed or elapsed booking is still recorded.
	if booking.State == entity.BookingStateCanceled {
		if _, err := s.recordLatePayment(ctx, booking, result); err != nil {
			return nil, err
		}
		return nil, canceledError(booking)
	}

	if booking.HoldExpired(s.opts.Now()) {
		if _, err := s.recordLatePayment(ctx, booking, result); err != nil {
			return nil, err
		}
		if err := s.expireBooking(ctx, booking); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, ErrHoldExpired)
	}

	payment, err := s.recordPayment(ctx, booking, result)
	if err != nil {
		return nil, err
	}

	if payment.Status == entity.PaymentStatusFailed {
		if err := s.closeBooking(ctx, booking, entity.CancelReasonPaymentFailed); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, ErrPaymentFailed)
	}

	if err := s.repo.Seats.ConfirmSeats(ctx, booking.ShowtimeID, booking.ID, booking.Seats); err != nil {
		if errors.Is(err, repository.ErrHoldExpired) {
			s.log.Warn("Hold lost before confirmation; payment recorded without seats",
				zap.String("booking_id", bookingID),
				zap.String("payment_id", payment.ID.String()),
			)
			if expErr := s.expireBooking(ctx, booking); expErr != nil {
				return nil, expErr
			}
		}
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	ok, err := s.repo.Booking.Transition(ctx, booking.ID,
		[]entity.BookingState{entity.BookingStateSeatsHeld, entity.BookingStateAwaitingPayment},
		entity.BookingStateConfirmed, nil)
	if err != nil {
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}
	if !ok {
		current, err := s.findBooking(ctx, bookingID)
		if err != nil {
			return nil, err
		}
		if current.State == entity.BookingStateConfirmed {
			return response.BookingToResponse(current, payment), nil
		}
		return nil, canceledError(current)
	}

	// A retried confirmation must not produce a second ledger entry.
	confirmed, err := s.repo.Ledger.HasKind(ctx, booking.ID, entity.LedgerKindConfirm)
	if err != nil {
		s.log.Error("Failed to check ledger for confirmation", zap.Error(err), zap.String("booking_id", bookingID))
	}
	if err == nil && !confirmed {
		s.appendLedger(ctx, &entity.LedgerEntry{
			BookingID:  booking.ID,
			ShowtimeID: booking.ShowtimeID,
			Seats:      booking.Seats,
			Kind:       entity.LedgerKindConfirm,
		})
	}

	booking.State = entity.BookingStateConfirmed
	s.publish(ctx, event.RoutingBookingConfirmed, booking)

	s.log.Info("Booking confirmed",
		zap.String("booking_id", bookingID),
		zap.String("payment_id", payment.ID.String()),
		zap.Int64("amount", payment.Amount),
	)

	return response.BookingToResponse(booking, payment), nil
}

// recordPayment stores the result once per booking. A concurrent or retried call
// gets the payment that was stored first.
func (s *bookingService) recordPayment(ctx context.Context, booking *entity.Booking, result entity.PaymentResult) (*entity.Payment, error) {
	now := s.opts.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingID: booking.ID,
		Amount:    result.Amount,
		Method:    result.Method,
		Status:    result.Status,
	}
	if result.TransactionID != "" {
		txID := result.TransactionID
		payment.TransactionID = &txID
	}

	err := s.repo.Payment.Create(ctx, payment)
	if err == nil {
		return payment, nil
	}
	if !errors.Is(err, repository.ErrDuplicate) {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	existing, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("find existing payment: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("find existing payment for booking %s: %w", booking.ID.String(), ErrInvalidState)
	}
	return existing, nil
}

// recordLatePayment stores a result for a booking that can no longer be confirmed.
func (s *bookingService) recordLatePayment(ctx context.Context, booking *entity.Booking, result entity.PaymentResult) (*entity.Payment, error) {
	payment, err := s.recordPayment(ctx, booking, result)
	if err != nil {
		return nil, err
	}
	if payment.Status == entity.PaymentStatusCompleted {
		s.log.Warn("Payment completed for a booking that lost its seats",
			zap.String("booking_id", booking.ID.String()),
			zap.String("payment_id", payment.ID.String()),
			zap.String("state", string(booking.State)),
			zap.Int64("amount", payment.Amount),
		)
	}
	return payment, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findOwnedBooking(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.State {
	case entity.BookingStateCanceled:
		return response.BookingToResponse(booking, nil), nil
	case entity.BookingStateCreated, entity.BookingStateSeatsHeld:
	case entity.BookingStateConfirmed:
		return nil, fmt.Errorf("%w: confirmed bookings cannot be canceled", ErrInvalidState)
	default:
		return nil, fmt.Errorf("%w: payment in progress", ErrInvalidState)
	}

	if err := s.closeBooking(ctx, booking, entity.CancelReasonUser); err != nil {
		return nil, err
	}

	current, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return response.BookingToResponse(current, nil), nil
}

func (s *bookingService) expireBooking(ctx context.Context, booking *entity.Booking) error {
	return s.closeBooking(ctx, booking, entity.CancelReasonExpired)
}

// closeBooking cancels an open booking and frees its seats. The state change is a
// compare-and-set, so when several paths race only the winner releases and records.
func (s *bookingService) closeBooking(ctx context.Context, booking *entity.Booking, reason entity.CancelReason) error {
	from := []entity.BookingState{entity.BookingStateSeatsHeld, entity.BookingStateAwaitingPayment}
	kind := entity.LedgerKindRelease
	if reason == entity.CancelReasonUser {
		from = []entity.BookingState{entity.BookingStateCreated, entity.BookingStateSeatsHeld}
		kind = entity.LedgerKindCancel
	}

	ok, err := s.repo.Booking.Transition(ctx, booking.ID, from, entity.BookingStateCanceled, &reason)
	if err != nil {
		return fmt.Errorf("cancel booking %s: %w", booking.ID.String(), err)
	}
	if !ok {
		// Expiry and payment failure yield to whichever path moved the booking first.
		if reason != entity.CancelReasonUser {
			return nil
		}
		current, err := s.findBooking(ctx, booking.ID.String())
		if err != nil {
			return err
		}
		if current.State == entity.BookingStateCanceled {
			return nil
		}
		return fmt.Errorf("%w: booking moved to %s", ErrInvalidState, current.State)
	}

	ctx = context.WithoutCancel(ctx)
	freed, err := s.repo.Seats.ReleaseSeats(ctx, booking.ShowtimeID, booking.ID, booking.Seats)
	if err != nil {
		// The hold still expires on its own; the booking is already canceled.
		s.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.Ints("seats", booking.Seats),
		)
	}

	s.appendLedger(ctx, &entity.LedgerEntry{
		BookingID:  booking.ID,
		ShowtimeID: booking.ShowtimeID,
		Seats:      booking.Seats,
		Kind:       kind,
		Reason:     string(reason),
	})

	booking.State = entity.BookingStateCanceled
	booking.CancelReason = &reason
	s.publish(ctx, event.RoutingBookingCanceled, booking)

	s.log.Info("Booking canceled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reason", string(reason)),
		zap.Int("seats_freed", freed),
	)
	return nil
}

func (s *bookingService) RebuildSeatState(ctx context.Context, showtimeID string) (*response.RebuildResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid showtime ID %s", ErrValidation, showtimeID)
	}

	entries, err := s.repo.Ledger.FindByShowtime(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load ledger for showtime %s: %w", showtimeID, err)
	}

	now := s.opts.Now()
	owners, err := s.repo.Booking.FindSeatOwners(ctx, id, now)
	if err != nil {
		return nil, fmt.Errorf("load seat owners for showtime %s: %w", showtimeID, err)
	}

	states := MergeBookingSeats(ReplaySeatState(entries, now), owners, now)
	if err := s.repo.Seats.Restore(ctx, id, states); err != nil {
		return nil, fmt.Errorf("restore seats for showtime %s: %w", showtimeID, err)
	}

	s.log.Info("Seat state rebuilt from ledger",
		zap.String("showtime_id", showtimeID),
		zap.Int("ledger_entries", len(entries)),
		zap.Int("bookings", len(owners)),
		zap.Int("seats_restored", len(states)),
	)

	return &response.RebuildResponse{ShowtimeID: showtimeID, SeatsRestored: len(states)}, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", ErrValidation, bookingID)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}
	return booking, nil
}

func (s *bookingService) findOwnedBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*entity.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, bookingID)
	}
	return booking, nil
}

func (s *bookingService) bookingResponse(ctx context.Context, booking *entity.Booking) (*response.BookingResponse, error) {
	payment, err := s.repo.Payment.FindByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, fmt.Errorf("get booking payment: %w", err)
	}
	return response.BookingToResponse(booking, payment), nil
}

func canceledError(b *entity.Booking) error {
	if b.CancelReason != nil {
		switch *b.CancelReason {
		case entity.CancelReasonExpired:
			return fmt.Errorf("booking %s: %w", b.ID.String(), ErrHoldExpired)
		case entity.CancelReasonPaymentFailed:
			return fmt.Errorf("booking %s: %w", b.ID.String(), ErrPaymentFailed)
		}
	}
	return fmt.Errorf("%w: booking %s is canceled", ErrInvalidState, b.ID.String())
}

// appendLedger records a transition. Failures are logged; the seat store stays authoritative.
func (s *bookingService) appendLedger(ctx context.Context, entry *entity.LedgerEntry) {
	entry.CreatedAt = s.opts.Now()
	if err := s.repo.Ledger.Append(ctx, entry); err != nil {
		s.log.Error("Failed to append ledger entry",
			zap.Error(err),
			zap.String("booking_id", entry.BookingID.String()),
			zap.String("kind", string(entry.Kind)),
		)
	}
}

func (s *bookingService) publish(ctx context.Context, routingKey string, b *entity.Booking) {
	evt := event.BookingEvent{
		BookingID:  b.ID.String(),
		UserID:     b.UserID.String(),
		ShowtimeID: b.ShowtimeID.String(),
		Seats:      b.Seats,
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status()),
		OccurredAt: s.opts.Now(),
	}
	if b.CancelReason != nil {
		evt.Reason = string(*b.CancelReason)
	}

	if err := s.publisher.Publish(ctx, routingKey, evt); err != nil {
		s.log.Warn("Failed to publish booking event",
			zap.Error(err),
			zap.String("booking_id", evt.BookingID),
			zap.String("routing_key", routingKey),
		)
	}
}
