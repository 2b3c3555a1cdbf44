package usecase

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"testing"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fakeShowtimeRepo struct {
	mu        sync.Mutex
	showtimes map[uuid.UUID]entity.Showtime
}

func (r *fakeShowtimeRepo) Create(_ context.Context, s *entity.Showtime) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.showtimes[s.ID] = *s
	return nil
}

func (r *fakeShowtimeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Showtime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.showtimes[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *fakeShowtimeRepo) ListUpcoming(_ context.Context, now time.Time, limit int) ([]*entity.Showtime, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Showtime
	for _, s := range r.showtimes {
		if s.StartsAt.After(now) {
			s := s
			out = append(out, &s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]entity.Booking
}

func (r *fakeBookingRepo) Create(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &b, nil
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBookingRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, b := range r.bookings {
		if b.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookingRepo) Transition(_ context.Context, id uuid.UUID, from []entity.BookingState, to entity.BookingState, reason *entity.CancelReason) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok || !slices.Contains(from, b.State) {
		return false, nil
	}
	b.State = to
	if reason != nil {
		rc := *reason
		b.CancelReason = &rc
	}
	r.bookings[id] = b
	return true, nil
}

func (r *fakeBookingRepo) FindExpiredOpen(_ context.Context, now time.Time, limit int) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.Open() && b.HoldExpired(now) {
			b := b
			out = append(out, &b)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeBookingRepo) FindSeatOwners(_ context.Context, showtimeID uuid.UUID, now time.Time) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.ShowtimeID != showtimeID {
			continue
		}
		if b.State == entity.BookingStateConfirmed || (b.Open() && !b.HoldExpired(now)) {
			b := b
			out = append(out, &b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

type fakePaymentRepo struct {
	mu       sync.Mutex
	payments map[uuid.UUID]entity.Payment
}

func (r *fakePaymentRepo) Create(_ context.Context, p *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.payments[p.BookingID]; ok {
		return repository.ErrDuplicate
	}
	r.payments[p.BookingID] = *p
	return nil
}

func (r *fakePaymentRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.payments[bookingID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

type fakeLedgerRepo struct {
	mu      sync.Mutex
	entries []entity.LedgerEntry
	// reject makes Append fail for the listed kinds.
	reject map[entity.LedgerKind]bool
}

var errLedgerDown = errors.New("ledger unavailable")

func (r *fakeLedgerRepo) Append(_ context.Context, e *entity.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.reject[e.Kind] {
		return errLedgerDown
	}
	e.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *e)
	return nil
}

func (r *fakeLedgerRepo) filter(keep func(entity.LedgerEntry) bool) []*entity.LedgerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.LedgerEntry
	for _, e := range r.entries {
		if keep(e) {
			e := e
			out = append(out, &e)
		}
	}
	return out
}

func (r *fakeLedgerRepo) FindByBooking(_ context.Context, bookingID uuid.UUID) ([]*entity.LedgerEntry, error) {
	return r.filter(func(e entity.LedgerEntry) bool { return e.BookingID == bookingID }), nil
}

func (r *fakeLedgerRepo) FindByShowtime(_ context.Context, showtimeID uuid.UUID) ([]*entity.LedgerEntry, error) {
	return r.filter(func(e entity.LedgerEntry) bool { return e.ShowtimeID == showtimeID }), nil
}

func (r *fakeLedgerRepo) HasKind(_ context.Context, bookingID uuid.UUID, kind entity.LedgerKind) (bool, error) {
	found := r.filter(func(e entity.LedgerEntry) bool { return e.BookingID == bookingID && e.Kind == kind })
	return len(found) > 0, nil
}

func (r *fakeLedgerRepo) kinds(bookingID uuid.UUID) []entity.LedgerKind {
	var kinds []entity.LedgerKind
	for _, e := range r.filter(func(e entity.LedgerEntry) bool { return e.BookingID == bookingID }) {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type recordingPublisher struct {
	mu     sync.Mutex
	events map[string][]any
}

func (p *recordingPublisher) Publish(_ context.Context, routingKey string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events[routingKey] = append(p.events[routingKey], payload)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) count(routingKey string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events[routingKey])
}

type gatewayFunc func(ctx context.Context, amount int64, method entity.PaymentMethod) (*entity.PaymentResult, error)

func (f gatewayFunc) Charge(ctx context.Context, amount int64, method entity.PaymentMethod) (*entity.PaymentResult, error) {
	return f(ctx, amount, method)
}

func completingGateway() gatewayFunc {
	return func(_ context.Context, amount int64, method entity.PaymentMethod) (*entity.PaymentResult, error) {
		return &entity.PaymentResult{
			Amount:        amount,
			Method:        method,
			Status:        entity.PaymentStatusCompleted,
			TransactionID: "txn_test",
		}, nil
	}
}

const testHold = 10 * time.Minute

type harness struct {
	clock     *fakeClock
	redis     *miniredis.Miniredis
	repo      *repository.Repository
	bookings  *fakeBookingRepo
	payments  *fakePaymentRepo
	ledger    *fakeLedgerRepo
	publisher *recordingPublisher
	gateway   PaymentGateway
	showtimes ShowtimeService
	svc       BookingService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	h := &harness{
		clock:     &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)},
		redis:     mr,
		bookings:  &fakeBookingRepo{bookings: map[uuid.UUID]entity.Booking{}},
		payments:  &fakePaymentRepo{payments: map[uuid.UUID]entity.Payment{}},
		ledger:    &fakeLedgerRepo{},
		publisher: &recordingPublisher{events: map[string][]any{}},
	}
	h.gateway = completingGateway()

	log := zap.NewNop()
	h.repo = &repository.Repository{
		Showtime: &fakeShowtimeRepo{showtimes: map[uuid.UUID]entity.Showtime{}},
		Booking:  h.bookings,
		Payment:  h.payments,
		Ledger:   h.ledger,
		Seats:    repository.NewRedisSeatStore(rdb, "test", h.clock.Now, log),
	}

	h.showtimes = NewShowtimeService(h.repo, h.clock.Now, log)
	h.svc = NewBookingService(h.repo, gatewayFunc(func(ctx context.Context, amount int64, method entity.PaymentMethod) (*entity.PaymentResult, error) {
		return h.gateway.Charge(ctx, amount, method)
	}), h.publisher, BookingOptions{
		HoldDuration: testHold,
		SweepBatch:   2,
		Now:          h.clock.Now,
	}, log)

	return h
}

func (h *harness) addShowtime(t *testing.T, capacity int, price int64) *entity.Showtime {
	t.Helper()
	now := h.clock.Now()
	st := &entity.Showtime{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		MovieID:   uuid.New(),
		TheaterID: uuid.New(),
		StartsAt:  now.Add(24 * time.Hour),
		EndsAt:    now.Add(26 * time.Hour),
		Price:     price,
		Capacity:  capacity,
	}
	if err := h.repo.Showtime.Create(context.Background(), st); err != nil {
		t.Fatalf("create showtime: %v", err)
	}
	return st
}

func (h *harness) booking(t *testing.T, id string) entity.Booking {
	t.Helper()
	b, err := h.bookings.FindByID(context.Background(), uuid.MustParse(id))
	if err != nil || b == nil {
		t.Fatalf("booking %s not found: %v", id, err)
	}
	return *b
}
