package repository

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"seat-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Each showtime is one hash: field = seat number, value = "status|booking_id|expires_ms".
// Booked seats carry expires_ms 0.

var holdSeatsScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local owner = ARGV[2]
local expires = ARGV[3]
local taken = {}
for i = 4, #ARGV do
	local cur = redis.call('HGET', key, ARGV[i])
	if cur then
		local status, holder, exp = string.match(cur, '^(%a+)|([^|]+)|(%d+)$')
		if not status or status == 'booked' or (holder ~= owner and tonumber(exp) > now) then
			table.insert(taken, ARGV[i])
		end
	end
end
if #taken > 0 then
	return {0, unpack(taken)}
end
for i = 4, #ARGV do
	redis.call('HSET', key, ARGV[i], 'held|' .. owner .. '|' .. expires)
end
return {1}
`)

var confirmSeatsScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local owner = ARGV[2]
for i = 3, #ARGV do
	local cur = redis.call('HGET', key, ARGV[i])
	if not cur then
		return 0
	end
	local status, holder, exp = string.match(cur, '^(%a+)|([^|]+)|(%d+)$')
	if holder ~= owner then
		return 0
	end
	if status ~= 'booked' and tonumber(exp) <= now then
		return 0
	end
end
for i = 3, #ARGV do
	redis.call('HSET', key, ARGV[i], 'booked|' .. owner .. '|0')
end
return 1
`)

var releaseSeatsScript = redis.NewScript(`
local key = KEYS[1]
local owner = ARGV[1]
local freed = 0
for i = 2, #ARGV do
	local cur = redis.call('HGET', key, ARGV[i])
	if cur then
		local _, holder = string.match(cur, '^(%a+)|([^|]+)|')
		if holder == owner then
			redis.call('HDEL', key, ARGV[i])
			freed = freed + 1
		end
	end
end
return freed
`)

// A restored entry lands on a free, malformed or elapsed seat. A restored booking also
// replaces a hold. Booked seats and other live holds stay as they are.
var restoreSeatsScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local written = 0
for i = 2, #ARGV, 2 do
	local seat, value = ARGV[i], ARGV[i + 1]
	local cur = redis.call('HGET', key, seat)
	local put = true
	if cur then
		local status, _, exp = string.match(cur, '^(%a+)|([^|]+)|(%d+)$')
		if status == 'booked' then
			put = false
		elseif status == 'held' and tonumber(exp) > now then
			put = string.sub(value, 1, 7) == 'booked|'
		end
	end
	if put then
		redis.call('HSET', key, seat, value)
		written = written + 1
	end
end
return written
`)

type redisSeatStore struct {
	rdb    redis.UniversalClient
	prefix string
	now    func() time.Time
	log    *zap.Logger
}

// NewRedisSeatStore keeps seat ownership in Redis hashes. Every mutation runs as
// a single Lua script, so a showtime's seats change atomically.
func NewRedisSeatStore(rdb redis.UniversalClient, prefix string, now func() time.Time, log *zap.Logger) SeatStore {
	return &redisSeatStore{
		rdb:    rdb,
		prefix: prefix,
		now:    nowOrDefault(now),
		log:    log.With(zap.String("repository", "seat_store_redis")),
	}
}

func (s *redisSeatStore) key(showtimeID uuid.UUID) string {
	return fmt.Sprintf("%s:seats:%s", s.prefix, showtimeID.String())
}

func seatArgs(lead []any, seats []int) []any {
	args := make([]any, 0, len(lead)+len(seats))
	args = append(args, lead...)
	for _, seat := range seats {
		args = append(args, strconv.Itoa(seat))
	}
	return args
}

func (s *redisSeatStore) TryHoldSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int, holdDuration time.Duration) (*entity.SeatHold, error) {
	if err := validateSeats(seats); err != nil {
		return nil, err
	}

	now := s.now()
	expiresAt := holdExpiry(now, holdDuration)
	args := seatArgs([]any{now.UnixMilli(), bookingID.String(), expiresAt.UnixMilli()}, seats)

	res, err := holdSeatsScript.Run(ctx, s.rdb, []string{s.key(showtimeID)}, args...).Slice()
	if err != nil {
		s.log.Error("Failed to hold seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.Ints("seats", seats),
		)
		return nil, fmt.Errorf("hold seats for showtime %s: %w", showtimeID.String(), err)
	}

	if len(res) == 0 {
		return nil, fmt.Errorf("hold seats for showtime %s: empty script reply", showtimeID.String())
	}
	if ok, _ := res[0].(int64); ok != 1 {
		taken := make([]int, 0, len(res)-1)
		for _, v := range res[1:] {
			str, _ := v.(string)
			if n, err := strconv.Atoi(str); err == nil {
				taken = append(taken, n)
			}
		}
		sort.Ints(taken)
		return nil, &SeatsUnavailableError{Seats: taken}
	}

	return &entity.SeatHold{
		ShowtimeID: showtimeID,
		BookingID:  bookingID,
		Seats:      append([]int(nil), seats...),
		ExpiresAt:  expiresAt,
	}, nil
}

func (s *redisSeatStore) ConfirmSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int) error {
	if err := validateSeats(seats); err != nil {
		return err
	}

	args := seatArgs([]any{s.now().UnixMilli(), bookingID.String()}, seats)

	ok, err := confirmSeatsScript.Run(ctx, s.rdb, []string{s.key(showtimeID)}, args...).Int()
	if err != nil {
		s.log.Error("Failed to confirm seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("confirm seats for booking %s: %w", bookingID.String(), err)
	}
	if ok != 1 {
		return fmt.Errorf("confirm seats for booking %s: %w", bookingID.String(), ErrHoldExpired)
	}

	return nil
}

func (s *redisSeatStore) ReleaseSeats(ctx context.Context, showtimeID, bookingID uuid.UUID, seats []int) (int, error) {
	if len(seats) == 0 {
		return 0, nil
	}

	args := seatArgs([]any{bookingID.String()}, seats)

	freed, err := releaseSeatsScript.Run(ctx, s.rdb, []string{s.key(showtimeID)}, args...).Int()
	if err != nil {
		s.log.Error("Failed to release seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
			zap.String("booking_id", bookingID.String()),
		)
		return 0, fmt.Errorf("release seats for booking %s: %w", bookingID.String(), err)
	}

	return freed, nil
}

func (s *redisSeatStore) Snapshot(ctx context.Context, showtimeID uuid.UUID) ([]entity.SeatState, error) {
	fields, err := s.rdb.HGetAll(ctx, s.key(showtimeID)).Result()
	if err != nil {
		s.log.Error("Failed to snapshot seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("snapshot seats for showtime %s: %w", showtimeID.String(), err)
	}

	now := s.now()
	states := make([]entity.SeatState, 0, len(fields))
	for field, value := range fields {
		st, err := decodeSeatState(field, value)
		if err != nil {
			s.log.Warn("Skipping malformed seat entry",
				zap.Error(err),
				zap.String("showtime_id", showtimeID.String()),
				zap.String("field", field),
			)
			continue
		}
		if st.Active(now) {
			states = append(states, st)
		}
	}

	sort.Slice(states, func(i, j int) bool { return states[i].SeatNumber < states[j].SeatNumber })
	return states, nil
}

func (s *redisSeatStore) Restore(ctx context.Context, showtimeID uuid.UUID, states []entity.SeatState) error {
	if len(states) == 0 {
		return nil
	}

	args := make([]any, 0, 1+2*len(states))
	args = append(args, s.now().UnixMilli())
	for _, st := range states {
		args = append(args, strconv.Itoa(st.SeatNumber), encodeSeatState(st))
	}

	written, err := restoreSeatsScript.Run(ctx, s.rdb, []string{s.key(showtimeID)}, args...).Int()
	if err != nil {
		s.log.Error("Failed to restore seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return fmt.Errorf("restore seats for showtime %s: %w", showtimeID.String(), err)
	}

	if written < len(states) {
		s.log.Info("Restore kept live seat entries",
			zap.String("showtime_id", showtimeID.String()),
			zap.Int("restored", written),
			zap.Int("kept", len(states)-written),
		)
	}
	return nil
}

func encodeSeatState(st entity.SeatState) string {
	var expires int64
	if st.Status == entity.SeatStatusHeld {
		expires = st.ExpiresAt.UnixMilli()
	}
	return fmt.Sprintf("%s|%s|%d", st.Status, st.BookingID.String(), expires)
}

func decodeSeatState(field, value string) (entity.SeatState, error) {
	seat, err := strconv.Atoi(field)
	if err != nil {
		return entity.SeatState{}, fmt.Errorf("parse seat number %q: %w", field, err)
	}

	parts := strings.Split(value, "|")
	if len(parts) != 3 {
		return entity.SeatState{}, fmt.Errorf("parse seat value %q: want 3 parts", value)
	}

	bookingID, err := uuid.Parse(parts[1])
	if err != nil {
		return entity.SeatState{}, fmt.Errorf("parse seat owner %q: %w", parts[1], err)
	}

	expires, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return entity.SeatState{}, fmt.Errorf("parse seat expiry %q: %w", parts[2], err)
	}

	st := entity.SeatState{
		SeatNumber: seat,
		BookingID:  bookingID,
		Status:     entity.SeatStatus(parts[0]),
	}
	switch st.Status {
	case entity.SeatStatusHeld:
		st.ExpiresAt = time.UnixMilli(expires)
	case entity.SeatStatusBooked:
	default:
		return entity.SeatState{}, fmt.Errorf("parse seat status %q: unknown", parts[0])
	}

	return st, nil
}
