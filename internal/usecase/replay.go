package usecase

import (
	"sort"
	"time"

	"seat-booking/internal/data/entity"
)

// ReplaySeatState folds ledger entries, in append order, into the seat ownership
// they imply at now. Holds that have elapsed by now are dropped.
func ReplaySeatState(entries []*entity.LedgerEntry, now time.Time) []entity.SeatState {
	ordered := make([]*entity.LedgerEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	seats := make(map[int]entity.SeatState)
	for _, e := range ordered {
		switch e.Kind {
		case entity.LedgerKindHold:
			if e.ExpiresAt == nil {
				continue
			}
			for _, n := range e.Seats {
				seats[n] = entity.SeatState{
					SeatNumber: n,
					BookingID:  e.BookingID,
					Status:     entity.SeatStatusHeld,
					ExpiresAt:  *e.ExpiresAt,
				}
			}
		case entity.LedgerKindConfirm:
			for _, n := range e.Seats {
				seats[n] = entity.SeatState{
					SeatNumber: n,
					BookingID:  e.BookingID,
					Status:     entity.SeatStatusBooked,
				}
			}
		case entity.LedgerKindRelease, entity.LedgerKindCancel:
			for _, n := range e.Seats {
				if cur, ok := seats[n]; ok && cur.BookingID == e.BookingID {
					delete(seats, n)
				}
			}
		}
	}

	states := make([]entity.SeatState, 0, len(seats))
	for _, st := range seats {
		if st.Active(now) {
			states = append(states, st)
		}
	}
	sort.Slice(states, func(i, j int) bool { return states[i].SeatNumber < states[j].SeatNumber })
	return states
}

// MergeBookingSeats overlays the seat owners recorded on booking rows onto a replayed
// state. Confirmed bookings always own their seats, so a confirmation missing from the
// ledger cannot free a sold seat. Open bookings with a live hold claim seats nobody
// else holds or owns at now.
func MergeBookingSeats(states []entity.SeatState, bookings []*entity.Booking, now time.Time) []entity.SeatState {
	seats := make(map[int]entity.SeatState, len(states))
	for _, st := range states {
		seats[st.SeatNumber] = st
	}

	for _, b := range bookings {
		if b.State != entity.BookingStateConfirmed {
			continue
		}
		for _, n := range b.Seats {
			seats[n] = entity.SeatState{SeatNumber: n, BookingID: b.ID, Status: entity.SeatStatusBooked}
		}
	}

	for _, b := range bookings {
		if !b.Open() || b.HoldExpired(now) {
			continue
		}
		for _, n := range b.Seats {
			cur, ok := seats[n]
			if ok && cur.Active(now) && (cur.Status == entity.SeatStatusBooked || cur.BookingID != b.ID) {
				continue
			}
			seats[n] = entity.SeatState{
				SeatNumber: n,
				BookingID:  b.ID,
				Status:     entity.SeatStatusHeld,
				ExpiresAt:  b.HoldExpiresAt,
			}
		}
	}

	merged := make([]entity.SeatState, 0, len(seats))
	for _, st := range seats {
		if st.Active(now) {
			merged = append(merged, st)
		}
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].SeatNumber < merged[j].SeatNumber })
	return merged
}
