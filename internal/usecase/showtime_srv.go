package usecase

import (
	"context"
	"fmt"
	"time"

	"seat-booking/internal/data/entity"
	"seat-booking/internal/data/repository"
	"seat-booking/internal/dto/request"
	"seat-booking/internal/dto/response"
	"seat-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowtimeService interface {
	CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error)
	GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error)
	ListUpcoming(ctx context.Context, limit int) ([]*response.ShowtimeResponse, error)
	GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error)
}

type showtimeService struct {
	repo *repository.Repository
	now  func() time.Time
	log  *zap.Logger
}

func NewShowtimeService(repo *repository.Repository, now func() time.Time, log *zap.Logger) ShowtimeService {
	if now == nil {
		now = time.Now
	}
	return &showtimeService{
		repo: repo,
		now:  now,
		log:  log.With(zap.String("service", "showtime")),
	}
}

func (s *showtimeService) CreateShowtime(ctx context.Context, req *request.CreateShowtimeRequest) (*response.ShowtimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := s.now()
	showtime := &entity.Showtime{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		MovieID:   uuid.MustParse(req.MovieID),
		TheaterID: uuid.MustParse(req.TheaterID),
		StartsAt:  req.StartsAt,
		EndsAt:    req.EndsAt,
		Price:     req.Price,
		Capacity:  req.Capacity,
	}

	if err := s.repo.Showtime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.Int("capacity", showtime.Capacity),
		zap.Int64("price", showtime.Price),
	)

	return response.ShowtimeToResponse(showtime), nil
}

func (s *showtimeService) GetShowtime(ctx context.Context, showtimeID string) (*response.ShowtimeResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}
	return response.ShowtimeToResponse(showtime), nil
}

func (s *showtimeService) ListUpcoming(ctx context.Context, limit int) ([]*response.ShowtimeResponse, error) {
	showtimes, err := s.repo.Showtime.ListUpcoming(ctx, s.now(), limit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming showtimes: %w", err)
	}

	resp := make([]*response.ShowtimeResponse, len(showtimes))
	for i, st := range showtimes {
		resp[i] = response.ShowtimeToResponse(st)
	}
	return resp, nil
}

func (s *showtimeService) GetSeatMap(ctx context.Context, showtimeID string) (*response.SeatMapResponse, error) {
	showtime, err := s.findShowtime(ctx, showtimeID)
	if err != nil {
		return nil, err
	}

	states, err := s.repo.Seats.Snapshot(ctx, showtime.ID)
	if err != nil {
		return nil, fmt.Errorf("get seat map: %w", err)
	}

	resp := &response.SeatMapResponse{
		ShowtimeID: showtime.ID.String(),
		Capacity:   showtime.Capacity,
		Available:  []int{},
		Held:       []int{},
		Booked:     []int{},
	}

	now := s.now()
	taken := make(map[int]bool, len(states))
	for _, st := range states {
		if !st.Active(now) {
			continue
		}
		taken[st.SeatNumber] = true
		if st.Status == entity.SeatStatusBooked {
			resp.Booked = append(resp.Booked, st.SeatNumber)
		} else {
			resp.Held = append(resp.Held, st.SeatNumber)
		}
	}
	for n := 1; n <= showtime.Capacity; n++ {
		if !taken[n] {
			resp.Available = append(resp.Available, n)
		}
	}

	return resp, nil
}

func (s *showtimeService) findShowtime(ctx context.Context, showtimeID string) (*entity.Showtime, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid showtime ID %s", ErrValidation, showtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find showtime %s: %w", showtimeID, err)
	}
	if showtime == nil {
		return nil, fmt.Errorf("%w: %s", ErrShowtimeNotFound, showtimeID)
	}
	return showtime, nil
}
