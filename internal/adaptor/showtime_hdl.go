package adaptor

import (
	"encoding/json"
	"net/http"

	"seat-booking/internal/dto/request"
	"seat-booking/internal/usecase"
	"seat-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ShowtimeHandler struct {
	service usecase.ShowtimeService
	log     *zap.Logger
}

func NewShowtimeHandler(service usecase.ShowtimeService, log *zap.Logger) *ShowtimeHandler {
	return &ShowtimeHandler{
		service: service,
		log:     log.With(zap.String("handler", "showtime")),
	}
}

// CreateShowtime handles POST /api/showtimes
func (h *ShowtimeHandler) CreateShowtime(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowtimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	showtime, err := h.service.CreateShowtime(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "success", showtime)
}

// GetShowtime handles GET /api/showtimes/{id}
func (h *ShowtimeHandler) GetShowtime(w http.ResponseWriter, r *http.Request) {
	showtime, err := h.service.GetShowtime(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime")
		return
	}

	utils.ResponseSuccess(w, "success", showtime)
}

// GetSeatMap handles GET /api/showtimes/{id}/seats
func (h *ShowtimeHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap, err := h.service.GetSeatMap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}
