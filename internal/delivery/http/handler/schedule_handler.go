package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clinisalud/portal-backend/internal/usecase"
	"github.com/clinisalud/portal-backend/pkg/response"
)

type ScheduleHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	slotUsecase         usecase.SlotUsecase
}

func NewScheduleHandler(availabilityUsecase usecase.AvailabilityUsecase, slotUsecase usecase.SlotUsecase) *ScheduleHandler {
	return &ScheduleHandler{
		availabilityUsecase: availabilityUsecase,
		slotUsecase:         slotUsecase,
	}
}

// GetAvailability handles the month calendar for a specialist
// @Summary Get monthly availability
// @Description Get a specialist's calendar grid with eligible days for one month
// @Tags Schedule
// @Produce json
// @Param id path string true "Specialist ID"
// @Param year query int false "Year"
// @Param month query int false "Month (1-12)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialists/{id}/availability [get]
func (h *ScheduleHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialist ID", nil)
		return
	}

	year, month, err := parseYearMonth(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid year or month", nil)
		return
	}

	availability, err := h.availabilityUsecase.GetMonthGrid(r.Context(), id, year, month)
	if err != nil {
		switch err {
		case usecase.ErrSpecialistNotFound:
			response.NotFound(w, "Specialist not found")
		case usecase.ErrInvalidMonth:
			response.Error(w, http.StatusBadRequest, "Invalid year or month", nil)
		default:
			response.InternalServerError(w, "Failed to get availability")
		}
		return
	}

	response.Success(w, http.StatusOK, "Availability retrieved successfully", availability)
}

// ListSlots handles the bookable slot options for a specialist
// @Summary List slots
// @Description List a specialist's schedule windows, optionally narrowed to a date and expanded into starting times
// @Tags Schedule
// @Produce json
// @Param id path string true "Specialist ID"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param expand query bool false "Expand windows into starting times"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialists/{id}/slots [get]
func (h *ScheduleHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialist ID", nil)
		return
	}

	date := r.URL.Query().Get("date")
	expand, _ := strconv.ParseBool(r.URL.Query().Get("expand"))

	slots, err := h.slotUsecase.ListSlots(r.Context(), id, date, expand)
	if err != nil {
		switch err {
		case usecase.ErrSpecialistNotFound:
			response.NotFound(w, "Specialist not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		default:
			response.InternalServerError(w, "Failed to list slots")
		}
		return
	}

	response.Success(w, http.StatusOK, "Slots retrieved successfully", slots)
}

func parseYearMonth(r *http.Request) (int, int, error) {
	var year, month int
	var err error

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}
	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
	}

	return year, month, nil
}
