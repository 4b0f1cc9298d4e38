package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/usecase"
	"github.com/clinisalud/portal-backend/pkg/response"
	"github.com/clinisalud/portal-backend/pkg/validator"
)

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// CreateAppointment handles submitting an appointment request
// @Summary Submit appointment request
// @Description Submit a pending appointment request for a specialty, specialist, date and slot
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *BookingHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.bookingUsecase.Submit(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrNotAuthenticated:
			response.Unauthorized(w, "Authentication required")
		case usecase.ErrNotPatient:
			response.Forbidden(w, "Only patients can request appointments")
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		case usecase.ErrSpecialistNotFound:
			response.NotFound(w, "Specialist not found")
		case usecase.ErrSlotNotFound:
			response.NotFound(w, "Schedule entry not found")
		case usecase.ErrInvalidDate:
			response.Error(w, http.StatusBadRequest, "Invalid date", nil)
		case usecase.ErrSlotMismatch:
			response.Error(w, http.StatusBadRequest, "Schedule entry does not belong to the specialist", nil)
		case usecase.ErrDateNotAvailable:
			response.Error(w, http.StatusBadRequest, "Specialist does not attend on that date", nil)
		default:
			response.InternalServerError(w, "Failed to submit appointment request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment request submitted successfully", appointment)
}

// GetMyAppointments handles listing the patient's own requests
// @Summary List my appointments
// @Description List the authenticated patient's appointment requests
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments [get]
func (h *BookingHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.bookingUsecase.ListMine(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNotAuthenticated:
			response.Unauthorized(w, "Authentication required")
		default:
			response.InternalServerError(w, "Failed to list appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// CancelAppointment handles cancelling a pending or approved request
// @Summary Cancel appointment
// @Description Cancel the patient's own appointment request while it is pending or approved
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /appointments/{id}/cancel [post]
func (h *BookingHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.bookingUsecase.Cancel(r.Context(), id); err != nil {
		switch err {
		case usecase.ErrNotAuthenticated:
			response.Unauthorized(w, "Authentication required")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment belongs to another patient")
		case usecase.ErrCannotCancel:
			response.Error(w, http.StatusConflict, "Appointment can no longer be cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", nil)
}

// GetAppointmentHistory handles listing past requests with reviewer info
// @Summary Get appointment history
// @Description List the patient's non-pending appointment requests with who resolved each
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /appointments/history [get]
func (h *BookingHandler) GetAppointmentHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.bookingUsecase.History(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrNotAuthenticated:
			response.Unauthorized(w, "Authentication required")
		default:
			response.InternalServerError(w, "Failed to get appointment history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment history retrieved successfully", history)
}
