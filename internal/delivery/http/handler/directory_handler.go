package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/clinisalud/portal-backend/internal/usecase"
	"github.com/clinisalud/portal-backend/pkg/response"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUsecase: directoryUsecase}
}

// ListSpecialties handles listing all specialties
// @Summary List specialties
// @Description List all medical specialties offered by the clinic
// @Tags Directory
// @Produce json
// @Success 200 {object} response.Response
// @Router /specialties [get]
func (h *DirectoryHandler) ListSpecialties(w http.ResponseWriter, r *http.Request) {
	specialties, err := h.directoryUsecase.ListSpecialties(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specialties")
		return
	}

	response.Success(w, http.StatusOK, "Specialties retrieved successfully", specialties)
}

// ListSpecialists handles listing active specialists
// @Summary List specialists
// @Description List active specialists, optionally filtered by specialty
// @Tags Directory
// @Produce json
// @Param specialty_id query int false "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialists [get]
func (h *DirectoryHandler) ListSpecialists(w http.ResponseWriter, r *http.Request) {
	var specialtyID *int
	if raw := r.URL.Query().Get("specialty_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 1 {
			response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
			return
		}
		specialtyID = &id
	}

	specialists, err := h.directoryUsecase.ListSpecialists(r.Context(), specialtyID)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		default:
			response.InternalServerError(w, "Failed to list specialists")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialists retrieved successfully", specialists)
}

// ListSpecialistsBySpecialty handles listing a specialty's specialists
// @Summary List specialists of a specialty
// @Description List active specialists offering the given specialty
// @Tags Directory
// @Produce json
// @Param id path int true "Specialty ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialties/{id}/specialists [get]
func (h *DirectoryHandler) ListSpecialistsBySpecialty(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil || id < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid specialty ID", nil)
		return
	}

	specialists, err := h.directoryUsecase.ListSpecialists(r.Context(), &id)
	if err != nil {
		switch err {
		case usecase.ErrSpecialtyNotFound:
			response.NotFound(w, "Specialty not found")
		default:
			response.InternalServerError(w, "Failed to list specialists")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialists retrieved successfully", specialists)
}

// GetSpecialist handles getting one specialist's public profile
// @Summary Get specialist
// @Description Get a specialist's profile with specialties and weekly schedule
// @Tags Directory
// @Produce json
// @Param id path string true "Specialist ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specialists/{id} [get]
func (h *DirectoryHandler) GetSpecialist(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid specialist ID", nil)
		return
	}

	specialist, err := h.directoryUsecase.GetSpecialist(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrSpecialistNotFound:
			response.NotFound(w, "Specialist not found")
		default:
			response.InternalServerError(w, "Failed to get specialist")
		}
		return
	}

	response.Success(w, http.StatusOK, "Specialist retrieved successfully", specialist)
}
