package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/converter"
	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/delivery/http/middleware"
	"github.com/clinisalud/portal-backend/internal/domain/entity"
	"github.com/clinisalud/portal-backend/internal/domain/repository"
)

var (
	ErrNotAuthenticated    = errors.New("user not found in context")
	ErrNotPatient          = errors.New("only patients can hold appointments")
	ErrSpecialtyNotFound   = errors.New("specialty not found")
	ErrSlotNotFound        = errors.New("schedule entry not found")
	ErrSlotMismatch        = errors.New("schedule entry does not belong to the specialist")
	ErrDateNotAvailable    = errors.New("date does not fall on one of the specialist's working days")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrAppointmentNotOwned = errors.New("appointment does not belong to you")
	ErrCannotCancel        = errors.New("appointment can no longer be cancelled")
)

type BookingUsecase interface {
	// Submit validates a complete selection and inserts exactly one
	// pending appointment request. Resubmitting an identical selection
	// creates a second request; duplicates are resolved by clinic staff
	// during review.
	Submit(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	// ListMine returns the authenticated patient's requests.
	ListMine(ctx context.Context) (*dto.AppointmentListResponse, error)
	// Cancel transitions the patient's own appointment to cancelled
	// while it is still pending or approved.
	Cancel(ctx context.Context, appointmentID uuid.UUID) error
	// History returns the patient's non-pending requests together with
	// who performed the most recent status change on each.
	History(ctx context.Context) (*dto.HistoryListResponse, error)
}

type bookingUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	statusChangeRepo repository.StatusChangeRepository
	scheduleRepo     repository.WorkScheduleRepository
	specialtyRepo    repository.SpecialtyRepository
	specialistRepo   repository.SpecialistRepository
	personRepo       repository.PersonRepository
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	statusChangeRepo repository.StatusChangeRepository,
	scheduleRepo repository.WorkScheduleRepository,
	specialtyRepo repository.SpecialtyRepository,
	specialistRepo repository.SpecialistRepository,
	personRepo repository.PersonRepository,
) BookingUsecase {
	return &bookingUsecase{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		statusChangeRepo: statusChangeRepo,
		scheduleRepo:     scheduleRepo,
		specialtyRepo:    specialtyRepo,
		specialistRepo:   specialistRepo,
		personRepo:       personRepo,
	}
}

// Submit checks every precondition before the first write so a rejected
// request leaves no trace.
func (u *bookingUsecase) Submit(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}
	if roleID, ok := middleware.GetRoleIDFromContext(ctx); ok && roleID != entity.RoleIDPatient {
		return nil, ErrNotPatient
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	specialty, err := u.specialtyRepo.FindByID(ctx, u.db, req.SpecialtyID)
	if err != nil {
		u.log.Warnf("Failed to find specialty %d: %+v", req.SpecialtyID, err)
		return nil, err
	}
	if specialty == nil {
		return nil, ErrSpecialtyNotFound
	}

	specialist, err := u.specialistRepo.FindByID(ctx, u.db, req.SpecialistID)
	if err != nil {
		u.log.Warnf("Failed to find specialist %s: %+v", req.SpecialistID, err)
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}

	entry, err := u.scheduleRepo.FindByID(ctx, u.db, req.ScheduleEntryID)
	if err != nil {
		u.log.Warnf("Failed to find schedule entry %d: %+v", req.ScheduleEntryID, err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrSlotNotFound
	}
	if entry.SpecialistID != req.SpecialistID {
		return nil, ErrSlotMismatch
	}

	// The invariant of the whole funnel: a request may only ever be
	// created for a date on one of the specialist's working weekdays.
	if !entry.MatchesDate(date) {
		return nil, ErrDateNotAvailable
	}

	appointment := &entity.AppointmentRequest{
		PatientID:    patientID,
		SpecialistID: req.SpecialistID,
		SpecialtyID:  req.SpecialtyID,
		Date:         date,
		Time:         entry.StartTime,
		Weekday:      entry.Weekday,
		Status:       entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(ctx, u.db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment for patient %s: %+v", patientID, err)
		return nil, err
	}

	u.log.Infof("Appointment submitted: id=%s, patient=%s, specialist=%s, date=%s %s",
		appointment.ID, patientID, req.SpecialistID, req.Date, entry.StartTime)

	appointment.Specialty = *specialty
	appointment.Specialist = *specialist
	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) ListMine(ctx context.Context) (*dto.AppointmentListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	appointments, err := u.appointmentRepo.FindByPatient(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *bookingUsecase) Cancel(ctx context.Context, appointmentID uuid.UUID) error {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.PatientID != patientID {
		return ErrAppointmentNotOwned
	}
	if !appointment.CanCancel() {
		return ErrCannotCancel
	}

	// Guarded update: the status filter makes concurrent cancels of the
	// same appointment resolve to a single transition.
	affected, err := u.appointmentRepo.UpdateStatusFrom(ctx, u.db, appointmentID,
		entity.AppointmentStatusCancelled,
		[]entity.AppointmentStatus{entity.AppointmentStatusPending, entity.AppointmentStatusApproved})
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	change := &entity.StatusChange{
		AppointmentID: appointmentID,
		ChangedBy:     patientID,
		NewStatus:     entity.AppointmentStatusCancelled,
	}
	if err := u.statusChangeRepo.Create(ctx, u.db, change); err != nil {
		// The transition already happened; a missing log entry only
		// degrades the history display.
		u.log.Errorf("Failed to record status change for appointment %s (non-fatal): %+v", appointmentID, err)
	}

	u.log.Infof("Appointment cancelled: id=%s, patient=%s", appointmentID, patientID)
	return nil
}

func (u *bookingUsecase) History(ctx context.Context) (*dto.HistoryListResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	appointments, err := u.appointmentRepo.FindByPatient(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	past := make([]entity.AppointmentRequest, 0, len(appointments))
	ids := make([]uuid.UUID, 0, len(appointments))
	for i := range appointments {
		if appointments[i].IsPending() {
			continue
		}
		past = append(past, appointments[i])
		ids = append(ids, appointments[i].ID)
	}

	changes, err := u.statusChangeRepo.FindByAppointments(ctx, u.db, ids)
	if err != nil {
		u.log.Warnf("Failed to load status changes for patient %s: %+v", patientID, err)
		return nil, err
	}

	// Changes arrive oldest first; keep the most recent per appointment.
	latest := make(map[uuid.UUID]entity.StatusChange, len(ids))
	for _, change := range changes {
		latest[change.AppointmentID] = change
	}

	changerIDs := make([]uuid.UUID, 0, len(latest))
	seen := make(map[uuid.UUID]bool, len(latest))
	for _, change := range latest {
		if !seen[change.ChangedBy] {
			seen[change.ChangedBy] = true
			changerIDs = append(changerIDs, change.ChangedBy)
		}
	}

	persons, err := u.personRepo.FindByIDs(ctx, u.db, changerIDs)
	if err != nil {
		u.log.Warnf("Failed to resolve changer names for patient %s: %+v", patientID, err)
		return nil, err
	}
	names := make(map[uuid.UUID]string, len(persons))
	for i := range persons {
		names[persons[i].ID] = persons[i].FullName()
	}

	entries := make([]dto.HistoryEntryResponse, 0, len(past))
	for i := range past {
		entry := dto.HistoryEntryResponse{
			AppointmentResponse: *converter.AppointmentToResponse(&past[i]),
		}
		if change, ok := latest[past[i].ID]; ok {
			entry.ConfirmedBy = names[change.ChangedBy]
		}
		entries = append(entries, entry)
	}

	return &dto.HistoryListResponse{
		Entries: entries,
		Total:   len(entries),
	}, nil
}
