package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/domain/repository"
	"github.com/clinisalud/portal-backend/pkg/calendar"
)

var (
	ErrSpecialistNotFound = errors.New("specialist not found")
	ErrInvalidMonth       = errors.New("month out of range, expected 1 to 12")
)

type AvailabilityUsecase interface {
	// GetMonthGrid computes the calendar grid for one month of a
	// specialist's availability. Year and month zero default to the
	// current month.
	GetMonthGrid(ctx context.Context, specialistID uuid.UUID, year, month int) (*dto.AvailabilityResponse, error)
}

type availabilityUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialistRepo repository.SpecialistRepository
	scheduleRepo   repository.WorkScheduleRepository
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialistRepo repository.SpecialistRepository,
	scheduleRepo repository.WorkScheduleRepository,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:             db,
		log:            log,
		specialistRepo: specialistRepo,
		scheduleRepo:   scheduleRepo,
	}
}

func (u *availabilityUsecase) GetMonthGrid(ctx context.Context, specialistID uuid.UUID, year, month int) (*dto.AvailabilityResponse, error) {
	if year == 0 && month == 0 {
		now := time.Now()
		year, month = now.Year(), int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, ErrInvalidMonth
	}

	specialist, err := u.specialistRepo.FindByID(ctx, u.db, specialistID)
	if err != nil {
		u.log.Warnf("Failed to find specialist %s: %+v", specialistID, err)
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}

	entries, err := u.scheduleRepo.FindBySpecialist(ctx, u.db, specialistID)
	if err != nil {
		u.log.Warnf("Failed to load schedule for specialist %s: %+v", specialistID, err)
		return nil, err
	}

	// A specialist without schedule entries yields a grid with zero
	// eligible days; that is a valid empty state.
	working := calendar.NewWeekdaySet()
	for i := range entries {
		d, err := entries[i].GoWeekday()
		if err != nil {
			u.log.Warnf("Skipping schedule entry %d with invalid weekday %d: %+v", entries[i].ID, entries[i].Weekday, err)
			continue
		}
		working[d] = struct{}{}
	}

	cursor := calendar.MonthCursor{Year: year, Month: time.Month(month)}
	grid := calendar.BuildGrid(cursor, working)

	workdays := make([]int, 0, len(working))
	for _, d := range working.Weekdays() {
		workdays = append(workdays, calendar.ISOFromWeekday(d))
	}

	return &dto.AvailabilityResponse{
		SpecialistID: specialistID,
		Year:         year,
		Month:        month,
		WorkWeekdays: workdays,
		Grid:         grid,
	}, nil
}
