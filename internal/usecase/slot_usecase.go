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
	"github.com/clinisalud/portal-backend/internal/domain/entity"
	"github.com/clinisalud/portal-backend/internal/domain/repository"
	"github.com/clinisalud/portal-backend/pkg/calendar"
)

var ErrInvalidDate = errors.New("invalid date format, use YYYY-MM-DD")

const dateLayout = "2006-01-02"

type SlotUsecase interface {
	// ListSlots returns the specialist's bookable schedule windows.
	// With a date the list narrows to the entries whose weekday matches
	// that date; with expand each window also carries its individual
	// starting times, step apart.
	ListSlots(ctx context.Context, specialistID uuid.UUID, date string, expand bool) (*dto.SlotListResponse, error)
}

type slotUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialistRepo repository.SpecialistRepository
	scheduleRepo   repository.WorkScheduleRepository
	stepMinutes    int
}

func NewSlotUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialistRepo repository.SpecialistRepository,
	scheduleRepo repository.WorkScheduleRepository,
	stepMinutes int,
) SlotUsecase {
	if stepMinutes <= 0 {
		stepMinutes = calendar.DefaultStepMinutes
	}
	return &slotUsecase{
		db:             db,
		log:            log,
		specialistRepo: specialistRepo,
		scheduleRepo:   scheduleRepo,
		stepMinutes:    stepMinutes,
	}
}

func (u *slotUsecase) ListSlots(ctx context.Context, specialistID uuid.UUID, date string, expand bool) (*dto.SlotListResponse, error) {
	var day time.Time
	if date != "" {
		parsed, err := time.Parse(dateLayout, date)
		if err != nil {
			return nil, ErrInvalidDate
		}
		day = parsed
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

	if date != "" {
		matched := make([]entity.WorkScheduleEntry, 0, len(entries))
		for i := range entries {
			if entries[i].MatchesDate(day) {
				matched = append(matched, entries[i])
			}
		}
		entries = matched
	}

	slots := converter.ScheduleEntriesToResponses(entries)
	if expand {
		for i := range slots {
			times, err := calendar.ExpandInterval(slots[i].StartTime, slots[i].EndTime, u.stepMinutes)
			if err != nil {
				u.log.Warnf("Failed to expand interval %s-%s for entry %d: %+v", slots[i].StartTime, slots[i].EndTime, slots[i].ID, err)
				continue
			}
			slots[i].Times = times
		}
	}

	return &dto.SlotListResponse{
		SpecialistID: specialistID,
		Date:         date,
		Slots:        slots,
		Total:        len(slots),
	}, nil
}
