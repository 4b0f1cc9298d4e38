package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/converter"
	"github.com/clinisalud/portal-backend/internal/delivery/dto"
	"github.com/clinisalud/portal-backend/internal/domain/repository"
)

type DirectoryUsecase interface {
	ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error)
	ListSpecialists(ctx context.Context, specialtyID *int) (*dto.SpecialistListResponse, error)
	GetSpecialist(ctx context.Context, id uuid.UUID) (*dto.SpecialistResponse, error)
}

type directoryUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	specialtyRepo  repository.SpecialtyRepository
	specialistRepo repository.SpecialistRepository
}

func NewDirectoryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	specialtyRepo repository.SpecialtyRepository,
	specialistRepo repository.SpecialistRepository,
) DirectoryUsecase {
	return &directoryUsecase{
		db:             db,
		log:            log,
		specialtyRepo:  specialtyRepo,
		specialistRepo: specialistRepo,
	}
}

func (u *directoryUsecase) ListSpecialties(ctx context.Context) (*dto.SpecialtyListResponse, error) {
	specialties, err := u.specialtyRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list specialties: %+v", err)
		return nil, err
	}

	return &dto.SpecialtyListResponse{
		Specialties: converter.SpecialtiesToResponses(specialties),
		Total:       len(specialties),
	}, nil
}

func (u *directoryUsecase) ListSpecialists(ctx context.Context, specialtyID *int) (*dto.SpecialistListResponse, error) {
	var result []dto.SpecialistResponse

	if specialtyID != nil {
		specialty, err := u.specialtyRepo.FindByID(ctx, u.db, *specialtyID)
		if err != nil {
			u.log.Warnf("Failed to find specialty: %+v", err)
			return nil, err
		}
		if specialty == nil {
			return nil, ErrSpecialtyNotFound
		}

		rows, err := u.specialistRepo.FindBySpecialty(ctx, u.db, *specialtyID)
		if err != nil {
			u.log.Warnf("Failed to list specialists by specialty: %+v", err)
			return nil, err
		}
		result = converter.SpecialistsToResponses(rows)
	} else {
		rows, err := u.specialistRepo.FindAllActive(ctx, u.db)
		if err != nil {
			u.log.Warnf("Failed to list specialists: %+v", err)
			return nil, err
		}
		result = converter.SpecialistsToResponses(rows)
	}

	return &dto.SpecialistListResponse{
		SpecialtyID: specialtyID,
		Specialists: result,
		Total:       len(result),
	}, nil
}

func (u *directoryUsecase) GetSpecialist(ctx context.Context, id uuid.UUID) (*dto.SpecialistResponse, error) {
	specialist, err := u.specialistRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find specialist: %+v", err)
		return nil, err
	}
	if specialist == nil {
		return nil, ErrSpecialistNotFound
	}

	response := converter.SpecialistToResponse(specialist)
	return &response, nil
}
