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

type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type profileUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	userRepo    repository.UserRepository
	personRepo  repository.PersonRepository
	patientRepo repository.PatientRepository
}

func NewProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	personRepo repository.PersonRepository,
	patientRepo repository.PatientRepository,
) ProfileUsecase {
	return &profileUsecase{
		db:          db,
		log:         log,
		userRepo:    userRepo,
		personRepo:  personRepo,
		patientRepo: patientRepo,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*dto.ProfileResponse, error) {
	user, err := u.userRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	person, err := u.personRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find person: %+v", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrUserNotFound
	}

	// Patient details are optional, staff accounts have no patient row
	patient, err := u.patientRepo.FindByPersonID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}

	return converter.ProfileToResponse(user, person, patient), nil
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	person, err := u.personRepo.FindByID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find person: %+v", err)
		return nil, err
	}
	if person == nil {
		return nil, ErrUserNotFound
	}

	if req.FirstName != "" {
		person.FirstName = req.FirstName
	}
	if req.LastName != "" {
		person.LastName = req.LastName
	}
	if req.Phone != "" {
		person.Phone = req.Phone
	}

	if err := u.personRepo.Update(ctx, u.db, person); err != nil {
		u.log.Warnf("Failed to update person: %+v", err)
		return nil, err
	}

	patient, err := u.patientRepo.FindByPersonID(ctx, u.db, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient != nil && req.Address != "" {
		patient.Address = req.Address
		if err := u.patientRepo.Update(ctx, u.db, patient); err != nil {
			u.log.Warnf("Failed to update patient: %+v", err)
			return nil, err
		}
	}

	return u.GetProfile(ctx, userID)
}
