package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/clinisalud/portal-backend/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error)
}
