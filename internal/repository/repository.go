package repository

import (
	"context"

	"github.com/genaicorelab/iam-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users      Users
	References References
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:      newUserRepository(db),
		References: newReferenceRepository(db),
	}
}

// Users owns every write to user_registration, user_master and registration_log.
type Users interface {
	Register(ctx context.Context, candidate *domain.RegistrationCandidate) (int64, error)
	DeregisterByPhone(ctx context.Context, phone string) error
	GetActiveByEmail(ctx context.Context, email string) (*domain.ActiveUser, error)
	GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
}

type References interface {
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
	GetProfessionByName(ctx context.Context, name string) (*domain.Profession, error)
	GetAllRoles(ctx context.Context) ([]domain.Role, error)
	GetAllProfessions(ctx context.Context) ([]domain.Profession, error)
}
