package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/genaicorelab/iam-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type referenceRepository struct {
	db *sqlx.DB
}

func newReferenceRepository(db *sqlx.DB) *referenceRepository {
	return &referenceRepository{
		db: db,
	}
}

func (r *referenceRepository) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	return getRoleByName(ctx, r.db, name)
}

func (r *referenceRepository) GetProfessionByName(ctx context.Context, name string) (*domain.Profession, error) {
	return getProfessionByName(ctx, r.db, name)
}

func (r *referenceRepository) GetAllRoles(ctx context.Context) ([]domain.Role, error) {
	const query = `SELECT role_id, role_name FROM user_role ORDER BY role_name ASC;`

	var roles []domain.Role
	if err := r.db.SelectContext(ctx, &roles, query); err != nil {
		return nil, fmt.Errorf("select from user_role failed: %w", err)
	}
	return roles, nil
}

func (r *referenceRepository) GetAllProfessions(ctx context.Context) ([]domain.Profession, error) {
	const query = `SELECT profession_id, profession_name FROM user_profession ORDER BY profession_name ASC;`

	var professions []domain.Profession
	if err := r.db.SelectContext(ctx, &professions, query); err != nil {
		return nil, fmt.Errorf("select from user_profession failed: %w", err)
	}
	return professions, nil
}

// getRoleByName resolves an exact role name with either the pool or an open transaction.
func getRoleByName(ctx context.Context, q sqlx.QueryerContext, name string) (*domain.Role, error) {
	const query = `SELECT role_id, role_name FROM user_role WHERE role_name = ?;`

	var role domain.Role
	if err := sqlx.GetContext(ctx, q, &role, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user_role by name failed: %w", err)
	}
	return &role, nil
}

func getProfessionByName(ctx context.Context, q sqlx.QueryerContext, name string) (*domain.Profession, error) {
	const query = `SELECT profession_id, profession_name FROM user_profession WHERE profession_name = ?;`

	var profession domain.Profession
	if err := sqlx.GetContext(ctx, q, &profession, query, name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user_profession by name failed: %w", err)
	}
	return &profession, nil
}
