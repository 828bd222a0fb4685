package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/genaicorelab/iam-backend/internal/db"
	"github.com/genaicorelab/iam-backend/internal/domain"

	"github.com/jmoiron/sqlx"
)

type userRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func newUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{
		db:  db,
		now: time.Now,
	}
}

// Register resolves the candidate's role and profession and writes the pending
// registration, the active user and the registration log in one transaction.
// It returns the id of the pending registration row.
func (r *userRepository) Register(ctx context.Context, candidate *domain.RegistrationCandidate) (int64, error) {
	const (
		insertRegistration = `
		INSERT INTO user_registration
		(username, user_mail, user_password, user_number, role_id, profession_id, country, city, registration_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
		`
		insertMaster = `
		INSERT INTO user_master
		(username, user_mail, user_password, user_number, role_id, profession_id, country, city, registration_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
		`
		insertLog = `
		INSERT INTO registration_log (username, user_mail, role_id, log_date) VALUES (?, ?, ?, ?);
		`
	)

	var registrationID int64
	err := withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		role, err := getRoleByName(ctx, tx, candidate.Role)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidReference
			}
			return err
		}

		profession, err := getProfessionByName(ctx, tx, candidate.Profession)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.ErrInvalidReference
			}
			return err
		}

		professionID := sql.NullInt64{Int64: profession.ID, Valid: true}
		registeredAt := r.now().UTC().Truncate(time.Second)

		result, err := tx.ExecContext(ctx, insertRegistration,
			candidate.Username,
			candidate.Email,
			candidate.PasswordHash,
			candidate.Phone,
			role.ID,
			professionID,
			candidate.Country,
			candidate.City,
			registeredAt,
		)
		if err != nil {
			return insertError("user_registration", err)
		}

		registrationID, err = result.LastInsertId()
		if err != nil {
			return fmt.Errorf("user_registration last insert id failed: %w", err)
		}

		if _, err = tx.ExecContext(ctx, insertMaster,
			candidate.Username,
			candidate.Email,
			candidate.PasswordHash,
			candidate.Phone,
			role.ID,
			professionID,
			candidate.Country,
			candidate.City,
			registeredAt,
		); err != nil {
			return insertError("user_master", err)
		}

		if _, err = tx.ExecContext(ctx, insertLog, candidate.Username, candidate.Email, role.ID, registeredAt); err != nil {
			return insertError("registration_log", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return registrationID, nil
}

// DeregisterByPhone deletes the active user, the pending registration and the
// registration log row of the user owning phone. Nothing is deleted unless all
// found rows are.
func (r *userRepository) DeregisterByPhone(ctx context.Context, phone string) error {
	const (
		selectMaster = `
		SELECT id, user_mail FROM user_master WHERE user_number = ?;
		`
		selectRegistration = `
		SELECT id, user_mail FROM user_registration WHERE user_number = ?;
		`
		selectLog = `
		SELECT log_id FROM registration_log WHERE user_mail = ? ORDER BY log_id ASC LIMIT 1;
		`
		deleteMaster       = `DELETE FROM user_master WHERE id = ?;`
		deleteRegistration = `DELETE FROM user_registration WHERE id = ?;`
		deleteLog          = `DELETE FROM registration_log WHERE log_id = ?;`
	)

	type phoneOwner struct {
		ID    int64  `db:"id"`
		Email string `db:"user_mail"`
	}

	return withTx(ctx, r.db, func(tx *sqlx.Tx) error {
		master, err := getOptional[phoneOwner](ctx, tx, selectMaster, phone)
		if err != nil {
			return fmt.Errorf("select from user_master by phone failed: %w", err)
		}

		registration, err := getOptional[phoneOwner](ctx, tx, selectRegistration, phone)
		if err != nil {
			return fmt.Errorf("select from user_registration by phone failed: %w", err)
		}

		if master == nil && registration == nil {
			return domain.ErrNotFound
		}

		var email string
		if registration != nil {
			email = registration.Email
		} else {
			email = master.Email
		}

		logID, err := getOptional[int64](ctx, tx, selectLog, email)
		if err != nil {
			return fmt.Errorf("select from registration_log by email failed: %w", err)
		}

		if registration != nil {
			if err := deleteOne(ctx, tx, deleteRegistration, registration.ID); err != nil {
				return fmt.Errorf("delete user_registration failed: %w", err)
			}
		}

		if master != nil {
			if err := deleteOne(ctx, tx, deleteMaster, master.ID); err != nil {
				return fmt.Errorf("delete user_master failed: %w", err)
			}
		}

		if logID != nil {
			if err := deleteOne(ctx, tx, deleteLog, *logID); err != nil {
				return fmt.Errorf("delete registration_log failed: %w", err)
			}
		}

		return nil
	})
}

func (r *userRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.ActiveUser, error) {
	const query = `
	SELECT id, username, user_mail, user_password, user_number, role_id, profession_id, country, city, registration_date, deregister_date
	FROM user_master WHERE user_mail = ?;
	`
	var user domain.ActiveUser
	if err := r.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from user_master by email failed: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetProfileByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	const query = `
	SELECT m.id, m.username, m.user_mail, m.user_number, r.role_name, p.profession_name, m.country, m.city, m.registration_date
	FROM user_master m
	JOIN user_role r ON r.role_id = m.role_id
	LEFT JOIN user_profession p ON p.profession_id = m.profession_id
	WHERE m.user_mail = ? AND m.deregister_date IS NULL;
	`
	var profile domain.UserProfile
	if err := r.db.GetContext(ctx, &profile, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select user profile by email failed: %w", err)
	}

	return &profile, nil
}

func insertError(table string, err error) error {
	if db.IsDuplicateEntry(err) {
		return domain.ErrDuplicateEntry
	}
	return fmt.Errorf("db insert %s: %w", table, err)
}

// getOptional scans a single row into T, returning nil when there is none.
func getOptional[T any](ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) (*T, error) {
	var dest T
	if err := tx.GetContext(ctx, &dest, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dest, nil
}

// deleteOne fails with domain.ErrNotFound when a concurrent request removed the row first.
func deleteOne(ctx context.Context, tx *sqlx.Tx, query string, id int64) error {
	result, err := tx.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected failed: %w", err)
	}

	if rows == 0 {
		return domain.ErrNotFound
	}

	return nil
}
