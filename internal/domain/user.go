package domain

import (
	"database/sql"
	"time"
)

// ActiveUser is a row of user_master.
type ActiveUser struct {
	ID                 int64         `db:"id" json:"id"`
	Username           string        `db:"username" json:"username"`
	Email              string        `db:"user_mail" json:"email"`
	PasswordHash       string        `db:"user_password" json:"-"`
	Phone              string        `db:"user_number" json:"phone"`
	RoleID             int64         `db:"role_id" json:"role_id"`
	ProfessionID       sql.NullInt64 `db:"profession_id" json:"profession_id"`
	Country            string        `db:"country" json:"country"`
	City               string        `db:"city" json:"city"`
	RegistrationDate   time.Time     `db:"registration_date" json:"registration_date"`
	DeregistrationDate *time.Time    `db:"deregister_date" json:"deregister_date,omitempty"`
}

// Deregistered reports whether the account was marked as deregistered.
func (u *ActiveUser) Deregistered() bool {
	return u.DeregistrationDate != nil
}

// UserProfile is an active user with its reference names resolved.
type UserProfile struct {
	ID               int64          `db:"id" json:"id"`
	Username         string         `db:"username" json:"username"`
	Email            string         `db:"user_mail" json:"email"`
	Phone            string         `db:"user_number" json:"phone"`
	Role             string         `db:"role_name" json:"role"`
	Profession       sql.NullString `db:"profession_name" json:"-"`
	Country          string         `db:"country" json:"country"`
	City             string         `db:"city" json:"city"`
	RegistrationDate time.Time      `db:"registration_date" json:"registration_date"`
}

// Identity is what a bearer token is minted for.
type Identity struct {
	UserID int64
	Email  string
}
