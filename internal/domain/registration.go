package domain

import (
	"database/sql"
	"time"
)

// RegistrationCandidate is a validated registration request with the
// password already hashed. Role and Profession are names, not ids.
type RegistrationCandidate struct {
	Username     string
	Email        string
	PasswordHash string
	Phone        string
	Role         string
	Profession   string
	Country      string
	City         string
}

// PendingRegistration is a row of user_registration. Rows are never updated.
type PendingRegistration struct {
	ID               int64         `db:"id" json:"id"`
	Username         string        `db:"username" json:"username"`
	Email            string        `db:"user_mail" json:"email"`
	PasswordHash     string        `db:"user_password" json:"-"`
	Phone            string        `db:"user_number" json:"phone"`
	RoleID           int64         `db:"role_id" json:"role_id"`
	ProfessionID     sql.NullInt64 `db:"profession_id" json:"profession_id"`
	Country          string        `db:"country" json:"country"`
	City             string        `db:"city" json:"city"`
	RegistrationDate time.Time     `db:"registration_date" json:"registration_date"`
}

// RegistrationLog is an append-only audit row written once per registration.
type RegistrationLog struct {
	ID       int64     `db:"log_id" json:"log_id"`
	Username string    `db:"username" json:"username"`
	Email    string    `db:"user_mail" json:"email"`
	RoleID   int64     `db:"role_id" json:"role_id"`
	LogDate  time.Time `db:"log_date" json:"log_date"`
}
