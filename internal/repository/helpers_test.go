package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/genaicorelab/iam-backend/internal/config"
	"github.com/genaicorelab/iam-backend/internal/db"
	"github.com/genaicorelab/iam-backend/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	conn, err := db.New(config.Database{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "iam.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx := context.Background()
	require.NoError(t, db.Migrate(ctx, conn))
	require.NoError(t, db.SeedReferences(ctx, conn, []string{"admin", "user"}, []string{"engineer", "doctor"}))

	return conn
}

func aliceCandidate() *domain.RegistrationCandidate {
	return &domain.RegistrationCandidate{
		Username:     "alice",
		Email:        "alice@x.com",
		PasswordHash: "$2a$04$hashedpasswordplaceholder",
		Phone:        "9876543210",
		Role:         "admin",
		Profession:   "engineer",
		Country:      "IN",
		City:         "Pune",
	}
}

func bobCandidate() *domain.RegistrationCandidate {
	return &domain.RegistrationCandidate{
		Username:     "bob",
		Email:        "bob@x.com",
		PasswordHash: "$2a$04$anotherhashplaceholder",
		Phone:        "9123456789",
		Role:         "user",
		Profession:   "doctor",
		Country:      "IN",
		City:         "Mumbai",
	}
}

type tableCounts struct {
	Registration int
	Master       int
	Log          int
}

func countRows(t *testing.T, conn *sqlx.DB, email string) tableCounts {
	t.Helper()

	var c tableCounts
	ctx := context.Background()
	require.NoError(t, conn.GetContext(ctx, &c.Registration, "SELECT COUNT(*) FROM user_registration WHERE user_mail = ?", email))
	require.NoError(t, conn.GetContext(ctx, &c.Master, "SELECT COUNT(*) FROM user_master WHERE user_mail = ?", email))
	require.NoError(t, conn.GetContext(ctx, &c.Log, "SELECT COUNT(*) FROM registration_log WHERE user_mail = ?", email))
	return c
}

func countAll(t *testing.T, conn *sqlx.DB) tableCounts {
	t.Helper()

	var c tableCounts
	ctx := context.Background()
	require.NoError(t, conn.GetContext(ctx, &c.Registration, "SELECT COUNT(*) FROM user_registration"))
	require.NoError(t, conn.GetContext(ctx, &c.Master, "SELECT COUNT(*) FROM user_master"))
	require.NoError(t, conn.GetContext(ctx, &c.Log, "SELECT COUNT(*) FROM registration_log"))
	return c
}
