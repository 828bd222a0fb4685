package db

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// Migrate creates the reference and user tables if they do not exist yet.
func Migrate(ctx context.Context, conn *sqlx.DB) error {
	content, err := schemaFS.ReadFile("schema/" + conn.DriverName() + ".sql")
	if err != nil {
		return fmt.Errorf("read schema for %s: %w", conn.DriverName(), err)
	}

	for _, stmt := range splitStatements(string(content)) {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement: %w", err)
		}
	}

	return nil
}

// SeedReferences inserts role and profession names, skipping existing ones.
func SeedReferences(ctx context.Context, conn *sqlx.DB, roles []string, professions []string) error {
	insertIgnore := "INSERT IGNORE"
	if conn.DriverName() == "sqlite" {
		insertIgnore = "INSERT OR IGNORE"
	}

	for _, name := range roles {
		query := insertIgnore + " INTO user_role (role_name) VALUES (?)"
		if _, err := conn.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}

	for _, name := range professions {
		query := insertIgnore + " INTO user_profession (profession_name) VALUES (?)"
		if _, err := conn.ExecContext(ctx, query, name); err != nil {
			return fmt.Errorf("seed profession %q: %w", name, err)
		}
	}

	return nil
}

func splitStatements(content string) []string {
	var out []string
	for _, stmt := range strings.Split(content, ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
