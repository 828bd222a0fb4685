package db

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/genaicorelab/iam-backend/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const DuplicateEntry = 1062

// New opens the configured database and verifies the connection.
func New(cfg config.Database) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return newMySQL(cfg)
	case config.DriverSQLite:
		return newSQLite(cfg)
	}

	return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
}

func newMySQL(cfg config.Database) (*sqlx.DB, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time load location failed: %w", err)
	}
	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Addr()
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.ReadTimeout = cfg.Timeout
	conf.WriteTimeout = cfg.Timeout
	conf.Loc = location
	conf.ParseTime = true

	dbConn, err := sqlx.Connect("mysql", conf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	return dbConn, nil
}

func newSQLite(cfg config.Database) (*sqlx.DB, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, errors.New("sqlite path is required")
	}

	busy := cfg.Timeout.Milliseconds()
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)",
		filepath.Clean(cfg.Path), busy)

	dbConn, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	// sqlite serializes writers; a single connection keeps transactions from
	// failing with SQLITE_BUSY under concurrent requests.
	dbConn.SetMaxOpenConns(1)

	return dbConn, nil
}

// IsDuplicateEntry reports whether err is a unique constraint violation
// raised by either supported driver.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == DuplicateEntry
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY {
			return true
		}
		// without extended result codes only the primary code is reported
		return code == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
	}

	return false
}
