package db

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/terraincognita07/mlimi/internal/logging"
)

const (
	sqliteBusyTimeout  = 5 * time.Second
	slowQueryThreshold = time.Second
)

// OpenSQLite opens the database file, creating its directory when needed, and
// brings the schema up to date before returning.
func OpenSQLite(dbPath string, logger *zap.Logger) (*gorm.DB, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", dir, err)
		}
	}

	database, err := gorm.Open(sqlite.Open(sqliteDSN(dbPath)), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(logging.NewGormWriter(logger), gormlogger.Config{
			SlowThreshold:             slowQueryThreshold,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}

	applied, err := ApplyMigrations(database)
	if err != nil {
		return nil, fmt.Errorf("migrate %s: %w", dbPath, err)
	}
	if len(applied) > 0 && logger != nil {
		logger.Info("applied migrations", zap.Strings("files", applied))
	}
	return database, nil
}

// sqliteDSN turns on foreign keys for every pooled connection; ownership of
// soil and animal records relies on them.
func sqliteDSN(dbPath string) string {
	return fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(%d)", dbPath, sqliteBusyTimeout.Milliseconds())
}
