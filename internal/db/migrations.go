package db

import (
	"bufio"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	embeddedmigrations "github.com/terraincognita07/mlimi/migrations"
)

// Migration is one forward-only SQL file shipped inside the binary. Files are
// named NNNN_description.sql; the numeric prefix is the version.
type Migration struct {
	Version string
	Order   int
	Name    string
	SQL     string
}

// MigrationStatus reports an embedded migration and whether the database has it.
type MigrationStatus struct {
	Migration
	Applied bool
}

type schemaMigration struct {
	Version   string    `gorm:"column:version;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	AppliedAt time.Time `gorm:"column:applied_at;not null"`
}

func (schemaMigration) TableName() string {
	return "schema_migrations"
}

// ApplyMigrations runs every pending embedded migration in version order,
// one transaction each, and returns the file names it applied.
func ApplyMigrations(database *gorm.DB) ([]string, error) {
	statuses, err := MigrationStatuses(database)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, status := range statuses {
		if status.Applied {
			continue
		}
		if err := runMigration(database, status.Migration); err != nil {
			return applied, err
		}
		applied = append(applied, status.Name)
	}
	return applied, nil
}

// MigrationStatuses lists embedded migrations in apply order.
func MigrationStatuses(database *gorm.DB) ([]MigrationStatus, error) {
	if err := database.AutoMigrate(&schemaMigration{}); err != nil {
		return nil, fmt.Errorf("prepare schema_migrations: %w", err)
	}

	migrations, err := loadEmbeddedMigrations(embeddedmigrations.Files)
	if err != nil {
		return nil, err
	}

	var versions []string
	if err := database.Model(&schemaMigration{}).Pluck("version", &versions).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}
	applied := make(map[string]bool, len(versions))
	for _, version := range versions {
		applied[version] = true
	}

	statuses := make([]MigrationStatus, len(migrations))
	for i, migration := range migrations {
		statuses[i] = MigrationStatus{Migration: migration, Applied: applied[migration.Version]}
	}
	return statuses, nil
}

func loadEmbeddedMigrations(files fs.FS) ([]Migration, error) {
	names, err := fs.Glob(files, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list embedded migrations: %w", err)
	}

	byVersion := make(map[string]string, len(names))
	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		version, _, ok := strings.Cut(strings.TrimSuffix(name, path.Ext(name)), "_")
		if !ok {
			continue
		}
		order, err := strconv.Atoi(version)
		if err != nil || order < 0 {
			continue
		}
		if previous, dup := byVersion[version]; dup {
			return nil, fmt.Errorf("migration version %s used by both %s and %s", version, previous, name)
		}
		byVersion[version] = name

		content, err := fs.ReadFile(files, name)
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Version: version, Order: order, Name: name, SQL: string(content)})
	}

	sort.SliceStable(migrations, func(i, j int) bool {
		return migrations[i].Order < migrations[j].Order
	})
	return migrations, nil
}

func runMigration(database *gorm.DB, migration Migration) error {
	statements := splitSQLStatements(migration.SQL)
	if len(statements) == 0 {
		return fmt.Errorf("migration %s is empty", migration.Name)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for i, statement := range statements {
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s statement %d: %w", migration.Name, i+1, err)
			}
		}
		record := schemaMigration{Version: migration.Version, Name: migration.Name, AppliedAt: time.Now().UTC()}
		if err := tx.Create(&record).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", migration.Name, err)
		}
		return nil
	})
}

// splitSQLStatements drops "--" comment lines, then splits on ";". Migrations
// must not put semicolons inside string literals.
func splitSQLStatements(sqlText string) []string {
	var body strings.Builder
	scanner := bufio.NewScanner(strings.NewReader(sqlText))
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		body.WriteString(line)
		body.WriteByte('\n')
	}

	var statements []string
	for _, part := range strings.Split(body.String(), ";") {
		if statement := strings.TrimSpace(part); statement != "" {
			statements = append(statements, statement)
		}
	}
	return statements
}
