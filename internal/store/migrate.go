package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"recrutement/internal/models"
)

// Schema changes are an explicit, ordered list. Each entry is recorded in
// schema_migrations once applied, and every Run guards itself with
// HasTable/HasColumn so re-running against a half-migrated database from
// an older deployment is safe.
type migration struct {
	ID  string
	Run func(tx *gorm.DB) error
}

var migrations = []migration{
	{ID: "0001_create_jobs", Run: createTable(&models.Job{})},
	{ID: "0002_create_applications", Run: createTable(&models.Application{})},
	{ID: "0003_create_admins", Run: createTable(&models.Admin{})},
	{ID: "0004_create_audit_logs", Run: createTable(&models.AuditLog{})},
	// Columns added after the first release; older databases predate them.
	{ID: "0005_applications_add_columns", Run: func(tx *gorm.DB) error {
		for _, field := range []string{"YearsExp", "JobID", "JobTitle", "CVPath", "IDPath", "Status", "TrackingCode"} {
			if tx.Migrator().HasColumn(&models.Application{}, field) {
				continue
			}
			if err := tx.Migrator().AddColumn(&models.Application{}, field); err != nil {
				return err
			}
		}
		return nil
	}},
	{ID: "0006_admins_add_is_active", Run: func(tx *gorm.DB) error {
		if tx.Migrator().HasColumn(&models.Admin{}, "IsActive") {
			return nil
		}
		return tx.Migrator().AddColumn(&models.Admin{}, "IsActive")
	}},
	{ID: "0007_applications_tracking_code_unique", Run: func(tx *gorm.DB) error {
		if tx.Migrator().HasIndex(&models.Application{}, "TrackingCode") {
			return nil
		}
		return tx.Migrator().CreateIndex(&models.Application{}, "TrackingCode")
	}},
}

func createTable(model any) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if tx.Migrator().HasTable(model) {
			return nil
		}
		return tx.Migrator().CreateTable(model)
	}
}

// Migrate applies all pending migrations in order. It only fails when the
// database itself is unreachable or a migration errors.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	if err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (name TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL)`).Error; err != nil {
		return fmt.Errorf("ensure schema_migrations: %w", err)
	}

	var applied []string
	if err := db.Table("schema_migrations").Order("name").Pluck("name", &applied).Error; err != nil {
		return fmt.Errorf("list applied migrations: %w", err)
	}
	done := make(map[string]bool, len(applied))
	for _, name := range applied {
		done[name] = true
	}

	for _, m := range migrations {
		if done[m.ID] {
			continue
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Run(tx); err != nil {
				return err
			}
			return tx.Exec(`INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)`, m.ID, time.Now().UTC()).Error
		})
		if err != nil {
			return fmt.Errorf("apply migration %s: %w", m.ID, err)
		}
	}
	return nil
}
