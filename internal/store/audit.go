package store

import (
	"context"
	"time"

	"recrutement/internal/models"
)

// AuditEntry is what handlers record after a privileged action.
type AuditEntry struct {
	ActorEmail string
	ActorRole  string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
	IP         string
}

// AppendAudit inserts one immutable audit row. Callers treat failure as
// best-effort: log it and carry on, never roll back the primary action.
func (s *Store) AppendAudit(ctx context.Context, e AuditEntry) error {
	row := models.AuditLog{
		Action:    e.Action,
		Metadata:  models.Marshal(e.Metadata),
		CreatedAt: time.Now(),
	}
	if e.ActorEmail != "" {
		row.ActorEmail = &e.ActorEmail
	}
	if e.ActorRole != "" {
		row.ActorRole = &e.ActorRole
	}
	if e.Entity != "" {
		row.Entity = &e.Entity
	}
	if e.EntityID != "" {
		row.EntityID = &e.EntityID
	}
	if e.IP != "" {
		row.IP = &e.IP
	}
	return s.db.WithContext(ctx).Create(&row).Error
}

// ListAuditEntries returns the most recent audit rows, newest first.
func (s *Store) ListAuditEntries(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	var logs []models.AuditLog
	err := s.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&logs).Error
	return logs, err
}
