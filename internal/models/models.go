package models

import "time"

type Job struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string    `gorm:"not null" json:"title"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	IsActive   bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type Application struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"not null" json:"full_name"`
	Email    string `gorm:"not null" json:"email"`
	Phone    string `gorm:"not null" json:"phone"`
	City     string `json:"city"`
	YearsExp int    `gorm:"not null;default:0" json:"years_exp"`

	JobID *int64 `json:"job_id,omitempty"`
	// JobTitle is a snapshot taken at submission time so the record keeps
	// displaying the title the candidate applied for even if the catalog
	// entry is renamed or deactivated later.
	JobTitle *string `json:"job_title,omitempty"`

	CVPath string `json:"cv_path,omitempty"`
	IDPath string `json:"id_path,omitempty"`

	Status       string    `gorm:"not null;default:RECEIVED" json:"status"`
	TrackingCode string    `gorm:"uniqueIndex;not null" json:"tracking_code"`
	CreatedAt    time.Time `json:"created_at"`
}

type Admin struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"not null;default:ADMIN" json:"role"`
	IsActive     bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditLog rows are append-only; nothing in the codebase updates or
// deletes them.
type AuditLog struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ActorEmail *string   `json:"actor_email,omitempty"`
	ActorRole  *string   `json:"actor_role,omitempty"`
	Action     string    `gorm:"not null" json:"action"`
	Entity     *string   `json:"entity,omitempty"`
	EntityID   *string   `json:"entity_id,omitempty"`
	Metadata   JSONB     `gorm:"type:jsonb;default:'{}'::jsonb" json:"metadata"`
	IP         *string   `json:"ip,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
