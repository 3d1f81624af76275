package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"recrutement/internal/models"
	"recrutement/internal/tracking"
)

// DefaultLimit is the page size used when the caller does not ask for one.
const DefaultLimit = 200

// CreateApplicationInput carries a submission into the store. Presence of
// the required fields has already been validated at the boundary; the
// store only normalizes.
type CreateApplicationInput struct {
	FullName string
	Email    string
	Phone    string
	City     string
	YearsExp int
	JobID    *int64
	JobTitle *string
	CVPath   string
	IDPath   string
}

// TrackedApplication is the public projection returned for tracking-code
// lookups. File paths are deliberately absent so internal storage
// locations never leak to candidates.
type TrackedApplication struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	City         string    `json:"city"`
	YearsExp     int       `json:"years_exp"`
	JobTitle     *string   `json:"job_title"`
	Status       string    `json:"status"`
	TrackingCode string    `json:"tracking_code"`
	CreatedAt    time.Time `json:"created_at"`
}

// ListFilter narrows and paginates admin application listings.
type ListFilter struct {
	Query  string
	Limit  int
	Offset int
}

// CreateApplication inserts a submission with a fresh tracking code and
// status RECEIVED. The insert is atomic; if the generated code collides
// with an existing one (the unique index decides), a second code is tried
// once before giving up with ErrConflict.
func (s *Store) CreateApplication(ctx context.Context, in CreateApplicationInput) (*models.Application, error) {
	app := models.Application{
		FullName:  strings.TrimSpace(in.FullName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		City:      strings.TrimSpace(in.City),
		YearsExp:  in.YearsExp,
		JobID:     in.JobID,
		JobTitle:  in.JobTitle,
		CVPath:    in.CVPath,
		IDPath:    in.IDPath,
		Status:    models.StatusReceived,
		CreatedAt: time.Now(),
	}
	if app.YearsExp < 0 {
		app.YearsExp = 0
	}

	for attempt := 0; attempt < 2; attempt++ {
		app.ID = 0
		app.TrackingCode = tracking.NewCode()
		err := s.db.WithContext(ctx).Create(&app).Error
		if err == nil {
			return &app, nil
		}
		if !isDuplicate(err) {
			return nil, err
		}
	}
	return nil, ErrConflict
}

// GetApplicationByTrackingCode resolves a public tracking code to the
// restricted projection. Returns ErrNotFound for unknown codes.
func (s *Store) GetApplicationByTrackingCode(ctx context.Context, code string) (*TrackedApplication, error) {
	var out TrackedApplication
	err := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Select("id", "full_name", "email", "phone", "city", "years_exp", "job_title", "status", "tracking_code", "created_at").
		Where("tracking_code = ?", strings.TrimSpace(code)).
		Take(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetApplicationByID returns the full row, file paths included. Admin use
// only; never expose this to the public surface.
func (s *Store) GetApplicationByID(ctx context.Context, id int64) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).First(&app, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListApplications returns applications newest-first. A non-empty query
// matches case-insensitively as a substring against full name, email,
// phone or tracking code.
func (s *Store) ListApplications(ctx context.Context, f ListFilter) ([]models.Application, error) {
	if f.Limit < 0 {
		f.Limit = DefaultLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	q := s.db.WithContext(ctx).Model(&models.Application{})
	if query := strings.TrimSpace(f.Query); query != "" {
		like := "%" + query + "%"
		q = q.Where(
			"full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR tracking_code ILIKE ?",
			like, like, like, like,
		)
	}
	var apps []models.Application
	err := q.Order("id desc").Limit(f.Limit).Offset(f.Offset).Find(&apps).Error
	return apps, err
}

// UpdateApplicationStatus overwrites the status and returns the updated
// row, or ErrNotFound if the id does not exist. Any status from the known
// set may follow any other; validating membership in the set is the
// caller's job.
func (s *Store) UpdateApplicationStatus(ctx context.Context, id int64, status string) (*models.Application, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetApplicationByID(ctx, id)
}
