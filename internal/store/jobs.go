package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"recrutement/internal/models"
)

// seedJobTitles is the launch catalog, inserted once into an empty table.
var seedJobTitles = []string{
	"Chargés de relation avec les clients",
	"Délégués commerciaux",
	"Analystes crédits",
	"Contrôleurs permanents (internes)",
	"Agents de recouvrement",
	"Chef caissiers (Coordonnateur)",
	"Caissiers",
	"Auditeurs internes",
	"Informaticiens experts en réseaux",
	"Informaticiens experts en conception des systèmes",
	"Ressources Humaines",
}

// ListActiveJobs returns the jobs currently open to the public, ordered
// by title.
func (s *Store) ListActiveJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("title asc").
		Find(&jobs).Error
	return jobs, err
}

// GetJob fetches a single job regardless of its active flag.
func (s *Store) GetJob(ctx context.Context, id int64) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// SeedJobsIfEmpty bootstraps the job catalog. It is a one-time seed, not
// a sync: a non-empty table is left exactly as it is.
func (s *Store) SeedJobsIfEmpty(ctx context.Context) error {
	db := s.db.WithContext(ctx)
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now()
	jobs := make([]models.Job, 0, len(seedJobTitles))
	for _, title := range seedJobTitles {
		jobs = append(jobs, models.Job{
			Title:      title,
			Department: "CADECO",
			Location:   "Kinshasa",
			IsActive:   true,
			CreatedAt:  now,
		})
	}
	return db.Create(&jobs).Error
}
