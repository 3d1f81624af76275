package store

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"recrutement/internal/auth"
	"recrutement/internal/models"
)

// FindAdminByEmail looks up an admin account by exact email.
func (s *Store) FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := s.db.WithContext(ctx).First(&admin, "email = ?", strings.TrimSpace(email)).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// SeedAdminIfMissing creates the bootstrap account on first run. When the
// email already exists the stored record is returned untouched, so
// rotating SEED_ADMIN_PASSWORD after the first boot changes nothing.
// Second return value reports whether an account was actually created.
func (s *Store) SeedAdminIfMissing(ctx context.Context, email, password, role string) (*models.Admin, bool, error) {
	email = strings.TrimSpace(email)
	if existing, err := s.FindAdminByEmail(ctx, email); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, ErrNotFound) {
		return nil, false, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, false, err
	}
	if role == "" {
		role = "ADMIN"
	}
	admin := models.Admin{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		if isDuplicate(err) {
			// Lost a race with a concurrent seed; the existing row wins.
			existing, ferr := s.FindAdminByEmail(ctx, email)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return &admin, true, nil
}
