package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"recrutement/internal/auth"
	"recrutement/internal/config"
	"recrutement/internal/httpserver"
	"recrutement/internal/logger"
	"recrutement/internal/mailer"
	"recrutement/internal/obs"
	"recrutement/internal/store"
	"recrutement/internal/upload"
)

func main() {
	_ = godotenv.Load()
	lg := logger.New()
	defer lg.Sync()

	cfg, err := config.Load()
	if err != nil {
		lg.Fatalw("config invalid", "error", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{TranslateError: true})
	if err != nil {
		lg.Fatalw("db connect failed", "error", err)
	}

	st := store.New(db)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := st.Migrate(ctx); err != nil {
		lg.Fatalw("migrate failed", "error", err)
	}
	if err := st.SeedJobsIfEmpty(ctx); err != nil {
		lg.Fatalw("seed jobs failed", "error", err)
	}
	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		admin, created, err := st.SeedAdminIfMissing(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword, cfg.SeedAdminRole)
		if err != nil {
			lg.Fatalw("seed admin failed", "error", err)
		}
		if created {
			lg.Infow("seeded bootstrap admin", "email", admin.Email, "role", admin.Role)
		}
	}

	saver, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		lg.Fatalw("upload dir unavailable", "error", err)
	}

	obs.Init()
	tokens := auth.NewTokens(cfg.JWTSecret, cfg.JWTTTL)
	ml := mailer.New(cfg, lg)
	router := httpserver.NewRouter(st, cfg, tokens, saver, ml, lg)

	lg.Infow("listening", "port", cfg.HTTPPort)
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		lg.Fatalw("server stopped", "error", err)
	}
}
