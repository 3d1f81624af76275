package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"recrutement/internal/auth"
	"recrutement/internal/config"
	"recrutement/internal/httpserver/handlers"
	"recrutement/internal/mailer"
	"recrutement/internal/obs"
	"recrutement/internal/store"
	"recrutement/internal/upload"
)

func NewRouter(st *store.Store, cfg *config.Config, tokens *auth.Tokens, saver *upload.Saver, ml *mailer.Mailer, lg *zap.SugaredLogger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer, middleware.Logger)
	r.Use(obs.Instrument)

	r.Route("/api", func(api chi.Router) {
		api.Get("/jobs", handlers.ListJobs(st, lg))
		api.Post("/apply", handlers.Apply(st, saver, ml, lg))
		api.Get("/track", handlers.Track(st, lg))

		api.Route("/admin", func(admin chi.Router) {
			admin.Post("/seed", handlers.Seed(st, cfg, lg))
			admin.Post("/login", handlers.Login(st, tokens, lg))

			admin.Group(func(protected chi.Router) {
				protected.Use(auth.Middleware(tokens))
				protected.Get("/applications", handlers.ListApplications(st, lg))
				protected.Get("/applications/{id}", handlers.GetApplication(st, lg))
				protected.Put("/applications/{id}/status", handlers.UpdateStatus(st, ml, lg))
				protected.Get("/applications/{id}/fiche.pdf", handlers.ApplicationPDF(st, lg))
				protected.Get("/audit", handlers.AuditEntries(st, lg))
			})
		})
	})

	// Uploaded files are served read-only; paths stored in rows are
	// relative to the upload dir.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(saver.Dir())))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Method(http.MethodGet, "/metrics", obs.Handler())
	return r
}
