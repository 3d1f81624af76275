package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"recrutement/internal/auth"
	"recrutement/internal/config"
	"recrutement/internal/mailer"
	"recrutement/internal/models"
	"recrutement/internal/obs"
	"recrutement/internal/pdf"
	"recrutement/internal/store"
)

// Seed runs the bootstrap admin creation from configuration, the same
// operation main performs at startup. Exposed so a fresh deployment can
// be initialized without a restart.
func Seed(st *store.Store, cfg *config.Config, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cfg.SeedAdminEmail == "" || cfg.SeedAdminPassword == "" {
			respondMessage(w, http.StatusBadRequest, "SEED_ADMIN_EMAIL et SEED_ADMIN_PASSWORD requis.")
			return
		}
		admin, created, err := st.SeedAdminIfMissing(r.Context(), cfg.SeedAdminEmail, cfg.SeedAdminPassword, cfg.SeedAdminRole)
		if err != nil {
			lg.Errorw("seed admin failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		if created {
			audit(r.Context(), st, lg, store.AuditEntry{
				Action:   "admin.seed",
				Entity:   "admin",
				EntityID: fmt.Sprintf("%d", admin.ID),
				Metadata: map[string]any{"email": admin.Email, "role": admin.Role},
				IP:       r.RemoteAddr,
			})
		}
		respondJSON(w, map[string]any{
			"message":   "Seed admin OK",
			"email":     admin.Email,
			"role":      admin.Role,
			"is_active": admin.IsActive,
		})
	}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates an admin and issues a bearer token. Unknown email
// and wrong password produce the same response so the API is not an
// account oracle; a deactivated account is reported distinctly.
func Login(st *store.Store, tokens *auth.Tokens, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "Requête invalide.")
			return
		}
		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			respondMessage(w, http.StatusBadRequest, "Courriel et mot de passe requis.")
			return
		}

		deny := func(reason string) {
			audit(r.Context(), st, lg, store.AuditEntry{
				ActorEmail: req.Email,
				Action:     "admin.login.denied",
				Metadata:   map[string]any{"reason": reason},
				IP:         r.RemoteAddr,
			})
		}

		admin, err := st.FindAdminByEmail(r.Context(), req.Email)
		if errors.Is(err, store.ErrNotFound) {
			deny("unknown_email")
			respondMessage(w, http.StatusUnauthorized, "Identifiants invalides.")
			return
		}
		if err != nil {
			lg.Errorw("admin lookup failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		if !admin.IsActive {
			deny("account_disabled")
			respondMessage(w, http.StatusForbidden, "Compte désactivé.")
			return
		}
		if auth.CheckPassword(admin.PasswordHash, req.Password) != nil {
			deny("bad_password")
			respondMessage(w, http.StatusUnauthorized, "Identifiants invalides.")
			return
		}

		token, err := tokens.Sign(auth.Claims{AdminID: admin.ID, Email: admin.Email, Role: admin.Role})
		if err != nil {
			lg.Errorw("token sign failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}

		audit(r.Context(), st, lg, store.AuditEntry{
			ActorEmail: admin.Email,
			ActorRole:  admin.Role,
			Action:     "admin.login",
			IP:         r.RemoteAddr,
		})
		respondJSON(w, map[string]any{
			"token": token,
			"admin": map[string]any{"id": admin.ID, "email": admin.Email, "role": admin.Role},
		})
	}
}

// ListApplications serves the admin dashboard listing with optional
// search, newest first.
func ListApplications(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := store.ListFilter{
			Query:  r.URL.Query().Get("q"),
			Limit:  queryInt(r, "limit", store.DefaultLimit),
			Offset: queryInt(r, "offset", 0),
		}
		rows, err := st.ListApplications(r.Context(), filter)
		if err != nil {
			lg.Errorw("list applications failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		respondJSON(w, map[string]any{"data": rows})
	}
}

// GetApplication returns the full row including file paths.
func GetApplication(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, ok := applicationFromURL(w, r, st, lg)
		if !ok {
			return
		}
		respondJSON(w, map[string]any{"data": app})
	}
}

type statusReq struct {
	Status string `json:"status"`
}

// UpdateStatus overwrites an application's status, then notifies the
// candidate (best-effort) and records the old→new pair in the audit log.
func UpdateStatus(st *store.Store, ml *mailer.Mailer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Identifiant invalide.")
			return
		}
		var req statusReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondMessage(w, http.StatusBadRequest, "Requête invalide.")
			return
		}
		if req.Status == "" {
			respondMessage(w, http.StatusBadRequest, "Statut requis.")
			return
		}
		if !models.ValidStatus(req.Status) {
			respondMessage(w, http.StatusBadRequest, "Statut invalide.")
			return
		}

		before, err := st.GetApplicationByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Candidature introuvable.")
			return
		}
		if err != nil {
			lg.Errorw("load application failed", "id", id, "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}

		app, err := st.UpdateApplicationStatus(r.Context(), id, req.Status)
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Candidature introuvable.")
			return
		}
		if err != nil {
			lg.Errorw("update status failed", "id", id, "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}

		obs.StatusChanged(app.Status)
		go ml.SendStatusChange(context.Background(), app.Email, app.FullName, app.TrackingCode, app.Status)

		claims := auth.FromContext(r.Context())
		audit(r.Context(), st, lg, store.AuditEntry{
			ActorEmail: claims.Email,
			ActorRole:  claims.Role,
			Action:     "application.status_change",
			Entity:     "application",
			EntityID:   fmt.Sprintf("%d", app.ID),
			Metadata:   map[string]any{"from": before.Status, "to": app.Status},
			IP:         r.RemoteAddr,
		})

		respondJSON(w, map[string]any{"message": "Statut mis à jour", "data": app})
	}
}

// ApplicationPDF streams the printable summary sheet.
func ApplicationPDF(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		app, ok := applicationFromURL(w, r, st, lg)
		if !ok {
			return
		}
		out, err := pdf.Candidature(app)
		if err != nil {
			lg.Errorw("pdf render failed", "id", app.ID, "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		name := app.TrackingCode
		if name == "" {
			name = fmt.Sprintf("%d", app.ID)
		}
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "candidature-"+name+".pdf"))
		_, _ = w.Write(out)
	}
}

// AuditEntries lists recent audit rows for the admin audit page.
func AuditEntries(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := st.ListAuditEntries(r.Context(), queryInt(r, "limit", store.DefaultLimit))
		if err != nil {
			lg.Errorw("list audit entries failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		respondJSON(w, map[string]any{"data": rows})
	}
}

func applicationFromURL(w http.ResponseWriter, r *http.Request, st *store.Store, lg *zap.SugaredLogger) (*models.Application, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Identifiant invalide.")
		return nil, false
	}
	app, err := st.GetApplicationByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Candidature introuvable.")
		return nil, false
	}
	if err != nil {
		lg.Errorw("load application failed", "id", id, "error", err)
		respondMessage(w, http.StatusInternalServerError, msgServerError)
		return nil, false
	}
	return app, true
}

// audit appends an entry and only logs on failure; audit trouble must not
// fail the action that triggered it.
func audit(ctx context.Context, st *store.Store, lg *zap.SugaredLogger, e store.AuditEntry) {
	if err := st.AppendAudit(ctx, e); err != nil {
		lg.Errorw("audit append failed", "action", e.Action, "error", err)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
