package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"recrutement/internal/mailer"
	"recrutement/internal/obs"
	"recrutement/internal/store"
	"recrutement/internal/upload"
)

var validate = validator.New()

// ListJobs serves the public catalog: active jobs only, and only the
// fields candidates need.
func ListJobs(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	type jobView struct {
		ID         int64  `json:"id"`
		Title      string `json:"title"`
		Department string `json:"department"`
		Location   string `json:"location"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		jobs, err := st.ListActiveJobs(r.Context())
		if err != nil {
			lg.Errorw("list jobs failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		views := make([]jobView, 0, len(jobs))
		for _, j := range jobs {
			views = append(views, jobView{ID: j.ID, Title: j.Title, Department: j.Department, Location: j.Location})
		}
		respondJSON(w, map[string]any{"data": views})
	}
}

type applyForm struct {
	FullName string `validate:"required"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"required"`
	City     string
	JobID    int64 `validate:"required,gt=0"`
	YearsExp int   `validate:"gte=0"`
}

// Apply handles the public submission form (multipart). The CV is
// required, the identity document optional. Files are written to disk
// before the row insert; the confirmation mail goes out after the row is
// committed and never affects the response.
func Apply(st *store.Store, saver *upload.Saver, ml *mailer.Mailer, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Two attachments plus form fields.
		r.Body = http.MaxBytesReader(w, r.Body, 2*upload.MaxFileSize+(1<<20))
		if err := r.ParseMultipartForm(4 << 20); err != nil {
			respondMessage(w, http.StatusBadRequest, "Formulaire invalide.")
			return
		}

		form := applyForm{
			FullName: strings.TrimSpace(r.FormValue("fullName")),
			Email:    strings.TrimSpace(r.FormValue("email")),
			Phone:    strings.TrimSpace(r.FormValue("phone")),
			City:     strings.TrimSpace(r.FormValue("city")),
		}
		form.JobID, _ = strconv.ParseInt(r.FormValue("jobId"), 10, 64)
		form.YearsExp, _ = strconv.Atoi(r.FormValue("experienceYears"))

		if form.FullName == "" || form.Email == "" || form.Phone == "" {
			respondMessage(w, http.StatusBadRequest, "Nom, email et téléphone requis.")
			return
		}
		if form.JobID <= 0 {
			respondMessage(w, http.StatusBadRequest, "Poste requis.")
			return
		}
		if err := validate.Struct(form); err != nil {
			respondMessage(w, http.StatusBadRequest, "Formulaire invalide.")
			return
		}

		cvHeaders := r.MultipartForm.File["cv"]
		if len(cvHeaders) == 0 {
			respondMessage(w, http.StatusBadRequest, "CV requis.")
			return
		}
		cvPath, err := saver.Save(cvHeaders[0], "cv", []string{".pdf"})
		if err != nil {
			uploadError(w, lg, "cv", err)
			return
		}

		var idPath string
		if idHeaders := r.MultipartForm.File["idDoc"]; len(idHeaders) > 0 {
			idPath, err = saver.Save(idHeaders[0], "idDoc", []string{".pdf", ".jpg", ".jpeg", ".png"})
			if err != nil {
				uploadError(w, lg, "idDoc", err)
				return
			}
		}

		in := store.CreateApplicationInput{
			FullName: form.FullName,
			Email:    form.Email,
			Phone:    form.Phone,
			City:     form.City,
			YearsExp: form.YearsExp,
			JobID:    &form.JobID,
			CVPath:   cvPath,
			IDPath:   idPath,
		}
		// Snapshot the title so the record survives catalog edits.
		if job, jerr := st.GetJob(r.Context(), form.JobID); jerr == nil {
			in.JobTitle = &job.Title
		}

		app, err := st.CreateApplication(r.Context(), in)
		if err != nil {
			if errors.Is(err, store.ErrConflict) {
				lg.Errorw("tracking code conflict after retry", "email", form.Email)
				respondMessage(w, http.StatusConflict, "Veuillez réessayer.")
				return
			}
			lg.Errorw("create application failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}

		obs.ApplicationSubmitted()
		go ml.SendConfirmation(context.Background(), app.Email, app.FullName, app.TrackingCode)

		respondJSON(w, map[string]any{
			"message":      "Candidature enregistrée",
			"trackingCode": app.TrackingCode,
			"data":         app,
		})
	}
}

func uploadError(w http.ResponseWriter, lg *zap.SugaredLogger, field string, err error) {
	switch {
	case errors.Is(err, upload.ErrTooLarge):
		respondMessage(w, http.StatusBadRequest, "Fichier trop volumineux (10 Mo max).")
	case errors.Is(err, upload.ErrUnsupportedExt):
		respondMessage(w, http.StatusBadRequest, "Format de fichier non pris en charge.")
	default:
		lg.Errorw("upload failed", "field", field, "error", err)
		respondMessage(w, http.StatusInternalServerError, msgServerError)
	}
}

// Track is the public self-service lookup. It returns the restricted
// projection only; file paths never leave the admin surface.
func Track(st *store.Store, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.TrimSpace(r.URL.Query().Get("code"))
		if code == "" {
			respondMessage(w, http.StatusBadRequest, "Code requis.")
			return
		}
		row, err := st.GetApplicationByTrackingCode(r.Context(), code)
		if errors.Is(err, store.ErrNotFound) {
			respondMessage(w, http.StatusNotFound, "Candidature introuvable.")
			return
		}
		if err != nil {
			lg.Errorw("track lookup failed", "error", err)
			respondMessage(w, http.StatusInternalServerError, msgServerError)
			return
		}
		respondJSON(w, map[string]any{"data": row})
	}
}
