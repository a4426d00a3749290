package handler

import (
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/portfolio/backend/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

// User-facing feedback, flashed across the POST-redirect-GET boundary.
const (
	flashSuccess   = "Email successfully sent!"
	flashDuplicate = "You've already contacted me, please wait for my reaction!"
	flashFailure   = "Something went wrong, try again later!"
)

// ContactHandler serves the contact form: GET renders it, POST runs the
// submission workflow and reports the outcome.
type ContactHandler struct {
	service service.ContactService
	secret  []byte
	tmpl    *template.Template
}

// NewContactHandler creates a ContactHandler. secret signs the flash cookie.
func NewContactHandler(svc service.ContactService, secret []byte) *ContactHandler {
	return &ContactHandler{
		service: svc,
		secret:  secret,
		tmpl:    template.Must(template.ParseFS(templateFS, "templates/index.html")),
	}
}

// formPage is the template data for the contact page.
type formPage struct {
	Flash  string
	Values map[string]string
	Errors map[string]string
}

// Show handles GET /. Any pending flash message is consumed and displayed.
func (h *ContactHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, formPage{Flash: h.popFlash(w, r)})
}

// Submit handles POST /. Validation failures re-render the form with
// field-level errors; every other outcome flashes a message and redirects
// back to GET / so a refresh cannot resubmit.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, http.StatusBadRequest, formPage{
			Errors: map[string]string{"form": "Invalid form submission."},
		})
		return
	}

	in := service.SubmitInput{
		Name:    strings.TrimSpace(r.PostFormValue("name")),
		Email:   strings.TrimSpace(r.PostFormValue("email")),
		Message: strings.TrimSpace(r.PostFormValue("message")),
	}

	_, err := h.service.Submit(r.Context(), in)
	if err == nil {
		h.setFlash(w, flashSuccess)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		h.render(w, http.StatusUnprocessableEntity, formPage{
			Values: map[string]string{
				"name":    in.Name,
				"email":   in.Email,
				"message": in.Message,
			},
			Errors: verr.Fields,
		})
	case errors.Is(err, service.ErrDuplicate):
		h.setFlash(w, flashDuplicate)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	default:
		// Delivery or storage failure. Full detail stays in the server log;
		// the visitor only sees the generic message.
		slog.ErrorContext(r.Context(), "contact submission failed",
			"error", err,
			"email", in.Email,
		)
		h.setFlash(w, flashFailure)
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

func (h *ContactHandler) render(w http.ResponseWriter, status int, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.Execute(w, page); err != nil {
		slog.Error("render contact form failed", "error", err)
	}
}
