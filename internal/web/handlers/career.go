// Package handlers implements the form submission HTTP handlers.
package handlers

import (
	"net/http"
	"strings"

	"github.com/asionix/mailroom/internal/logger"
	"github.com/asionix/mailroom/internal/mailer"
	"github.com/asionix/mailroom/internal/models"
	"github.com/asionix/mailroom/internal/notify"
)

// CareerHandler accepts job application submissions and dispatches
// the notification email with the resume attached.
type CareerHandler struct {
	sender    mailer.Sender
	renderer  *notify.Renderer
	maxUpload int64
	log       *logger.Logger
}

// NewCareerHandler creates a new CareerHandler.
func NewCareerHandler(sender mailer.Sender, renderer *notify.Renderer, maxUpload int64) *CareerHandler {
	return &CareerHandler{
		sender:    sender,
		renderer:  renderer,
		maxUpload: maxUpload,
		log:       logger.Get(),
	}
}

// Submit handles POST /api/career (multipart form, file field "resume").
func (h *CareerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// bound body buffering before anything touches the form
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+1<<20)

	// upload constraints are enforced before field validation
	resume, err := decodeResume(r, h.maxUpload)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	values := map[string]string{
		"name":         r.FormValue("name"),
		"email":        r.FormValue("email"),
		"mobile":       r.FormValue("mobile"),
		"job_title":    r.FormValue("job_title"),
		"experience":   r.FormValue("experience"),
		"current_ctc":  r.FormValue("current_ctc"),
		"expected_ctc": r.FormValue("expected_ctc"),
	}
	if resume != nil {
		values["resume"] = resume.Filename
	}

	if missing := missingFields(careerRequired, values); len(missing) > 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	sub := &models.CareerSubmission{
		Name:        strings.TrimSpace(values["name"]),
		Email:       strings.TrimSpace(values["email"]),
		Mobile:      strings.TrimSpace(values["mobile"]),
		JobTitle:    strings.TrimSpace(values["job_title"]),
		Experience:  strings.TrimSpace(values["experience"]),
		CurrentCTC:  strings.TrimSpace(values["current_ctc"]),
		ExpectedCTC: strings.TrimSpace(values["expected_ctc"]),
		Skills:      strings.TrimSpace(r.FormValue("skills")),
		Resume:      *resume,
	}

	msg, err := h.renderer.Career(sub)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to send email: "+err.Error())
		return
	}

	h.log.Info().
		Str("name", sub.Name).
		Str("to", msg.To[0]).
		Msg("sending application")

	id, err := h.sender.Send(r.Context(), msg)
	if err != nil {
		h.log.Error().Err(err).Msg("application email failed")
		respondError(w, http.StatusInternalServerError, "Failed to send email: "+err.Error())
		return
	}

	h.log.Info().Str("id", id).Msg("application email sent")
	respondSuccess(w, "Application submitted successfully.")
}
