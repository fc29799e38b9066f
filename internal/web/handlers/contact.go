package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/asionix/mailroom/internal/logger"
	"github.com/asionix/mailroom/internal/mailer"
	"github.com/asionix/mailroom/internal/models"
	"github.com/asionix/mailroom/internal/notify"
)

// ContactHandler accepts contact inquiry submissions and dispatches
// the notification email with the submitter as reply-to.
type ContactHandler struct {
	sender   mailer.Sender
	renderer *notify.Renderer
	log      *logger.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(sender mailer.Sender, renderer *notify.Renderer) *ContactHandler {
	return &ContactHandler{
		sender:   sender,
		renderer: renderer,
		log:      logger.Get(),
	}
}

// contactPayload is the inbound contact form shape, JSON or form-encoded.
type contactPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Service   string `json:"service"`
	Message   string `json:"message"`
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeContact(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	values := map[string]string{
		"firstName": payload.FirstName,
		"lastName":  payload.LastName,
		"email":     payload.Email,
		"message":   payload.Message,
	}

	if missing := missingFields(contactRequired, values); len(missing) > 0 {
		respondError(w, http.StatusBadRequest, "Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	sub := &models.ContactSubmission{
		FirstName: strings.TrimSpace(payload.FirstName),
		LastName:  strings.TrimSpace(payload.LastName),
		Email:     strings.TrimSpace(payload.Email),
		Message:   payload.Message,
		Phone:     strings.TrimSpace(payload.Phone),
		Service:   strings.TrimSpace(payload.Service),
	}

	msg, err := h.renderer.Contact(sub)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to send email: "+err.Error())
		return
	}

	h.log.Info().
		Str("name", sub.FullName()).
		Str("email", sub.Email).
		Msg("inquiry received")

	id, err := h.sender.Send(r.Context(), msg)
	if err != nil {
		h.log.Error().Err(err).Msg("inquiry email failed")
		respondError(w, http.StatusInternalServerError, "Failed to send email: "+err.Error())
		return
	}

	h.log.Info().Str("id", id).Msg("inquiry email sent")
	respondSuccess(w, "Message sent successfully.")
}

// decodeContact reads the payload as JSON or as a url-encoded form,
// depending on the request content type.
func decodeContact(r *http.Request) (*contactPayload, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		var p contactPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &contactPayload{
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Phone:     r.FormValue("phone"),
		Service:   r.FormValue("service"),
		Message:   r.FormValue("message"),
	}, nil
}
