package handlers

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/asionix/mailroom/internal/models"
	"github.com/asionix/mailroom/internal/notify"
)

// stubSender records sent messages and returns scripted results.
type stubSender struct {
	id    string
	errs  []error // one per call; nil entry means success
	calls int
	sent  []*models.Message
}

func (s *stubSender) Send(_ context.Context, msg *models.Message) (string, error) {
	idx := s.calls
	s.calls++
	s.sent = append(s.sent, msg)
	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if s.id == "" {
		return "msg-1", nil
	}
	return s.id, nil
}

func testRenderer() *notify.Renderer {
	return notify.NewRenderer(
		"Asionix Careers <careers@example.com>",
		"Asionix Website <website@example.com>",
		"hr@example.com",
	)
}

// validCareerFields returns a complete set of required career form values.
func validCareerFields() map[string]string {
	return map[string]string{
		"name":         "Priya Sharma",
		"email":        "priya@example.com",
		"mobile":       "+91 9876543210",
		"job_title":    "Backend Engineer",
		"experience":   "4 years",
		"current_ctc":  "12 LPA",
		"expected_ctc": "18 LPA",
	}
}

// tinyPDF is a minimal payload that sniffs as application/pdf.
var tinyPDF = []byte("%PDF-1.4\n%")

// multipartBody builds a multipart form with the given fields and an
// optional resume file part carrying an explicit content type.
func multipartBody(t *testing.T, fields map[string]string, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}

	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, filename))
		h.Set("Content-Type", contentType)
		part, err := w.CreatePart(h)
		if err != nil {
			t.Fatalf("create file part: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}
