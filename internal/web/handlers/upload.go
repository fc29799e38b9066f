package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/asionix/mailroom/internal/models"
)

// upload rejection errors
var (
	ErrResumeTooLarge = errors.New("resume exceeds the maximum allowed size")
	ErrResumeType     = errors.New("only PDF and Word documents are allowed")
)

// allowedResumeTypes is the resume MIME allow-set.
var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// decodeResume extracts the resume file from a multipart request.
// Returns nil without error when no file was uploaded; field validation
// reports that case. Type and size constraints are enforced here, before
// any field validation runs.
func decodeResume(r *http.Request, maxBytes int64) (*models.Attachment, error) {
	// some slack over the limit so form fields still fit alongside the file
	if err := r.ParseMultipartForm(maxBytes + 1<<20); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	if header.Size > maxBytes {
		return nil, ErrResumeTooLarge
	}

	declared := header.Header.Get("Content-Type")
	if !allowedResumeTypes[declared] {
		return nil, ErrResumeType
	}

	content, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(content)) > maxBytes {
		return nil, ErrResumeTooLarge
	}

	// the declared type is easy to spoof, so the content must agree
	if sniffed := mimetype.Detect(content); !allowedResumeTypes[sniffed.String()] {
		return nil, ErrResumeType
	}

	return &models.Attachment{
		Filename:    header.Filename,
		ContentType: declared,
		Content:     content,
		Size:        int64(len(content)),
	}, nil
}
