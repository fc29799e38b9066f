// Package notify renders form submissions into ready-to-send notification emails.
package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/asionix/mailroom/internal/models"
)

// Fallback text substituted for omitted optional fields at render time.
const (
	FallbackProvided  = "Not provided"
	FallbackSpecified = "Not specified"
)

// Renderer builds notification messages for a fixed inbox.
// Rendering is deterministic and does no I/O; all interpolated
// values are HTML-escaped by the template engine.
type Renderer struct {
	fromCareers string
	fromWebsite string
	to          string
}

// NewRenderer creates a renderer addressing the given inbox.
func NewRenderer(fromCareers, fromWebsite, inbox string) *Renderer {
	return &Renderer{
		fromCareers: fromCareers,
		fromWebsite: fromWebsite,
		to:          inbox,
	}
}

// Career renders a job application notification with the resume attached.
func (r *Renderer) Career(sub *models.CareerSubmission) (*models.Message, error) {
	skills := sub.Skills
	if skills == "" {
		skills = FallbackProvided
	}

	var body bytes.Buffer
	err := careerTmpl.Execute(&body, careerData{
		Name:           sub.Name,
		Email:          sub.Email,
		Mobile:         sub.Mobile,
		JobTitle:       sub.JobTitle,
		Skills:         skills,
		Experience:     sub.Experience,
		CurrentCTC:     sub.CurrentCTC,
		ExpectedCTC:    sub.ExpectedCTC,
		ResumeFilename: sub.Resume.Filename,
	})
	if err != nil {
		return nil, fmt.Errorf("render career notification: %w", err)
	}

	return &models.Message{
		From:        r.fromCareers,
		To:          []string{r.to},
		Subject:     fmt.Sprintf("New Job Application: %s — %s", sub.JobTitle, sub.Name),
		HTML:        body.String(),
		Attachments: []models.Attachment{sub.Resume},
	}, nil
}

// Contact renders a contact inquiry notification.
// The submitter's email becomes the reply-to address.
func (r *Renderer) Contact(sub *models.ContactSubmission) (*models.Message, error) {
	phone := sub.Phone
	if phone == "" {
		phone = FallbackProvided
	}
	service := sub.Service
	if service == "" {
		service = FallbackSpecified
	}

	var body bytes.Buffer
	err := contactTmpl.Execute(&body, contactData{
		FullName: sub.FullName(),
		Email:    sub.Email,
		Phone:    phone,
		Service:  service,
		Message:  sub.Message,
	})
	if err != nil {
		return nil, fmt.Errorf("render contact notification: %w", err)
	}

	return &models.Message{
		From:    r.fromWebsite,
		To:      []string{r.to},
		ReplyTo: sub.Email,
		Subject: fmt.Sprintf("New Inquiry from %s", sub.FullName()),
		HTML:    body.String(),
	}, nil
}

type careerData struct {
	Name           string
	Email          string
	Mobile         string
	JobTitle       string
	Skills         string
	Experience     string
	CurrentCTC     string
	ExpectedCTC    string
	ResumeFilename string
}

type contactData struct {
	FullName string
	Email    string
	Phone    string
	Service  string
	Message  string
}

var careerTmpl = template.Must(template.New("career").Parse(`
<div style="font-family:Arial,sans-serif;max-width:640px;margin:auto;border:1px solid #e0e0e0;border-radius:10px;overflow:hidden">
	<div style="background:linear-gradient(135deg,#0d2137,#1a3a5c);padding:24px;color:#fff">
		<h2 style="margin:0">New Job Application</h2>
		<p style="margin:6px 0 0;opacity:.85">{{.JobTitle}}</p>
	</div>
	<div style="padding:24px">
		<table style="width:100%;border-collapse:collapse;font-size:14px">
			<tr><td style="padding:8px 0;color:#666;width:160px">Name</td><td style="font-weight:600">{{.Name}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Email</td><td style="font-weight:600">{{.Email}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Mobile</td><td style="font-weight:600">{{.Mobile}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Job Title</td><td style="font-weight:600">{{.JobTitle}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Skills</td><td style="font-weight:600">{{.Skills}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Experience</td><td style="font-weight:600">{{.Experience}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Current CTC</td><td style="font-weight:600">{{.CurrentCTC}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Expected CTC</td><td style="font-weight:600">{{.ExpectedCTC}}</td></tr>
		</table>
		<p style="margin:24px 0 0;color:#666;font-size:13px">Resume filename: {{.ResumeFilename}}</p>
	</div>
</div>`))

var contactTmpl = template.Must(template.New("contact").Parse(`
<div style="font-family:Arial,sans-serif;max-width:640px;margin:auto;border:1px solid #e0e0e0;border-radius:10px;overflow:hidden">
	<div style="background:linear-gradient(135deg,#0d2137,#1a3a5c);padding:24px;color:#fff">
		<h2 style="margin:0">New Contact Inquiry</h2>
		<p style="margin:6px 0 0;opacity:.85">From Website Contact Form</p>
	</div>
	<div style="padding:24px">
		<table style="width:100%;border-collapse:collapse;font-size:14px">
			<tr><td style="padding:8px 0;color:#666;width:140px">Name</td><td style="font-weight:600">{{.FullName}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Email</td><td style="font-weight:600"><a href="mailto:{{.Email}}">{{.Email}}</a></td></tr>
			<tr><td style="padding:8px 0;color:#666">Phone</td><td style="font-weight:600">{{.Phone}}</td></tr>
			<tr><td style="padding:8px 0;color:#666">Service</td><td style="font-weight:600">{{.Service}}</td></tr>
		</table>
		<div style="margin-top:24px;padding:16px;background:#f9f9f9;border-radius:8px">
			<p style="margin:0 0 8px;color:#666;font-size:13px">Message:</p>
			<p style="margin:0;white-space:pre-wrap">{{.Message}}</p>
		</div>
	</div>
</div>`))
