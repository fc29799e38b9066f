// Package models defines the form submission and outbound mail types.
package models

// Attachment is a file submitted alongside a career application,
// held fully in memory for the lifetime of the request.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
	Size        int64
}

// CareerSubmission is a validated job application form payload.
type CareerSubmission struct {
	Name        string
	Email       string
	Mobile      string
	JobTitle    string
	Experience  string
	CurrentCTC  string
	ExpectedCTC string

	// Skills is optional; render substitutes "Not provided" when empty.
	Skills string

	Resume Attachment
}

// ContactSubmission is a validated contact inquiry form payload.
type ContactSubmission struct {
	FirstName string
	LastName  string
	Email     string
	Message   string

	// Phone and Service are optional; render substitutes fallback text.
	Phone   string
	Service string
}

// FullName returns the submitter's display name.
func (c *ContactSubmission) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Message is a fully rendered email, ready to hand to a delivery channel.
// It is built once per request and consumed exactly once.
type Message struct {
	From        string
	To          []string
	ReplyTo     string // optional
	Subject     string
	HTML        string
	Attachments []Attachment
}
