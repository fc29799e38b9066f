package handlers

import "strings"

// Required form fields in fixed declaration order. Missing-field errors
// list fields in exactly this order, joined with ", ".
var (
	careerRequired  = []string{"name", "email", "mobile", "job_title", "experience", "current_ctc", "expected_ctc", "resume"}
	contactRequired = []string{"firstName", "lastName", "email", "message"}
)

// missingFields returns the required fields not supplied, in declaration order.
// A value counts as supplied when it is non-empty after trimming; whitespace-only
// input is treated as missing.
func missingFields(required []string, values map[string]string) []string {
	var missing []string
	for _, name := range required {
		if strings.TrimSpace(values[name]) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
