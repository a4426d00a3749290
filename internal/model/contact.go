package model

import "time"

// Contact is one accepted contact-form submission. A record exists only for
// submissions whose notification email was delivered; the unique email keeps
// repeat visitors from contacting twice.
type Contact struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	SubmittedOn time.Time `json:"submitted_on"`
}
