package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/portfolio/backend/internal/model"
)

// SubmitInput carries the raw contact-form fields for one submission.
type SubmitInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required,max=5000"`
}

// ContactService runs the submission workflow: validate, duplicate-check,
// notify the site owner, then persist.
type ContactService interface {
	// Submit processes one contact-form submission. On success the created
	// record is returned. Failure modes, in the order the workflow checks
	// them: *ValidationError, ErrDuplicate, *DeliveryError, *StorageError.
	Submit(ctx context.Context, in SubmitInput) (*model.Contact, error)
}

// ErrDuplicate is returned when the submitted email has already contacted us,
// whether caught by the pre-check or by the unique constraint on insert.
var ErrDuplicate = errors.New("already contacted")

// ValidationError reports per-field input problems. Fields maps the lowercase
// form field name to a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// DeliveryError wraps a mail relay failure. The cause is logged server-side
// only; users get a generic message.
type DeliveryError struct {
	Cause error
}

func (e *DeliveryError) Error() string { return "notification delivery failed: " + e.Cause.Error() }
func (e *DeliveryError) Unwrap() error { return e.Cause }

// StorageError wraps a persistence failure (unreachable database or a failed
// write). Same user-facing treatment as DeliveryError.
type StorageError struct {
	Cause error
}

func (e *StorageError) Error() string { return "contact storage failed: " + e.Cause.Error() }
func (e *StorageError) Unwrap() error { return e.Cause }
