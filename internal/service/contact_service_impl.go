package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/portfolio/backend/internal/mailer"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/repository"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier mailer.Notifier
	validate *validator.Validate
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, notifier mailer.Notifier) ContactService {
	v := validator.New()
	// Stricter than the default email tag: requires a dotted domain, like the
	// form's original server-side check.
	_ = v.RegisterValidation("email", func(fl validator.FieldLevel) bool {
		return emailRegex.MatchString(fl.Field().String())
	})
	return &contactServiceImpl{repo: repo, notifier: notifier, validate: v}
}

// Submit runs the full workflow for one submission. Each step either advances
// or returns a tagged failure; later steps never run after an earlier one
// fails. In particular no record is created unless the notification was
// delivered.
func (s *contactServiceImpl) Submit(ctx context.Context, in SubmitInput) (*model.Contact, error) {
	if verr := s.validateInput(in); verr != nil {
		return nil, verr
	}

	// Fast-path duplicate check. The unique constraint on insert remains the
	// authoritative guard for concurrent submissions of the same email.
	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, ErrDuplicate
	case !errors.Is(err, repository.ErrNotFound):
		return nil, &StorageError{Cause: err}
	}

	if err := s.notifier.Notify(ctx, in.Name, in.Email, in.Message); err != nil {
		return nil, &DeliveryError{Cause: err}
	}

	contact := &model.Contact{
		Name:        in.Name,
		Email:       in.Email,
		Message:     in.Message,
		SubmittedOn: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Lost the race against a concurrent submission; same outcome as
			// the pre-check catching it.
			return nil, ErrDuplicate
		}
		return nil, &StorageError{Cause: err}
	}
	return contact, nil
}

// validateInput maps validator failures onto per-field user-facing messages.
func (s *contactServiceImpl) validateInput(in SubmitInput) *ValidationError {
	err := s.validate.Struct(in)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["form"] = "Invalid input."
		return &ValidationError{Fields: fields}
	}
	for _, fe := range verrs {
		switch fe.StructField() {
		case "Name":
			fields["name"] = "This field is required."
		case "Email":
			if fe.Tag() == "required" {
				fields["email"] = "This field is required."
			} else {
				fields["email"] = "Please enter email address in correct format."
			}
		case "Message":
			if fe.Tag() == "max" {
				fields["message"] = "Message is too long."
			} else {
				fields["message"] = "This field is required."
			}
		}
	}
	return &ValidationError{Fields: fields}
}
