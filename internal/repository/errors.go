package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicateEmail is returned when an insert violates the unique constraint
// on contacts.email. The constraint, not the workflow's pre-check, is the
// authoritative duplicate guard under concurrent submissions.
var ErrDuplicateEmail = errors.New("email already exists")
