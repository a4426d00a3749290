package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/portfolio/backend/internal/model"
)

// ContactRepository defines the persistence interface for contact records.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	// FindByEmail returns the contact with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*model.Contact, error)

	// Create inserts a new contact and populates c.ID from the database.
	// Returns ErrDuplicateEmail if the email is already recorded.
	Create(ctx context.Context, c *model.Contact) error

	// EnsureSchema creates the contacts table if it does not exist.
	// Idempotent; run on every startup.
	EnsureSchema(ctx context.Context) error
}

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// FindByEmail looks up a contact by its unique email.
func (r *PgContactRepository) FindByEmail(ctx context.Context, email string) (*model.Contact, error) {
	var c model.Contact
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, message, date
		 FROM contacts
		 WHERE email = $1`,
		email,
	).Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.SubmittedOn)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a new contacts row and populates c.ID from the RETURNING
// clause. A unique violation on email is mapped to ErrDuplicateEmail so the
// workflow can treat a lost check-then-insert race as an ordinary duplicate.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, message, date)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		c.Name, c.Email, c.Message, c.SubmittedOn,
	).Scan(&c.ID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}

// EnsureSchema creates the contacts table and its unique email constraint.
// cmd/migrate owns schema evolution; this only bootstraps a fresh database.
func (r *PgContactRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS contacts (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		message TEXT NOT NULL,
		date DATE NOT NULL
	)`)
	return err
}
