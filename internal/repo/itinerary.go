// Package repo contains all database access logic for the plan-it-ahead API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txDB is a db that can also open a transaction. On a pgx.Tx, Begin opens a
// savepoint, so repos built on a test transaction still roll back cleanly.
type txDB interface {
	db
	Begin(ctx context.Context) (pgx.Tx, error)
}

// ItineraryRepo defines the persistence operations for Itineraries.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type ItineraryRepo interface {
	// Create inserts a new itinerary and returns the persisted record (with the
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// GetByID retrieves a single itinerary by its primary key.
	// Returns domain.ErrNotFound if no itinerary with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Itinerary, error)

	// ListPaged returns one page of itineraries, newest first, and the total count.
	ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error)

	// Update overwrites the mutable fields of an existing itinerary and returns
	// the updated record. Returns domain.ErrNotFound if it does not exist.
	Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error)

	// Delete removes an itinerary and, by cascade, its items and flights.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgItineraryRepo is the Postgres implementation of ItineraryRepo.
type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const itineraryColumns = `id, title, origin, destination, departure_date, return_date, created_at, updated_at`

// Create inserts a new itinerary row and returns the full persisted record.
func (r *pgItineraryRepo) Create(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		INSERT INTO itineraries (title, origin, destination, departure_date, return_date)
		VALUES (@title, @origin, @destination, @departure_date, @return_date)
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"title":          it.Title,
		"origin":         it.Origin,
		"destination":    it.Destination,
		"departure_date": it.DepartureDate, // nil becomes NULL
		"return_date":    it.ReturnDate,
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves an itinerary by primary key.
func (r *pgItineraryRepo) GetByID(ctx context.Context, id int64) (domain.Itinerary, error) {
	const q = `SELECT ` + itineraryColumns + ` FROM itineraries WHERE id = @id`

	result, err := scanItinerary(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of itineraries ordered by creation time
// descending (most recent first) together with the unpaged total.
func (r *pgItineraryRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Itinerary, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT count(*) FROM itineraries`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: count: %w", err)
	}

	const q = `
		SELECT ` + itineraryColumns + `
		FROM itineraries
		ORDER BY created_at DESC, id DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var out []domain.Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.ItineraryRepo.ListPaged: rows: %w", err)
	}

	return out, total, nil
}

// Update overwrites the mutable fields of an itinerary and returns the updated record.
func (r *pgItineraryRepo) Update(ctx context.Context, it domain.Itinerary) (domain.Itinerary, error) {
	const q = `
		UPDATE itineraries
		SET title          = @title,
		    origin         = @origin,
		    destination    = @destination,
		    departure_date = @departure_date,
		    return_date    = @return_date,
		    updated_at     = now()
		WHERE id = @id
		RETURNING ` + itineraryColumns

	args := pgx.NamedArgs{
		"id":             it.ID,
		"title":          it.Title,
		"origin":         it.Origin,
		"destination":    it.Destination,
		"departure_date": it.DepartureDate,
		"return_date":    it.ReturnDate,
	}

	result, err := scanItinerary(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("repo.ItineraryRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes an itinerary by primary key.
func (r *pgItineraryRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM itineraries WHERE id = @id`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan
// helpers to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanItinerary maps a single database row into a domain.Itinerary.
// It handles the nullable departure_date and return_date conversions.
func scanItinerary(s scanner) (domain.Itinerary, error) {
	var (
		it        domain.Itinerary
		departure pgtype.Date
		ret       pgtype.Date
	)

	err := s.Scan(&it.ID, &it.Title, &it.Origin, &it.Destination, &departure, &ret, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Itinerary{}, domain.ErrNotFound
		}
		return domain.Itinerary{}, err
	}

	if departure.Valid {
		d := departure.Time
		it.DepartureDate = &d
	}
	if ret.Valid {
		d := ret.Time
		it.ReturnDate = &d
	}
	return it, nil
}
