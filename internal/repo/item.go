package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Jinash-Rouniyar/plan-it-ahead/internal/domain"
)

// foreignKeyViolation is the Postgres SQLSTATE raised when an insert references
// a parent row that does not exist.
const foreignKeyViolation = "23503"

// ItemRepo defines the persistence operations for the entries saved into an
// itinerary: normalized hotel/attraction items and raw flight records.
type ItemRepo interface {
	// SaveAll inserts every item and flight for the itinerary in a single
	// transaction and returns the persisted rows. Either everything is written
	// or nothing is. Returns domain.ErrNotFound if the itinerary does not exist.
	SaveAll(ctx context.Context, itineraryID int64, items []domain.ItineraryItem, flights []domain.SavedFlight) ([]domain.ItineraryItem, []domain.SavedFlight, error)

	// ListItems returns the itinerary's items in insertion order.
	ListItems(ctx context.Context, itineraryID int64) ([]domain.ItineraryItem, error)

	// ListFlights returns the itinerary's flights in insertion order.
	ListFlights(ctx context.Context, itineraryID int64) ([]domain.SavedFlight, error)
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db txDB
}

// NewItemRepo constructs an ItemRepo backed by the provided connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx, whose Begin
// opens a savepoint inside the test transaction.
func NewItemRepo(db txDB) ItemRepo {
	return &pgItemRepo{db: db}
}

// SaveAll writes items and flights atomically.
func (r *pgItemRepo) SaveAll(ctx context.Context, itineraryID int64, items []domain.ItineraryItem, flights []domain.SavedFlight) ([]domain.ItineraryItem, []domain.SavedFlight, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("repo.ItemRepo.SaveAll: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	const itemQ = `
		INSERT INTO itinerary_items (itinerary_id, name, price, kind)
		VALUES (@itinerary_id, @name, @price, @kind)
		RETURNING id, itinerary_id, name, price, kind, created_at`

	savedItems := make([]domain.ItineraryItem, 0, len(items))
	for _, it := range items {
		row := tx.QueryRow(ctx, itemQ, pgx.NamedArgs{
			"itinerary_id": itineraryID,
			"name":         it.Name,
			"price":        it.Price,
			"kind":         string(it.Kind),
		})
		saved, err := scanItem(row)
		if err != nil {
			return nil, nil, fmt.Errorf("repo.ItemRepo.SaveAll: item: %w", mapFKError(err))
		}
		savedItems = append(savedItems, saved)
	}

	const flightQ = `
		INSERT INTO itinerary_flights (itinerary_id, data, price)
		VALUES (@itinerary_id, @data, @price)
		RETURNING id, itinerary_id, data, price, created_at`

	savedFlights := make([]domain.SavedFlight, 0, len(flights))
	for _, f := range flights {
		row := tx.QueryRow(ctx, flightQ, pgx.NamedArgs{
			"itinerary_id": itineraryID,
			"data":         f.Data,
			"price":        f.Price,
		})
		saved, err := scanFlight(row)
		if err != nil {
			return nil, nil, fmt.Errorf("repo.ItemRepo.SaveAll: flight: %w", mapFKError(err))
		}
		savedFlights = append(savedFlights, saved)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("repo.ItemRepo.SaveAll: commit: %w", err)
	}
	return savedItems, savedFlights, nil
}

// ListItems returns all items of an itinerary ordered by creation time.
func (r *pgItemRepo) ListItems(ctx context.Context, itineraryID int64) ([]domain.ItineraryItem, error) {
	const q = `
		SELECT id, itinerary_id, name, price, kind, created_at
		FROM itinerary_items
		WHERE itinerary_id = @itinerary_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListItems: %w", err)
	}
	defer rows.Close()

	var out []domain.ItineraryItem
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListItems: scan: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListItems: rows: %w", err)
	}
	return out, nil
}

// ListFlights returns all flights of an itinerary ordered by creation time.
func (r *pgItemRepo) ListFlights(ctx context.Context, itineraryID int64) ([]domain.SavedFlight, error) {
	const q = `
		SELECT id, itinerary_id, data, price, created_at
		FROM itinerary_flights
		WHERE itinerary_id = @itinerary_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"itinerary_id": itineraryID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListFlights: %w", err)
	}
	defer rows.Close()

	var out []domain.SavedFlight
	for rows.Next() {
		f, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListFlights: scan: %w", err)
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListFlights: rows: %w", err)
	}
	return out, nil
}

// mapFKError turns a foreign-key violation on itinerary_id into domain.ErrNotFound.
func mapFKError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return domain.ErrNotFound
	}
	return err
}

func scanItem(s scanner) (domain.ItineraryItem, error) {
	var (
		it   domain.ItineraryItem
		id   pgtype.UUID
		kind string
	)
	if err := s.Scan(&id, &it.ItineraryID, &it.Name, &it.Price, &kind, &it.CreatedAt); err != nil {
		return domain.ItineraryItem{}, err
	}
	it.ID = uuid.UUID(id.Bytes)
	it.Kind = domain.ItemKind(kind)
	return it, nil
}

func scanFlight(s scanner) (domain.SavedFlight, error) {
	var (
		f  domain.SavedFlight
		id pgtype.UUID
	)
	if err := s.Scan(&id, &f.ItineraryID, &f.Data, &f.Price, &f.CreatedAt); err != nil {
		return domain.SavedFlight{}, err
	}
	f.ID = uuid.UUID(id.Bytes)
	return f, nil
}
