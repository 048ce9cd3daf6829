// README: Offer store backed by PostgreSQL; accept runs as one transaction.
package offer

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"safari/internal/modules/provider"
	"safari/internal/types"
)

const uniqueViolation = "23505"

const selectOffers = `
	SELECT id, booking_ref, provider_id, kind, tour_id,
	       tour_name, tour_date, number_of_people, special_instructions,
	       tourist_id, tourist_name, tourist_contact,
	       status, accepted_date, created_date
	FROM offers`

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// CreateBatch inserts one AVAILABLE offer per provider, all or nothing.
// A (provider, tour) pair that already has an offer aborts the batch with
// ErrDuplicateOffer.
func (s *Store) CreateBatch(ctx context.Context, offers []*Offer) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, o := range offers {
		_, err := tx.Exec(ctx, `
			INSERT INTO offers (
				id, booking_ref, provider_id, kind, tour_id,
				tour_name, tour_date, number_of_people, special_instructions,
				tourist_id, tourist_name, tourist_contact,
				status, accepted_date, created_date
			) VALUES (
				$1, $2, $3, $4, $5,
				$6, $7, $8, $9,
				$10, $11, $12,
				$13, $14, $15
			)`,
			string(o.ID),
			o.BookingRef,
			string(o.ProviderID),
			string(o.Kind),
			string(o.TourID),
			o.TourName,
			o.TourDate,
			o.NumberOfPeople,
			o.SpecialInstructions,
			string(o.TouristID),
			o.TouristName,
			o.TouristContact,
			string(o.Status),
			o.AcceptedAt,
			o.CreatedAt,
		)
		if isUniqueViolation(err) {
			return ErrDuplicateOffer
		}
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (s *Store) FindByProviderAndTour(ctx context.Context, providerID, tourID types.ID) (*Offer, error) {
	row := s.db.QueryRow(ctx,
		selectOffers+` WHERE provider_id = $1 AND tour_id = $2`,
		string(providerID), string(tourID),
	)
	return scanOffer(row)
}

// FindByTourAndStatus returns the first offer for a tour and kind in the
// given status; used to probe "already decided" and "none left available".
func (s *Store) FindByTourAndStatus(ctx context.Context, tourID types.ID, kind provider.Kind, status Status) (*Offer, error) {
	row := s.db.QueryRow(ctx,
		selectOffers+` WHERE tour_id = $1 AND kind = $2 AND status = $3 LIMIT 1`,
		string(tourID), string(kind), string(status),
	)
	return scanOffer(row)
}

// Filter narrows List; zero-valued fields are ignored.
type Filter struct {
	ProviderID types.ID
	TourID     types.ID
	Kind       provider.Kind
	Status     Status
	TouristID  types.ID
	TourName   string
	Date       *time.Time
}

func (s *Store) List(ctx context.Context, f Filter) ([]Offer, error) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.ProviderID != "" {
		add("provider_id = $%d", string(f.ProviderID))
	}
	if f.TourID != "" {
		add("tour_id = $%d", string(f.TourID))
	}
	if f.Kind != "" {
		add("kind = $%d", string(f.Kind))
	}
	if f.Status != "" {
		add("status = $%d", string(f.Status))
	}
	if f.TouristID != "" {
		add("tourist_id = $%d", string(f.TouristID))
	}
	if f.TourName != "" {
		add("tour_name = $%d", f.TourName)
	}
	if f.Date != nil {
		add("tour_date = $%d::date", *f.Date)
	}

	query := selectOffers
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if f.Status == StatusAccepted {
		query += " ORDER BY accepted_date DESC"
	} else {
		query += " ORDER BY created_date DESC"
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []Offer
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *o)
	}
	return offers, rows.Err()
}

// Accept performs the exclusive acceptance transition in one transaction:
// CAS the winning offer AVAILABLE -> ACCEPTED, bind the tour's assignment
// column, soft-cancel the remaining AVAILABLE siblings. Returns true only
// when this call committed the winning transition; a lost race is (false, nil).
//
// Accepts for the same (tour, kind) serialize on a transaction-scoped
// advisory lock. Without it, a loser whose snapshot predates the winner's
// commit can mark its own row ACCEPTED and block on the partial unique
// index while the winner's sibling-cancel update waits on the loser's row
// lock: a deadlock, and whichever transaction Postgres aborts turns a
// plain lost race into an error. With the lock, losers run after the
// winner commits, fail the NOT EXISTS guard, and return (false, nil). The
// partial unique index on (tour_id, kind) WHERE status = 'ACCEPTED' stays
// as the database-level backstop.
func (s *Store) Accept(ctx context.Context, providerID, tourID types.ID, kind provider.Kind, now time.Time) (bool, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtext($1))`,
		string(tourID)+":"+string(kind),
	); err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE offers
		SET status = $1, accepted_date = $2
		WHERE provider_id = $3 AND tour_id = $4 AND kind = $5 AND status = $6
		  AND NOT EXISTS (
			SELECT 1 FROM offers
			WHERE tour_id = $4 AND kind = $5 AND status = $1
		  )`,
		string(StatusAccepted), now,
		string(providerID), string(tourID), string(kind), string(StatusAvailable),
	)
	if isUniqueViolation(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() != 1 {
		return false, nil
	}

	// Bind the tour. Zero rows here means the tour was deleted mid-accept
	// (last writer wins; the cascade removes this offer too) — not a failure.
	col := "assigned_driver_id"
	if kind == provider.KindGuide {
		col = "assigned_guide_id"
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(
		`UPDATE tours SET %s = $1 WHERE id = $2 AND %s IS NULL`, col, col),
		string(providerID), string(tourID),
	)
	if err != nil {
		return false, err
	}

	if err := cancelSiblings(ctx, tx, tourID, kind, providerID); err != nil {
		return false, err
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// CancelSiblings soft-cancels every AVAILABLE offer for the tour and kind
// other than the winner's.
func (s *Store) CancelSiblings(ctx context.Context, tourID types.ID, kind provider.Kind, exceptProviderID types.ID) error {
	return cancelSiblings(ctx, s.db, tourID, kind, exceptProviderID)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func cancelSiblings(ctx context.Context, db execer, tourID types.ID, kind provider.Kind, exceptProviderID types.ID) error {
	_, err := db.Exec(ctx, `
		UPDATE offers
		SET status = $1
		WHERE tour_id = $2 AND kind = $3 AND status = $4 AND provider_id <> $5`,
		string(StatusCancelled),
		string(tourID), string(kind), string(StatusAvailable), string(exceptProviderID),
	)
	return err
}

// Complete moves an accepted offer to COMPLETED; false when the offer is not
// currently ACCEPTED by that provider.
func (s *Store) Complete(ctx context.Context, providerID, tourID types.ID) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE offers
		SET status = $1
		WHERE provider_id = $2 AND tour_id = $3 AND status = $4`,
		string(StatusCompleted), string(providerID), string(tourID), string(StatusAccepted),
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// CancelAllForProvider soft-cancels every AVAILABLE offer held by a provider.
// Run before the provider's profile is removed, so a stale offer cannot win
// a tour for a provider that no longer exists.
func (s *Store) CancelAllForProvider(ctx context.Context, providerID types.ID) error {
	_, err := s.db.Exec(ctx, `
		UPDATE offers
		SET status = $1
		WHERE provider_id = $2 AND status = $3`,
		string(StatusCancelled), string(providerID), string(StatusAvailable),
	)
	return err
}

func (s *Store) DeleteAllForTour(ctx context.Context, tourID types.ID) error {
	_, err := s.db.Exec(ctx, `DELETE FROM offers WHERE tour_id = $1`, string(tourID))
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(row rowScanner) (*Offer, error) {
	var o Offer
	var acceptedAt sql.NullTime
	err := row.Scan(
		&o.ID, &o.BookingRef, &o.ProviderID, &o.Kind, &o.TourID,
		&o.TourName, &o.TourDate, &o.NumberOfPeople, &o.SpecialInstructions,
		&o.TouristID, &o.TouristName, &o.TouristContact,
		&o.Status, &acceptedAt, &o.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if acceptedAt.Valid {
		t := acceptedAt.Time
		o.AcceptedAt = &t
	}
	return &o, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
