// README: Provider store: profiles in Postgres, live availability sets in Redis.
package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"safari/internal/types"
)

const availableKeyPrefix = "providers:available:%s"

func availableKey(k Kind) string {
	return fmt.Sprintf(availableKeyPrefix, string(k))
}

type Store struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewStore(db *pgxpool.Pool, redis *redis.Client) *Store {
	return &Store{db: db, redis: redis}
}

func (s *Store) Create(ctx context.Context, p *Provider) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO providers (
			id, user_id, kind, languages, experience_years,
			license_number, vehicle_type, description,
			is_available, rating, total_trips, created_date
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12
		)`,
		string(p.ID),
		string(p.UserID),
		string(p.Kind),
		p.Languages,
		p.ExperienceYears,
		p.LicenseNumber,
		p.VehicleType,
		p.Description,
		p.Available,
		p.Rating,
		p.TotalTrips,
		p.CreatedAt,
	)
	if err != nil {
		return err
	}
	if p.Available {
		return s.redis.SAdd(ctx, availableKey(p.Kind), string(p.ID)).Err()
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Provider, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, kind, languages, experience_years,
		       license_number, vehicle_type, description,
		       is_available, rating, total_trips, created_date
		FROM providers
		WHERE id = $1`, string(id),
	)

	var p Provider
	err := row.Scan(
		&p.ID, &p.UserID, &p.Kind, &p.Languages, &p.ExperienceYears,
		&p.LicenseNumber, &p.VehicleType, &p.Description,
		&p.Available, &p.Rating, &p.TotalTrips, &p.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) SetAvailability(ctx context.Context, id types.ID, available bool) error {
	var kind Kind
	err := s.db.QueryRow(ctx, `
		UPDATE providers
		SET is_available = $1
		WHERE id = $2
		RETURNING kind`,
		available, string(id),
	).Scan(&kind)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if available {
		return s.redis.SAdd(ctx, availableKey(kind), string(id)).Err()
	}
	return s.redis.SRem(ctx, availableKey(kind), string(id)).Err()
}

// AvailableIDs returns the live availability roster for a kind. Providers
// re-register their availability after a restart, like drivers going online.
func (s *Store) AvailableIDs(ctx context.Context, kind Kind) ([]types.ID, error) {
	members, err := s.redis.SMembers(ctx, availableKey(kind)).Result()
	if err != nil {
		return nil, err
	}
	ids := make([]types.ID, len(members))
	for i, m := range members {
		ids[i] = types.ID(m)
	}
	return ids, nil
}

// Delete removes the availability entry first, then the profile row.
func (s *Store) Delete(ctx context.Context, id types.ID) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.redis.SRem(ctx, availableKey(p.Kind), string(id)).Err(); err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `DELETE FROM providers WHERE id = $1`, string(id))
	return err
}
