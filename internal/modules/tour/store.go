// README: Tour store backed by PostgreSQL.
package tour

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"safari/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, t *Tour) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO tours (
			id, tourist_id, tourist_name, tourist_contact,
			tour_name, tour_date, number_of_people, special_instructions,
			assigned_driver_id, assigned_guide_id, created_date
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11
		)`,
		string(t.ID),
		string(t.TouristID),
		t.TouristName,
		t.TouristContact,
		t.Name,
		t.Date,
		t.NumberOfPeople,
		t.SpecialInstructions,
		toStringPtr(t.AssignedDriverID),
		toStringPtr(t.AssignedGuideID),
		t.CreatedAt,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Tour, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, tourist_id, tourist_name, tourist_contact,
		       tour_name, tour_date, number_of_people, special_instructions,
		       assigned_driver_id, assigned_guide_id, created_date
		FROM tours
		WHERE id = $1`, string(id),
	)

	var t Tour
	var driverID, guideID sql.NullString
	err := row.Scan(
		&t.ID, &t.TouristID, &t.TouristName, &t.TouristContact,
		&t.Name, &t.Date, &t.NumberOfPeople, &t.SpecialInstructions,
		&driverID, &guideID, &t.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.AssignedDriverID = toIDPtr(driverID)
	t.AssignedGuideID = toIDPtr(guideID)
	return &t, nil
}

func (s *Store) ListByTourist(ctx context.Context, touristID types.ID) ([]Tour, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, tourist_id, tourist_name, tourist_contact,
		       tour_name, tour_date, number_of_people, special_instructions,
		       assigned_driver_id, assigned_guide_id, created_date
		FROM tours
		WHERE tourist_id = $1
		ORDER BY created_date DESC`, string(touristID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tours []Tour
	for rows.Next() {
		var t Tour
		var driverID, guideID sql.NullString
		if err := rows.Scan(
			&t.ID, &t.TouristID, &t.TouristName, &t.TouristContact,
			&t.Name, &t.Date, &t.NumberOfPeople, &t.SpecialInstructions,
			&driverID, &guideID, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		t.AssignedDriverID = toIDPtr(driverID)
		t.AssignedGuideID = toIDPtr(guideID)
		tours = append(tours, t)
	}
	return tours, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM tours WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func toStringPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func toIDPtr(v sql.NullString) *types.ID {
	if !v.Valid {
		return nil
	}
	id := types.ID(v.String)
	return &id
}
