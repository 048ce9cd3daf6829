// README: Tour service: booking creation, lookup, and ordered cascade deletion.
package tour

import (
	"context"
	"errors"
	"time"

	"safari/internal/types"
)

var (
	ErrNotFound   = errors.New("tour not found")
	ErrBadRequest = errors.New("bad request")
)

// OfferPurger removes every offer referencing a tour, across both kinds.
type OfferPurger interface {
	DeleteAllForTour(ctx context.Context, tourID types.ID) error
}

type Service struct {
	store  *Store
	offers OfferPurger
}

func NewService(store *Store, offers OfferPurger) *Service {
	return &Service{store: store, offers: offers}
}

type CreateCommand struct {
	TouristID           types.ID
	TouristName         string
	TouristContact      string
	Name                string
	Date                time.Time
	NumberOfPeople      int
	SpecialInstructions string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Tour, error) {
	if cmd.TouristID == "" || cmd.TouristName == "" || cmd.TouristContact == "" {
		return nil, ErrBadRequest
	}
	if cmd.Name == "" || cmd.Date.IsZero() || cmd.NumberOfPeople <= 0 {
		return nil, ErrBadRequest
	}
	t := &Tour{
		ID:                  types.NewID(),
		TouristID:           cmd.TouristID,
		TouristName:         cmd.TouristName,
		TouristContact:      cmd.TouristContact,
		Name:                cmd.Name,
		Date:                cmd.Date,
		NumberOfPeople:      cmd.NumberOfPeople,
		SpecialInstructions: cmd.SpecialInstructions,
		CreatedAt:           time.Now(),
	}
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Tour, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByTourist(ctx context.Context, touristID types.ID) ([]Tour, error) {
	if touristID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByTourist(ctx, touristID)
}

// Delete runs the cascade in order: offers for both kinds first, then the
// tour row itself.
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if _, err := s.store.Get(ctx, id); err != nil {
		return err
	}
	if err := s.offers.DeleteAllForTour(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
