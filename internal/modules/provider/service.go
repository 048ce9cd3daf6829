// README: Provider service: registration, availability toggling, ordered deletion.
package provider

import (
	"context"
	"errors"
	"time"

	"safari/internal/types"
)

var (
	ErrNotFound   = errors.New("provider not found")
	ErrBadRequest = errors.New("bad request")
)

// OfferCanceler closes a provider's open offers when the provider is removed.
type OfferCanceler interface {
	CancelAllForProvider(ctx context.Context, providerID types.ID) error
}

type Service struct {
	store  *Store
	offers OfferCanceler
}

func NewService(store *Store, offers OfferCanceler) *Service {
	return &Service{store: store, offers: offers}
}

type RegisterCommand struct {
	UserID          types.ID
	Kind            Kind
	Languages       string
	ExperienceYears int
	LicenseNumber   string
	VehicleType     string
	Description     string
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (types.ID, error) {
	if cmd.UserID == "" || !cmd.Kind.Valid() || cmd.Languages == "" {
		return "", ErrBadRequest
	}
	if cmd.Kind == KindDriver && (cmd.LicenseNumber == "" || cmd.VehicleType == "") {
		return "", ErrBadRequest
	}
	p := &Provider{
		ID:              types.NewID(),
		UserID:          cmd.UserID,
		Kind:            cmd.Kind,
		Languages:       cmd.Languages,
		ExperienceYears: cmd.ExperienceYears,
		LicenseNumber:   cmd.LicenseNumber,
		VehicleType:     cmd.VehicleType,
		Description:     cmd.Description,
		Available:       true,
		CreatedAt:       time.Now(),
	}
	if err := s.store.Create(ctx, p); err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Provider, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) SetAvailability(ctx context.Context, id types.ID, available bool) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.SetAvailability(ctx, id, available)
}

func (s *Service) AvailableIDs(ctx context.Context, kind Kind) ([]types.ID, error) {
	if !kind.Valid() {
		return nil, ErrBadRequest
	}
	return s.store.AvailableIDs(ctx, kind)
}

// Delete runs the cleanup in order: open offers first, then the availability
// entry and profile row. A deleted provider's offer must not stay acceptable.
func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrBadRequest
	}
	if err := s.offers.CancelAllForProvider(ctx, id); err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
