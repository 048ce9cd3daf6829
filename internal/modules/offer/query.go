// README: Read-side projections over offers for dashboards. Reads are not
// transactional; a just-accepted tour may briefly still show as AVAILABLE.
package offer

import (
	"context"

	"safari/internal/modules/provider"
	"safari/internal/types"
)

func (s *Service) List(ctx context.Context, f Filter) ([]Offer, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrBadRequest
	}
	if f.Kind != "" && !f.Kind.Valid() {
		return nil, ErrBadRequest
	}
	return s.store.List(ctx, f)
}

// AvailableForProvider backs the provider dashboard's open-offers view.
func (s *Service) AvailableForProvider(ctx context.Context, providerID types.ID) ([]Offer, error) {
	if providerID == "" {
		return nil, ErrBadRequest
	}
	return s.store.List(ctx, Filter{ProviderID: providerID, Status: StatusAvailable})
}

// AcceptedForProvider returns accepted offers, newest acceptance first.
func (s *Service) AcceptedForProvider(ctx context.Context, providerID types.ID) ([]Offer, error) {
	if providerID == "" {
		return nil, ErrBadRequest
	}
	return s.store.List(ctx, Filter{ProviderID: providerID, Status: StatusAccepted})
}

// AcceptedForTour reports which provider of a kind won a tour, if any.
func (s *Service) AcceptedForTour(ctx context.Context, tourID types.ID, kind provider.Kind) (*Offer, error) {
	if tourID == "" || !kind.Valid() {
		return nil, ErrBadRequest
	}
	return s.store.FindByTourAndStatus(ctx, tourID, kind, StatusAccepted)
}
