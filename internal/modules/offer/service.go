// README: Assignment coordinator: fans tours out to available providers and runs the exclusive accept.
package offer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"safari/internal/modules/provider"
	"safari/internal/modules/tour"
	"safari/internal/types"
)

var (
	ErrNotFound       = errors.New("offer not found")
	ErrBadRequest     = errors.New("bad request")
	ErrDuplicateOffer = errors.New("offer already exists for provider and tour")
	ErrInvalidState   = errors.New("invalid offer state transition")
)

// ProviderDirectory supplies the eligible providers of a kind at fan-out time.
type ProviderDirectory interface {
	AvailableIDs(ctx context.Context, kind provider.Kind) ([]types.ID, error)
}

type Service struct {
	store     *Store
	providers ProviderDirectory
}

func NewService(store *Store, providers ProviderDirectory) *Service {
	return &Service{store: store, providers: providers}
}

// RequestTour creates one AVAILABLE offer per eligible provider, once per
// kind. The two fan-outs are independent runs of the same protocol: if the
// guide fan-out fails after the driver one committed, the driver offers stay
// in place and the error is surfaced as-is.
func (s *Service) RequestTour(ctx context.Context, t *tour.Tour) error {
	if t == nil || t.ID == "" {
		return ErrBadRequest
	}
	for _, kind := range provider.Kinds {
		if err := s.fanOut(ctx, t, kind); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) fanOut(ctx context.Context, t *tour.Tour, kind provider.Kind) error {
	ids, err := s.providers.AvailableIDs(ctx, kind)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	offers := make([]*Offer, 0, len(ids))
	for _, pid := range ids {
		offers = append(offers, &Offer{
			ID:                  types.NewID(),
			BookingRef:          newBookingRef(kind),
			ProviderID:          pid,
			Kind:                kind,
			TourID:              t.ID,
			TourName:            t.Name,
			TourDate:            t.Date,
			NumberOfPeople:      t.NumberOfPeople,
			SpecialInstructions: t.SpecialInstructions,
			TouristID:           t.TouristID,
			TouristName:         t.TouristName,
			TouristContact:      t.TouristContact,
			Status:              StatusAvailable,
			CreatedAt:           now,
		})
	}
	return s.store.CreateBatch(ctx, offers)
}

type AcceptCommand struct {
	ProviderID types.ID
	TourID     types.ID
}

// Accept returns true only when this call performed the winning transition.
// Losing the race to another provider is a normal outcome and comes back as
// (false, nil); an unknown (provider, tour) pair is ErrNotFound so callers
// can tell a stale dashboard from a bad request.
func (s *Service) Accept(ctx context.Context, cmd AcceptCommand) (bool, error) {
	if cmd.ProviderID == "" || cmd.TourID == "" {
		return false, ErrBadRequest
	}
	o, err := s.store.FindByProviderAndTour(ctx, cmd.ProviderID, cmd.TourID)
	if err != nil {
		return false, err
	}
	return s.store.Accept(ctx, cmd.ProviderID, cmd.TourID, o.Kind, time.Now())
}

type CompleteCommand struct {
	ProviderID types.ID
	TourID     types.ID
}

func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	if cmd.ProviderID == "" || cmd.TourID == "" {
		return ErrBadRequest
	}
	o, err := s.store.FindByProviderAndTour(ctx, cmd.ProviderID, cmd.TourID)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, StatusCompleted) {
		return ErrInvalidState
	}
	ok, err := s.store.Complete(ctx, cmd.ProviderID, cmd.TourID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidState
	}
	return nil
}

func (s *Service) DeleteAllForTour(ctx context.Context, tourID types.ID) error {
	if tourID == "" {
		return ErrBadRequest
	}
	return s.store.DeleteAllForTour(ctx, tourID)
}

// CancelAllForProvider closes a departing provider's open offers.
func (s *Service) CancelAllForProvider(ctx context.Context, providerID types.ID) error {
	if providerID == "" {
		return ErrBadRequest
	}
	return s.store.CancelAllForProvider(ctx, providerID)
}

func newBookingRef(kind provider.Kind) string {
	prefix := "DB"
	if kind == provider.KindGuide {
		prefix = "GB"
	}
	return prefix + "-" + uuid.NewString()
}
