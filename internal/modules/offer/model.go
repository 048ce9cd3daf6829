// README: Offer rows fan a tour out to candidate providers; status definitions and transition table.
package offer

import (
	"time"

	"safari/internal/modules/provider"
	"safari/internal/types"
)

type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusAccepted  Status = "ACCEPTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusAccepted, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// AllowedTransitions represents the offer lifecycle as code. CANCELLED and
// COMPLETED are terminal.
var AllowedTransitions = map[Status][]Status{
	StatusAvailable: {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusCompleted},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}

// Offer is one provider's view of a requested tour. The tour fields are a
// snapshot frozen at fan-out time: dashboards read offers without joining
// tours, and edits to the tour afterwards do not propagate here.
type Offer struct {
	ID         types.ID
	BookingRef string
	ProviderID types.ID
	Kind       provider.Kind
	TourID     types.ID

	TourName            string
	TourDate            time.Time
	NumberOfPeople      int
	SpecialInstructions string
	TouristID           types.ID
	TouristName         string
	TouristContact      string

	Status     Status
	AcceptedAt *time.Time
	CreatedAt  time.Time
}
