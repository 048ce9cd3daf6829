// README: Driver and guide provider profiles.
package provider

import (
	"time"

	"safari/internal/types"
)

type Kind string

const (
	KindDriver Kind = "driver"
	KindGuide  Kind = "guide"
)

func (k Kind) Valid() bool {
	return k == KindDriver || k == KindGuide
}

// Kinds lists both provider kinds in fan-out order.
var Kinds = []Kind{KindDriver, KindGuide}

type Provider struct {
	ID              types.ID
	UserID          types.ID
	Kind            Kind
	Languages       string
	ExperienceYears int
	Description     string

	// Driver-only fields; empty for guides.
	LicenseNumber string
	VehicleType   string

	Available  bool
	Rating     float64
	TotalTrips int
	CreatedAt  time.Time
}
