// README: Canonical tour record; assignment columns are write-once.
package tour

import (
	"time"

	"safari/internal/types"
)

type Tour struct {
	ID                  types.ID
	TouristID           types.ID
	TouristName         string
	TouristContact      string
	Name                string
	Date                time.Time
	NumberOfPeople      int
	SpecialInstructions string

	// Set exactly once by a winning accept; cleared only by deleting the tour.
	AssignedDriverID *types.ID
	AssignedGuideID  *types.ID

	CreatedAt time.Time
}
