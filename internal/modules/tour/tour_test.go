// README: Tour creation validation tests (no database required).
package tour

import (
	"context"
	"testing"
	"time"

	"safari/internal/types"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	valid := CreateCommand{
		TouristID:      "tourist1",
		TouristName:    "Jane Perera",
		TouristContact: "+94 71 234 5678",
		Name:           "Yala Full Day",
		Date:           time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC),
		NumberOfPeople: 4,
	}

	cases := []struct {
		name   string
		mutate func(*CreateCommand)
	}{
		{"missing tourist id", func(c *CreateCommand) { c.TouristID = "" }},
		{"missing tourist name", func(c *CreateCommand) { c.TouristName = "" }},
		{"missing contact", func(c *CreateCommand) { c.TouristContact = "" }},
		{"missing tour name", func(c *CreateCommand) { c.Name = "" }},
		{"zero date", func(c *CreateCommand) { c.Date = time.Time{} }},
		{"zero people", func(c *CreateCommand) { c.NumberOfPeople = 0 }},
		{"negative people", func(c *CreateCommand) { c.NumberOfPeople = -2 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := valid
			tc.mutate(&cmd)
			if _, err := svc.Create(ctx, cmd); err != ErrBadRequest {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestListByTouristValidation(t *testing.T) {
	svc := NewService(nil, nil)
	if _, err := svc.ListByTourist(context.Background(), types.ID("")); err != ErrBadRequest {
		t.Errorf("expected ErrBadRequest, got %v", err)
	}
}
