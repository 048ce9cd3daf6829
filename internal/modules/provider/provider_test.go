// README: Provider registration validation tests (no database required).
package provider

import (
	"context"
	"errors"
	"testing"

	"safari/internal/types"
)

func TestRegisterValidation(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	valid := RegisterCommand{
		UserID:        "user1",
		Kind:          KindDriver,
		Languages:     "en,si",
		LicenseNumber: "DL-1234",
		VehicleType:   "Land Cruiser",
	}

	cases := []struct {
		name   string
		mutate func(*RegisterCommand)
	}{
		{"missing user", func(c *RegisterCommand) { c.UserID = "" }},
		{"invalid kind", func(c *RegisterCommand) { c.Kind = "pilot" }},
		{"empty kind", func(c *RegisterCommand) { c.Kind = "" }},
		{"missing languages", func(c *RegisterCommand) { c.Languages = "" }},
		{"driver without license", func(c *RegisterCommand) { c.LicenseNumber = "" }},
		{"driver without vehicle", func(c *RegisterCommand) { c.VehicleType = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := valid
			tc.mutate(&cmd)
			if _, err := svc.Register(ctx, cmd); err != ErrBadRequest {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

// Guides register without driver paperwork.
func TestRegisterGuideNoLicenseRequired(t *testing.T) {
	svc := NewService(nil, nil)
	cmd := RegisterCommand{UserID: "user2", Kind: KindGuide, Languages: "en"}
	// Validation passes; the nil store panic would only happen on Create,
	// so recover to assert we got past the checks.
	defer func() { _ = recover() }()
	_, err := svc.Register(context.Background(), cmd)
	if err == ErrBadRequest {
		t.Error("guide registration should not require license or vehicle")
	}
}

type stubCanceler struct {
	called bool
	err    error
}

func (s *stubCanceler) CancelAllForProvider(context.Context, types.ID) error {
	s.called = true
	return s.err
}

// Deletion closes the provider's open offers before touching the profile;
// a cancellation failure aborts the delete.
func TestDeleteCancelsOffersFirst(t *testing.T) {
	boom := errors.New("boom")
	canceler := &stubCanceler{err: boom}
	svc := NewService(nil, canceler)

	if err := svc.Delete(context.Background(), "p1"); err != boom {
		t.Fatalf("expected cancellation error to surface, got %v", err)
	}
	if !canceler.called {
		t.Fatal("expected open offers to be cancelled before profile deletion")
	}
}

func TestDeleteValidation(t *testing.T) {
	canceler := &stubCanceler{}
	svc := NewService(nil, canceler)

	if err := svc.Delete(context.Background(), ""); err != ErrBadRequest {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
	if canceler.called {
		t.Fatal("empty id should not reach the offer cleanup")
	}
}

func TestKindValid(t *testing.T) {
	if !KindDriver.Valid() || !KindGuide.Valid() {
		t.Error("driver and guide kinds should be valid")
	}
	if Kind("pilot").Valid() || Kind("").Valid() {
		t.Error("unknown kinds should be invalid")
	}
}
