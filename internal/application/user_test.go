package application

import (
	"context"
	"errors"
	"testing"

	"teetime/internal/domain"
	"teetime/internal/infrastructure/memory"
)

func TestResolveUser(t *testing.T) {
	svc := NewUserService(memory.New())
	ctx := context.Background()

	u, created, err := svc.Resolve(ctx, " Alice ", " Alice@Example.COM ")
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Fatal("first resolve must report a new user")
	}
	if u.Name != "Alice" || u.Email != "alice@example.com" || u.ID == "" {
		t.Fatalf("user = %+v", u)
	}
	again, created, err := svc.Resolve(ctx, "Alice B.", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if created || again.Name != "Alice" {
		t.Fatalf("existing user reported as created = %v, name = %q", created, again.Name)
	}
	if again.ID != u.ID {
		t.Fatalf("resolve created a second user: %s != %s", again.ID, u.ID)
	}
	found, err := svc.FindByEmail(ctx, "ALICE@example.com")
	if err != nil || found.ID != u.ID {
		t.Fatalf("find = %+v, %v", found, err)
	}
	if _, err := svc.FindByEmail(ctx, "bob@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
	list, _ := svc.List(ctx)
	if len(list) != 1 {
		t.Fatalf("users = %d, want 1", len(list))
	}
}

func TestResolveUserValidation(t *testing.T) {
	svc := NewUserService(memory.New())
	for _, tt := range []struct{ name, email string }{
		{"", "a@example.com"},
		{"A", ""},
		{"A", "not-an-email"},
		{"A", "a@b@example.com"},
		{"A", "a@localhost"},
	} {
		if _, _, err := svc.Resolve(context.Background(), tt.name, tt.email); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("Resolve(%q, %q) err = %v, want ErrValidation", tt.name, tt.email, err)
		}
	}
}

func TestFindUsersByIDs(t *testing.T) {
	svc := NewUserService(memory.New())
	ctx := context.Background()
	a, _, err := svc.Resolve(ctx, "Ann", "ann@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Resolve(ctx, "Ben", "ben@example.com"); err != nil {
		t.Fatal(err)
	}

	got, err := svc.FindByIDs(ctx, []string{a.ID, a.ID, "missing"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[a.ID].Email != "ann@example.com" {
		t.Fatalf("users = %+v", got)
	}
	got, err = svc.FindByIDs(ctx, nil)
	if err != nil || len(got) != 0 {
		t.Fatalf("empty lookup = %+v, %v", got, err)
	}
}
