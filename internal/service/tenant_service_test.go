package service

import (
	"context"
	"testing"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/model"
)

func newTestTenantService() (*TenantService, *memUserStore, *memTenantStore) {
	users := newMemUserStore()
	tenants := newMemTenantStore()
	auth, _, _, _ := newTestAuthService(testConfig())
	return NewTenantService(tenants, users, auth), users, tenants
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Green Valley School":      "green-valley-school",
		"  St. Mary's  Academy  ":  "st-mary-s-academy",
		"ALPHA":                    "alpha",
		"already-a-slug":           "already-a-slug",
		"---":                      "",
		"École 42":                 "cole-42",
		"many   spaces\tand\ttabs": "many-spaces-and-tabs",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRegisterCreatesTenantAndOwner(t *testing.T) {
	svc, users, tenants := newTestTenantService()

	resp, err := svc.Register(context.Background(), model.RegisterTenantRequest{
		Name:          "Green Valley School",
		OwnerName:     "Head Admin",
		OwnerEmail:    "Head@Green.Test",
		OwnerPassword: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if resp.Tenant.Slug != "green-valley-school" {
		t.Errorf("slug: got %q", resp.Tenant.Slug)
	}
	if resp.Tenant.TenantID == "" {
		t.Error("tenant ID not generated")
	}
	if resp.Owner.Role != model.RoleSchoolAdmin {
		t.Errorf("owner role: got %q, want %q", resp.Owner.Role, model.RoleSchoolAdmin)
	}
	if resp.Owner.Email != "head@green.test" {
		t.Errorf("owner email not lowercased: %q", resp.Owner.Email)
	}
	if resp.Owner.PasswordHash != "" {
		t.Error("password hash leaked in registration response")
	}
	if resp.Tenant.OwnerUserID != resp.Owner.ID {
		t.Errorf("owner not linked: tenant has %d, owner is %d", resp.Tenant.OwnerUserID, resp.Owner.ID)
	}

	// Owner must be persisted under the new tenant with a real hash.
	stored, err := users.GetByEmail(context.Background(), resp.Tenant.TenantID, "head@green.test")
	if err != nil {
		t.Fatalf("stored owner lookup: %v", err)
	}
	if stored.PasswordHash == "" || stored.PasswordHash == "password123" {
		t.Error("stored password is missing or unhashed")
	}

	if _, err := tenants.GetBySlug(context.Background(), "green-valley-school"); err != nil {
		t.Errorf("tenant not persisted: %v", err)
	}
}

func TestRegisterExplicitSlugWins(t *testing.T) {
	svc, _, _ := newTestTenantService()

	resp, err := svc.Register(context.Background(), model.RegisterTenantRequest{
		Name:          "Green Valley School",
		Slug:          "GVS Campus",
		OwnerName:     "Admin",
		OwnerEmail:    "a@gvs.test",
		OwnerPassword: "password123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if resp.Tenant.Slug != "gvs-campus" {
		t.Errorf("slug: got %q, want %q", resp.Tenant.Slug, "gvs-campus")
	}
}

func TestRegisterDuplicateSlug(t *testing.T) {
	svc, _, _ := newTestTenantService()

	first := model.RegisterTenantRequest{
		Name: "Alpha School", OwnerName: "A", OwnerEmail: "a@alpha.test", OwnerPassword: "password123",
	}
	if _, err := svc.Register(context.Background(), first); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), model.RegisterTenantRequest{
		Name: "Alpha  School", OwnerName: "B", OwnerEmail: "b@alpha.test", OwnerPassword: "password123",
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("expected conflict for duplicate slug, got %v", err)
	}
}

func TestRegisterDuplicateOwnerEmail(t *testing.T) {
	svc, _, _ := newTestTenantService()

	if _, err := svc.Register(context.Background(), model.RegisterTenantRequest{
		Name: "Alpha", OwnerName: "A", OwnerEmail: "owner@x.test", OwnerPassword: "password123",
	}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	// Registration checks emails globally: no tenant context exists yet.
	_, err := svc.Register(context.Background(), model.RegisterTenantRequest{
		Name: "Beta", OwnerName: "B", OwnerEmail: "Owner@X.Test", OwnerPassword: "password123",
	})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("expected conflict for duplicate email, got %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newTestTenantService()

	_, err := svc.Register(context.Background(), model.RegisterTenantRequest{Name: "Alpha"})
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected bad request, got %v", err)
	}
}

func TestRegisterUnsluggableName(t *testing.T) {
	svc, _, _ := newTestTenantService()

	_, err := svc.Register(context.Background(), model.RegisterTenantRequest{
		Name: "!!!", OwnerName: "A", OwnerEmail: "a@x.test", OwnerPassword: "password123",
	})
	if !apperr.IsKind(err, apperr.KindBadRequest) {
		t.Errorf("expected bad request for unsluggable name, got %v", err)
	}
}
