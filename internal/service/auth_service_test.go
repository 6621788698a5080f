package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/model"
)

func newTestAuthService(cfg *config.Config) (*AuthService, *memUserStore, *memTenantStore, *memSessionStore) {
	users := newMemUserStore()
	tenants := newMemTenantStore()
	sessions := &memSessionStore{}
	return NewAuthService(cfg, users, tenants, sessions), users, tenants, sessions
}

func seedUser(t *testing.T, svc *AuthService, users *memUserStore, tenantID, email, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := svc.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u := &model.User{
		TenantID:     tenantID,
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestTokenRoundTrip(t *testing.T) {
	svc, _, _, _ := newTestAuthService(testConfig())

	in := Identity{UserID: 42, TenantID: "tenant-a", Role: model.RoleSchoolAdmin}
	token, err := svc.IssueToken(in)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	out, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if out != in {
		t.Errorf("identity mismatch: got %+v, want %+v", out, in)
	}
}

func TestVerifyTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTExpiry = -time.Minute
	svc, _, _, _ := newTestAuthService(cfg)

	token, err := svc.IssueToken(Identity{UserID: 1, TenantID: "tenant-a", Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	svc, _, _, _ := newTestAuthService(testConfig())

	other := testConfig()
	other.JWTSecret = "different-secret"
	otherSvc, _, _, _ := newTestAuthService(other)

	token, err := otherSvc.IssueToken(Identity{UserID: 1, TenantID: "tenant-a", Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc, _, _, _ := newTestAuthService(testConfig())

	for _, tokenStr := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.VerifyToken(tokenStr); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("VerifyToken(%q): expected ErrInvalidToken, got %v", tokenStr, err)
		}
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, users, tenants, sessions := newTestAuthService(testConfig())
	if err := tenants.Create(context.Background(), &model.Tenant{TenantID: "tenant-a", Name: "Alpha", Slug: "alpha"}); err != nil {
		t.Fatalf("create tenant: %v", err)
	}
	seeded := seedUser(t, svc, users, "tenant-a", "admin@alpha.test", "password123", model.RoleSchoolAdmin)

	result, err := svc.Login(context.Background(), LoginInput{
		Email:      "Admin@Alpha.Test",
		Password:   "password123",
		TenantSlug: "alpha",
		IP:         "10.0.0.1",
		UserAgent:  "go-test",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if result.User.ID != seeded.ID {
		t.Errorf("user ID: got %d, want %d", result.User.ID, seeded.ID)
	}
	if result.User.PasswordHash != "" {
		t.Error("password hash leaked in login result")
	}

	identity, err := svc.VerifyToken(result.Token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if identity.TenantID != "tenant-a" || identity.Role != model.RoleSchoolAdmin {
		t.Errorf("token identity: got %+v", identity)
	}

	if len(sessions.sessions) != 1 {
		t.Fatalf("expected 1 audit session, got %d", len(sessions.sessions))
	}
	if sessions.sessions[0].IP != "10.0.0.1" {
		t.Errorf("session IP: got %q", sessions.sessions[0].IP)
	}
}

func TestLoginWrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	svc, users, _, _ := newTestAuthService(testConfig())
	seedUser(t, svc, users, "tenant-a", "user@alpha.test", "correct-password", model.RoleTeacher)

	_, errWrongPass := svc.Login(context.Background(), LoginInput{
		Email: "user@alpha.test", Password: "wrong", TenantID: "tenant-a",
	})
	_, errNoUser := svc.Login(context.Background(), LoginInput{
		Email: "ghost@alpha.test", Password: "whatever", TenantID: "tenant-a",
	})

	for name, err := range map[string]error{"wrong password": errWrongPass, "unknown email": errNoUser} {
		if apperr.StatusOf(err) != 401 {
			t.Errorf("%s: expected status 401, got %d", name, apperr.StatusOf(err))
		}
		if apperr.MessageOf(err) != "Invalid credentials" {
			t.Errorf("%s: expected %q, got %q", name, "Invalid credentials", apperr.MessageOf(err))
		}
	}
}

func TestLoginScopedToTenant(t *testing.T) {
	svc, users, _, _ := newTestAuthService(testConfig())
	seedUser(t, svc, users, "tenant-a", "user@shared.test", "password123", model.RoleTeacher)

	// Same email under a different tenant must not authenticate.
	_, err := svc.Login(context.Background(), LoginInput{
		Email: "user@shared.test", Password: "password123", TenantID: "tenant-b",
	})
	if apperr.MessageOf(err) != "Invalid credentials" {
		t.Errorf("cross-tenant login: expected %q, got %q", "Invalid credentials", apperr.MessageOf(err))
	}
}

func TestLoginMissingCredentials(t *testing.T) {
	svc, _, _, _ := newTestAuthService(testConfig())

	cases := []LoginInput{
		{Password: "x", TenantID: "tenant-a"},
		{Email: "a@b.test", TenantID: "tenant-a"},
		{Email: "a@b.test", Password: "x"},
	}
	for i, in := range cases {
		_, err := svc.Login(context.Background(), in)
		if apperr.StatusOf(err) != 400 || apperr.MessageOf(err) != "Missing credentials" {
			t.Errorf("case %d: expected 400 %q, got %d %q",
				i, "Missing credentials", apperr.StatusOf(err), apperr.MessageOf(err))
		}
	}
}

func TestLoginUnknownSlug(t *testing.T) {
	svc, _, _, _ := newTestAuthService(testConfig())

	_, err := svc.Login(context.Background(), LoginInput{
		Email: "a@b.test", Password: "x", TenantSlug: "no-such-school",
	})
	if apperr.StatusOf(err) != 404 || apperr.MessageOf(err) != "Tenant not found" {
		t.Errorf("expected 404 %q, got %d %q", "Tenant not found", apperr.StatusOf(err), apperr.MessageOf(err))
	}
}

func TestProfileStripsHash(t *testing.T) {
	svc, users, _, _ := newTestAuthService(testConfig())
	seeded := seedUser(t, svc, users, "tenant-a", "user@alpha.test", "password123", model.RoleStudent)

	user, err := svc.Profile(context.Background(), Identity{UserID: seeded.ID, TenantID: "tenant-a", Role: model.RoleStudent})
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.PasswordHash != "" {
		t.Error("password hash leaked in profile")
	}

	// Identity from another tenant must not reach the record.
	_, err = svc.Profile(context.Background(), Identity{UserID: seeded.ID, TenantID: "tenant-b", Role: model.RoleStudent})
	if apperr.StatusOf(err) != 404 {
		t.Errorf("cross-tenant profile: expected 404, got %d", apperr.StatusOf(err))
	}
}
