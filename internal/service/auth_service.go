package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/classora/classora-backend/internal/apperr"
	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/model"
)

// ErrInvalidToken covers every verification failure. The reason (bad
// signature, malformed, expired) is never surfaced to callers.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated principal for one request. It is derived
// entirely from a verified token and discarded at response time.
type Identity struct {
	UserID   int
	TenantID string
	Role     model.Role
}

// Claims is the JWT payload: registered claims plus the identity fields.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int        `json:"user_id"`
	TenantID string     `json:"tenant_id"`
	Role     model.Role `json:"role"`
}

// CredentialStore is the tenant-scoped user lookup the login flow needs.
type CredentialStore interface {
	GetByEmail(ctx context.Context, tenantID, email string) (*model.User, error)
	GetByID(ctx context.Context, tenantID string, id int) (*model.User, error)
}

// TenantDirectory resolves tenant slugs for login.
type TenantDirectory interface {
	GetBySlug(ctx context.Context, slug string) (*model.Tenant, error)
}

// SessionRecorder appends login audit records.
type SessionRecorder interface {
	Append(ctx context.Context, session *model.AuthSession) error
}

// AuthService is the token codec plus the login use case.
type AuthService struct {
	cfg      *config.Config
	users    CredentialStore
	tenants  TenantDirectory
	sessions SessionRecorder
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, users CredentialStore, tenants TenantDirectory, sessions SessionRecorder) *AuthService {
	return &AuthService{cfg: cfg, users: users, tenants: tenants, sessions: sessions}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// IssueToken signs a JWT carrying the identity with the configured TTL.
func (s *AuthService) IssueToken(identity Identity) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(identity.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.JWTExpiry)),
		},
		UserID:   identity.UserID,
		TenantID: identity.TenantID,
		Role:     identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a JWT. Verification is all-or-nothing:
// any failure yields ErrInvalidToken with no partial identity.
func (s *AuthService) VerifyToken(tokenStr string) (Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	if claims.UserID == 0 || claims.TenantID == "" || !claims.Role.Valid() {
		return Identity{}, ErrInvalidToken
	}

	return Identity{
		UserID:   claims.UserID,
		TenantID: claims.TenantID,
		Role:     claims.Role,
	}, nil
}

// LoginInput carries the credentials plus the request metadata for auditing.
type LoginInput struct {
	Email      string
	Password   string
	TenantID   string
	TenantSlug string
	IP         string
	UserAgent  string
}

// LoginResult is the token and the sanitized user returned on success.
type LoginResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Login authenticates a user within a tenant. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	if in.Email == "" || in.Password == "" || (in.TenantID == "" && in.TenantSlug == "") {
		return nil, apperr.BadRequest("Missing credentials")
	}

	tenantID := in.TenantID
	if tenantID == "" {
		tenant, err := s.tenants.GetBySlug(ctx, strings.ToLower(in.TenantSlug))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, apperr.NotFound("Tenant not found")
			}
			return nil, err
		}
		tenantID = tenant.TenantID
	}

	user, err := s.users.GetByEmail(ctx, tenantID, strings.ToLower(in.Email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if err := s.CheckPassword(user.PasswordHash, in.Password); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := s.IssueToken(Identity{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Append(ctx, &model.AuthSession{
		TenantID:  user.TenantID,
		UserID:    user.ID,
		IP:        in.IP,
		UserAgent: in.UserAgent,
	}); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{Token: token, User: user}, nil
}

// Profile returns the authenticated user's record, tenant-scoped.
func (s *AuthService) Profile(ctx context.Context, identity Identity) (*model.User, error) {
	user, err := s.users.GetByID(ctx, identity.TenantID, identity.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
