package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/internal/store"
	pasetotoken "github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/paseto"
	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/pkg/util/password"
)

const (
	maxLoginAttempts = 5
	accountLockMins  = 15
)

// redisKeySession returns the Redis key for a session.
func redisKeySession(sessionID string) string { return "session:" + sessionID }

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type LoginRequest struct {
	Name     string
	Password string
}

type AuthTokens struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64 // seconds until access token expires
}

// DoctorInfo is the public projection of a directory entry, safe for the
// login picker.
type DoctorInfo struct {
	Name       string `json:"name"`
	Department string `json:"department"`
}

// ---------------------------------------------------------------------------
// Service interface
// ---------------------------------------------------------------------------

type Service interface {
	Login(ctx context.Context, req LoginRequest) (*AuthTokens, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	ListDoctors(ctx context.Context) ([]DoctorInfo, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type authService struct {
	db     *store.Store
	rdb    *redis.Client
	paseto *pasetotoken.Manager
	cfg    *config.Config
	log    *slog.Logger
}

func New(
	db *store.Store,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
	log *slog.Logger,
) Service {
	return &authService{
		db:     db,
		rdb:    rdb,
		paseto: paseto,
		cfg:    cfg,
		log:    log,
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func (s *authService) Login(ctx context.Context, req LoginRequest) (*AuthTokens, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	d, err := s.db.DoctorByName(ctx, req.Name)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	// Check lockout
	if d.LockedUntil != nil && time.Now().Before(*d.LockedUntil) {
		return nil, ErrAccountLocked
	}

	if err := password.Verify(d.PasswordHash, req.Password); err != nil {
		s.recordFailedLogin(ctx, d)
		return nil, ErrInvalidCredentials
	}

	// Reset failure counters
	now := time.Now()
	if err := s.db.UpdateDoctor(ctx, d.Name, map[string]any{
		"failed_login_attempts": 0,
		"locked_until":          nil,
		"last_login_at":         now,
	}); err != nil {
		s.log.Warn("failed to reset login counters", "doctor", d.Name, "error", err)
	}

	return s.createSession(ctx, d)
}

// ---------------------------------------------------------------------------
// RefreshTokens
// ---------------------------------------------------------------------------

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*AuthTokens, error) {
	claims, err := s.paseto.Verify(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.Type != pasetotoken.TokenTypeRefresh {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == nil {
		return nil, ErrInvalidToken
	}

	sessionKey := redisKeySession(claims.SessionID.String())

	if err := s.rdb.Get(ctx, sessionKey).Err(); err == redis.Nil {
		return nil, ErrSessionNotFound
	} else if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}

	// Extend session TTL
	s.rdb.Expire(ctx, sessionKey, s.refreshTTL())

	// Issue a new access token only; the refresh token stays valid until logout.
	accessToken, err := s.paseto.IssueAccess(claims.DoctorID, claims.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	deleted, err := s.rdb.Del(ctx, redisKeySession(sessionID.String())).Result()
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if deleted == 0 {
		// Session already expired; not an error from the client's perspective.
		s.log.Debug("logout: session not found in Redis (already expired)", "session_id", sessionID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// ListDoctors
// ---------------------------------------------------------------------------

func (s *authService) ListDoctors(ctx context.Context) ([]DoctorInfo, error) {
	docs, err := s.db.ListDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("list doctors: %w", err)
	}

	out := make([]DoctorInfo, 0, len(docs))
	for _, d := range docs {
		out = append(out, DoctorInfo{Name: d.Name, Department: d.Department})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (s *authService) createSession(ctx context.Context, d *store.Doctor) (*AuthTokens, error) {
	sessionID := uuid.Must(uuid.NewV7())

	sessionKey := redisKeySession(sessionID.String())
	if err := s.rdb.Set(ctx, sessionKey, d.ID.String(), s.refreshTTL()).Err(); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	access, err := s.paseto.IssueAccess(d.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := s.paseto.IssueRefresh(d.ID, &sessionID)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}

	return &AuthTokens{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int64(s.accessTTL().Seconds()),
	}, nil
}

func (s *authService) recordFailedLogin(ctx context.Context, d *store.Doctor) {
	attempts := d.FailedLoginAttempts + 1
	fields := map[string]any{
		"failed_login_attempts": attempts,
	}
	if attempts >= maxLoginAttempts {
		fields["locked_until"] = time.Now().Add(accountLockMins * time.Minute)
	}
	if err := s.db.UpdateDoctor(ctx, d.Name, fields); err != nil {
		s.log.Warn("failed to record login failure", "doctor", d.Name, "error", err)
	}
}

func (s *authService) accessTTL() time.Duration {
	ttl := time.Duration(s.cfg.Authentication.Paseto.AccessTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return ttl
}

func (s *authService) refreshTTL() time.Duration {
	ttl := time.Duration(s.cfg.Authentication.Paseto.RefreshTTLDays) * 24 * time.Hour
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return ttl
}
