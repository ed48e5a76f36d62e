package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/forumhub/backend/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	DefaultAccessTokenTTL  = 15 * time.Minute
	DefaultRefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenConfig is everything the token service needs. It is built once from
// config.AuthConfig at startup.
type TokenConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// TokenService issues and verifies the stateless HS256 access and refresh
// tokens. Each kind has its own secret.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

type tokenClaims struct {
	ID int64 `json:"id"`
	jwt.RegisteredClaims
}

func NewTokenService(cfg TokenConfig) (*TokenService, error) {
	if strings.TrimSpace(cfg.AccessSecret) == "" {
		return nil, fmt.Errorf("%w: ACCESS_TOKEN_SECRET is required", ErrMisconfigured)
	}
	if strings.TrimSpace(cfg.RefreshSecret) == "" {
		return nil, fmt.Errorf("%w: REFRESH_TOKEN_SECRET is required", ErrMisconfigured)
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, fmt.Errorf("%w: access and refresh secrets must differ", ErrMisconfigured)
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = DefaultAccessTokenTTL
	}
	if cfg.RefreshTTL <= 0 {
		cfg.RefreshTTL = DefaultRefreshTokenTTL
	}

	return &TokenService{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}, nil
}

func (s *TokenService) AccessTTL() time.Duration { return s.accessTTL }

func (s *TokenService) RefreshTTL() time.Duration { return s.refreshTTL }

func (s *TokenService) IssueAccessToken(identity model.Identity) (string, error) {
	return s.sign(identity, s.accessSecret, s.accessTTL)
}

func (s *TokenService) IssueRefreshToken(identity model.Identity) (string, error) {
	return s.sign(identity, s.refreshSecret, s.refreshTTL)
}

// IssuePair mints a fresh access/refresh pair for identity.
func (s *TokenService) IssuePair(identity model.Identity) (model.TokenPair, error) {
	access, err := s.IssueAccessToken(identity)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(identity)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// VerifyAccessToken returns the identity of a valid access token or
// ErrInvalidAccessToken.
func (s *TokenService) VerifyAccessToken(token string) (*model.Identity, error) {
	identity, outcome := s.verify(token, s.accessSecret)
	if outcome != OutcomeValid {
		return nil, ErrInvalidAccessToken
	}
	return identity, nil
}

// VerifyRefreshToken returns the identity of a valid refresh token. Bad
// signatures, malformed input and expiry all yield ErrInvalidRefreshToken.
func (s *TokenService) VerifyRefreshToken(token string) (*model.Identity, error) {
	identity, outcome := s.verify(token, s.refreshSecret)
	if outcome != OutcomeValid {
		return nil, ErrInvalidRefreshToken
	}
	return identity, nil
}

// Inspect verifies token as the given kind and reports the session status it
// leads to.
func (s *TokenService) Inspect(kind TokenKind, token string) (SessionStatus, *model.Identity) {
	secret := s.accessSecret
	if kind == RefreshToken {
		secret = s.refreshSecret
	}
	identity, outcome := s.verify(token, secret)
	return Transition(kind, outcome), identity
}

func (s *TokenService) sign(identity model.Identity, secret []byte, ttl time.Duration) (string, error) {
	now := s.now()
	claims := tokenClaims{
		ID: identity.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) verify(token string, secret []byte) (*model.Identity, VerifyOutcome) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, OutcomeMissing
	}

	claims := &tokenClaims{}
	keyFunc := func(*jwt.Token) (interface{}, error) { return secret, nil }
	parsed, err := jwt.ParseWithClaims(token, claims, keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		// Expiry is only trusted when the signature checked out.
		if errors.Is(err, jwt.ErrTokenExpired) && !errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, OutcomeExpired
		}
		return nil, OutcomeInvalid
	}
	if !parsed.Valid || claims.ID <= 0 {
		return nil, OutcomeInvalid
	}
	return &model.Identity{ID: claims.ID}, OutcomeValid
}
