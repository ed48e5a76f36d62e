package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/forumhub/backend/internal/db"
	"github.com/forumhub/backend/internal/metrics"
	"github.com/forumhub/backend/internal/model"
	"go.uber.org/zap"
)

const (
	RefreshCookieName = "refresh_token"
	RefreshCookiePath = "/users/refresh"
	bearerPrefix      = "Bearer "
)

type CookieConfig struct {
	Name     string
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

type userFinder interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type AuthService struct {
	users     userFinder
	tokens    *TokenService
	cookieCfg CookieConfig
	log       *zap.Logger
}

// LoginResult carries the user and the freshly issued pair. Handlers put the
// refresh token in the cookie and never in the body.
type LoginResult struct {
	Tokens model.TokenPair
	User   *model.User
}

// NewAuthService wires login/refresh on top of tokens. secureCookie should be
// true only in production.
func NewAuthService(users userFinder, tokens *TokenService, secureCookie bool, log *zap.Logger) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		cookieCfg: CookieConfig{
			Name:     RefreshCookieName,
			Path:     RefreshCookiePath,
			Secure:   secureCookie,
			SameSite: http.SameSiteStrictMode,
			MaxAge:   int(tokens.RefreshTTL().Seconds()),
		},
		log: log,
	}
}

func (s *AuthService) CookieConfig() CookieConfig {
	return s.cookieCfg
}

func (s *AuthService) Login(ctx context.Context, username string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		metrics.LoginAttempts.WithLabelValues("unknown_user").Inc()
		return nil, ErrUserNotFound
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			metrics.LoginAttempts.WithLabelValues("unknown_user").Inc()
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	pair, err := s.issue(user.ID)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttempts.WithLabelValues("success").Inc()
	s.log.Info("user logged in", zap.Int64("user_id", user.ID))
	return &LoginResult{Tokens: pair, User: user}, nil
}

// Refresh rotates the pair. The presented refresh token is not revoked; the
// new cookie simply supersedes it.
func (s *AuthService) Refresh(_ context.Context, refreshToken string) (model.TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		metrics.SessionTransitions.WithLabelValues(RefreshToken.String(), SessionAnonymous.String()).Inc()
		return model.TokenPair{}, ErrMissingRefreshToken
	}

	status, identity := s.tokens.Inspect(RefreshToken, refreshToken)
	metrics.SessionTransitions.WithLabelValues(RefreshToken.String(), status.String()).Inc()
	if !status.Authenticated() {
		s.log.Debug("refresh rejected", zap.Stringer("session", status))
		return model.TokenPair{}, ErrInvalidRefreshToken
	}

	return s.issue(identity.ID)
}

// Authorize is the guard in front of protected operations. header is the raw
// Authorization header value.
func (s *AuthService) Authorize(header string) (*model.Identity, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		metrics.SessionTransitions.WithLabelValues(AccessToken.String(), SessionAnonymous.String()).Inc()
		return nil, ErrInvalidAccessToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	status, identity := s.tokens.Inspect(AccessToken, token)
	metrics.SessionTransitions.WithLabelValues(AccessToken.String(), status.String()).Inc()
	if !status.Authenticated() {
		return nil, ErrInvalidAccessToken
	}
	return identity, nil
}

func (s *AuthService) issue(userID int64) (model.TokenPair, error) {
	pair, err := s.tokens.IssuePair(model.Identity{ID: userID})
	if err != nil {
		return model.TokenPair{}, err
	}
	metrics.TokensIssued.WithLabelValues(AccessToken.String()).Inc()
	metrics.TokensIssued.WithLabelValues(RefreshToken.String()).Inc()
	return pair, nil
}
