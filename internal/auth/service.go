// Package auth implements email+password accounts with JWT session tokens.
// Sessions gate the write-capable admin surface; public browsing never
// authenticates.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/muthomi-ke/land-platform/internal/platform/logger"
	"github.com/muthomi-ke/land-platform/internal/plot/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials or login failed")
	ErrInvalidToken       = errors.New("token is invalid")
)

const tokenTTL = 24 * time.Hour

// Claims is the JWT payload carried by session tokens.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// SessionStore tracks revoked tokens so sign-out actually ends a session. A
// nil store makes sign-out client-side only.
type SessionStore interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

type Service struct {
	users    domain.UserRepository
	sessions SessionStore
	secret   []byte
	logger   *logger.Logger
}

func NewService(users domain.UserRepository, sessions SessionStore, jwtSecret string, log *logger.Logger) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		secret:   []byte(jwtSecret),
		logger:   log,
	}
}

// SignUp registers a new account.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	if s.users == nil {
		return nil, domain.ErrGatewayNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		s.logger.Error("auth.SignUp: create failed", "email", email, "error", err.Error())
		return nil, err
	}
	s.logger.Info("auth.SignUp: user registered", "user_id", user.ID)
	return user, nil
}

// SignIn checks the password and mints a session token.
func (s *Service) SignIn(ctx context.Context, email, password string) (string, error) {
	if s.users == nil {
		return "", domain.ErrGatewayNotConfigured
	}
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		s.logger.Error("auth.SignIn: lookup failed", "email", email, "error", err.Error())
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	s.logger.Info("auth.SignIn: session issued", "user_id", user.ID)
	return token, nil
}

// SignOut revokes the token for the rest of its lifetime.
func (s *Service) SignOut(ctx context.Context, token string) error {
	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, token, tokenTTL); err != nil {
		s.logger.Warn("auth.SignOut: revoke failed", "error", err.Error())
		return err
	}
	return nil
}

// Verify validates a session token and returns the user it belongs to.
func (s *Service) Verify(ctx context.Context, tokenString string) (string, error) {
	if s.sessions != nil {
		revoked, err := s.sessions.IsRevoked(ctx, tokenString)
		if err != nil {
			s.logger.Warn("auth.Verify: revocation check failed", "error", err.Error())
		} else if revoked {
			return "", ErrInvalidToken
		}
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}
	return claims.UserID, nil
}
