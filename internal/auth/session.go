package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionCookieName is the cookie browsers send the session token in
const SessionCookieName = "session_token"

// ErrInvalidToken is returned for a token that fails validation
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenValidator validates a session token and returns its user
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error)
}

// SessionResolver resolves the user from a bearer token or the session cookie
type SessionResolver struct {
	validator TokenValidator
	timeout   time.Duration
}

// NewSessionResolver creates a SessionResolver backed by validator
func NewSessionResolver(validator TokenValidator, timeout time.Duration) *SessionResolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &SessionResolver{validator: validator, timeout: timeout}
}

func (s *SessionResolver) Resolve(r *http.Request) (uuid.UUID, error) {
	token, err := extractToken(r)
	if err != nil {
		return uuid.Nil, err
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	userID, err := s.validator.ValidateToken(ctx, token)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return userID, nil
}

func extractToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
		}
		return strings.TrimSpace(parts[1]), nil
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	return "", ErrNoIdentity
}

// JWTValidator checks HS256 tokens locally. It cannot see revocations.
type JWTValidator struct {
	secret []byte
}

// NewJWTValidator creates a JWTValidator for the shared secret
func NewJWTValidator(secret string) *JWTValidator {
	return &JWTValidator{secret: []byte(secret)}
}

func (v *JWTValidator) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	if len(v.secret) == 0 {
		return uuid.Nil, errors.New("jwt secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return uuid.Nil, fmt.Errorf("token rejected: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid token claims")
	}

	// support the claim names the auth service and older sessions use
	var userIDStr string
	for _, key := range []string{"sub", "userId", "user_id"} {
		if s, ok := claims[key].(string); ok && s != "" {
			userIDStr = s
			break
		}
	}
	if userIDStr == "" {
		return uuid.Nil, errors.New("user ID not found in token")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid user ID format: %w", err)
	}
	return userID, nil
}

// FallbackValidator asks primary first and falls back to the local check when
// the primary cannot be reached or rejects the token.
type FallbackValidator struct {
	primary  TokenValidator
	fallback TokenValidator
	logger   *zap.Logger
}

// NewFallbackValidator returns primary alone when fallback is nil and vice versa
func NewFallbackValidator(primary, fallback TokenValidator, logger *zap.Logger) TokenValidator {
	switch {
	case primary == nil:
		return fallback
	case fallback == nil:
		return primary
	}
	return &FallbackValidator{primary: primary, fallback: fallback, logger: logger}
}

func (f *FallbackValidator) ValidateToken(ctx context.Context, tokenStr string) (uuid.UUID, error) {
	userID, err := f.primary.ValidateToken(ctx, tokenStr)
	if err == nil {
		return userID, nil
	}
	f.logger.Debug("Auth service validation failed, trying local JWT", zap.Error(err))
	return f.fallback.ValidateToken(ctx, tokenStr)
}
