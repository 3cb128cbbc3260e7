package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const (
	UserIDHeader         = "X-User-ID"
	InternalAPIKeyHeader = "X-Internal-API-Key"
)

// ErrUntrustedCaller is returned when X-User-ID arrives without a valid internal key
var ErrUntrustedCaller = errors.New("user id header requires a valid internal api key")

// TrustedHeaderResolver honours X-User-ID from internal callers only.
// With an empty key the resolver never yields an identity.
type TrustedHeaderResolver struct {
	apiKey []byte
}

// NewTrustedHeaderResolver creates a TrustedHeaderResolver for apiKey
func NewTrustedHeaderResolver(apiKey string) *TrustedHeaderResolver {
	return &TrustedHeaderResolver{apiKey: []byte(apiKey)}
}

func (t *TrustedHeaderResolver) Resolve(r *http.Request) (uuid.UUID, error) {
	raw := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if raw == "" {
		return uuid.Nil, ErrNoIdentity
	}
	if len(t.apiKey) == 0 {
		return uuid.Nil, ErrUntrustedCaller
	}

	key := []byte(r.Header.Get(InternalAPIKeyHeader))
	if subtle.ConstantTimeCompare(key, t.apiKey) != 1 {
		return uuid.Nil, ErrUntrustedCaller
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s header: %w", UserIDHeader, err)
	}
	return userID, nil
}
