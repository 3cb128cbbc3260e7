package auth

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// ErrNoIdentity is returned when a request carries no identity at all.
// A present but invalid credential yields a different error.
var ErrNoIdentity = errors.New("no identity in request")

// IdentityResolver turns a request into the id of the acting user
type IdentityResolver interface {
	Resolve(r *http.Request) (uuid.UUID, error)
}

// ResolverFunc adapts a function to IdentityResolver
type ResolverFunc func(r *http.Request) (uuid.UUID, error)

func (f ResolverFunc) Resolve(r *http.Request) (uuid.UUID, error) {
	return f(r)
}

// ChainResolver tries resolvers in order.
// The first resolver that finds an identity wins; a resolver that finds a bad
// credential stops the chain with its error.
type ChainResolver struct {
	resolvers []IdentityResolver
}

// NewChainResolver skips nil resolvers
func NewChainResolver(resolvers ...IdentityResolver) *ChainResolver {
	kept := make([]IdentityResolver, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			kept = append(kept, r)
		}
	}
	return &ChainResolver{resolvers: kept}
}

func (c *ChainResolver) Resolve(r *http.Request) (uuid.UUID, error) {
	for _, resolver := range c.resolvers {
		id, err := resolver.Resolve(r)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, ErrNoIdentity) {
			return uuid.Nil, err
		}
	}
	return uuid.Nil, ErrNoIdentity
}
