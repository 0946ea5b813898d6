package oidc

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gracechapel/gracechapel/pkg/middleware"
)

// Verifier checks ID tokens against an external identity provider. It is the
// production replacement for the demo email login: deployments that need real
// admin authentication point OIDC_ISSUER_URL at their provider and the admin
// routes verify against it instead of the local HMAC secret.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier runs OIDC discovery against the issuer and builds a verifier
// bound to the client ID.
func NewVerifier(ctx context.Context, issuer, clientID string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("oidc discovery: %w", err)
	}
	return &Verifier{verifier: provider.Verifier(&oidc.Config{ClientID: clientID})}, nil
}

// Verify validates signature, issuer, audience, and expiry. The returned
// *oidc.IDToken satisfies middleware.Token directly.
func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	return v.verifier.Verify(ctx, raw)
}
