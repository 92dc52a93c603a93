package identity

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	pkghttp "github.com/klwxsrx/go-session-gate/pkg/http"
	"github.com/klwxsrx/go-session-gate/pkg/log"
)

var errKeysNotLoaded = errors.New("identity provider keys are not loaded")

// JWKSKeySet holds the last successfully fetched key set, a failed refresh keeps it.
type JWKSKeySet struct {
	url     string
	client  pkghttp.Client
	logger  log.Logger
	current atomic.Pointer[keyfunc.JWKS]
}

func NewJWKSKeySet(url string, client pkghttp.Client, logger log.Logger) *JWKSKeySet {
	return &JWKSKeySet{
		url:    url,
		client: client,
		logger: logger,
	}
}

func (k *JWKSKeySet) Keyfunc(token *jwt.Token) (any, error) {
	jwks := k.current.Load()
	if jwks == nil {
		return nil, errKeysNotLoaded
	}

	return jwks.Keyfunc(token)
}

func (k *JWKSKeySet) Refresh(ctx context.Context) error {
	resp, err := k.client.NewRequest(ctx).Get(k.url)
	if err != nil {
		return fmt.Errorf("fetch jwks: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("fetch jwks: unexpected status %d", resp.StatusCode())
	}

	jwks, err := keyfunc.NewJSON(resp.Body())
	if err != nil {
		return fmt.Errorf("parse jwks: %w", err)
	}

	k.current.Store(jwks)
	k.logger.WithField("keys", jwks.Len()).Info(ctx, "identity provider keys refreshed")
	return nil
}
