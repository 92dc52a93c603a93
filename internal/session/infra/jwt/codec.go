package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/go-session-gate/internal/session/app/token"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const (
	DefaultSecret = "MySuperSecretKeyForHS512AlgorithmThatIsAtLeast512BitsLongAndSecure"

	minKeyLength = 64
)

var signingMethod = jwt.SigningMethodHS512

type sessionClaims struct {
	Role       string `json:"role"`
	Provider   string `json:"provider"`
	ExternalID string `json:"externalId"`
	jwt.RegisteredClaims
}

type codec struct {
	key   []byte
	clock pkgtime.Clock
}

func NewCodec(secret string, clock pkgtime.Clock) token.Codec {
	if secret == "" {
		secret = DefaultSecret
	}

	return codec{
		key:   signingKey(secret),
		clock: clock,
	}
}

func (c codec) Issue(ctx context.Context, subject string, claims token.Claims) (token.Token, error) {
	if subject == "" {
		return token.Token{}, errors.New("empty subject")
	}

	issuedAt := c.clock.Now(ctx).Truncate(time.Second)
	expiresAt := issuedAt.Add(token.Validity)

	value, err := jwt.NewWithClaims(signingMethod, sessionClaims{
		Role:       claims.Role,
		Provider:   claims.Provider,
		ExternalID: claims.ExternalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}).SignedString(c.key)
	if err != nil {
		return token.Token{}, fmt.Errorf("sign token: %w", err)
	}

	return token.Token{
		Value:     value,
		Subject:   subject,
		Claims:    claims,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

func (c codec) Verify(ctx context.Context, value string) (token.Token, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time {
			return c.clock.Now(ctx)
		}),
	)

	var claims sessionClaims
	_, err := parser.ParseWithClaims(value, &claims, func(*jwt.Token) (any, error) {
		return c.key, nil
	})
	if errors.Is(err, jwt.ErrTokenExpired) {
		return token.Token{}, fmt.Errorf("%w: %w", token.ErrInvalidToken, token.ErrExpiredToken)
	}
	if err != nil {
		return token.Token{}, fmt.Errorf("%w: %w", token.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return token.Token{}, fmt.Errorf("%w: empty subject", token.ErrInvalidToken)
	}

	result := token.Token{
		Value:   value,
		Subject: claims.Subject,
		Claims: token.Claims{
			Role:       claims.Role,
			Provider:   claims.Provider,
			ExternalID: claims.ExternalID,
		},
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}

func (c codec) SubjectOf(ctx context.Context, value string) (string, error) {
	t, err := c.Verify(ctx, value)
	if err != nil {
		return "", err
	}

	return t.Subject, nil
}

func (c codec) ExpiryOf(ctx context.Context, value string) (time.Time, error) {
	t, err := c.Verify(ctx, value)
	if err != nil {
		return time.Time{}, err
	}

	return t.ExpiresAt, nil
}

func (c codec) Claim(ctx context.Context, value, name string) (string, error) {
	t, err := c.Verify(ctx, value)
	if err != nil {
		return "", err
	}

	switch name {
	case token.ClaimRole:
		return t.Claims.Role, nil
	case token.ClaimProvider:
		return t.Claims.Provider, nil
	case token.ClaimExternalID:
		return t.Claims.ExternalID, nil
	default:
		return "", fmt.Errorf("%w: unknown claim %s", token.ErrInvalidToken, name)
	}
}

// signingKey stretches secrets shorter than HS512 requires, the result is deterministic.
func signingKey(secret string) []byte {
	key := []byte(secret)
	if len(key) >= minKeyLength {
		return key
	}

	padded := make([]byte, minKeyLength)
	for i := range padded {
		padded[i] = key[i%len(key)] ^ byte(i)
	}

	return padded
}
