package identity

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/klwxsrx/go-session-gate/internal/session/app/identity"
	"github.com/klwxsrx/go-session-gate/internal/session/domain"
	pkgtime "github.com/klwxsrx/go-session-gate/pkg/time"
)

const (
	DefaultIssuerHost = "securetoken.google.com"

	expectedAlgorithm = "RS256"
	issuedAtSkew      = 5 * time.Minute
)

type (
	Config struct {
		Audience   string
		IssuerHost string
	}

	// KeySet resolves the provider's public key for a token, nil disables signature checks.
	KeySet interface {
		Keyfunc(*jwt.Token) (any, error)
	}
)

type verifier struct {
	audience string
	issuer   string
	keys     KeySet
	clock    pkgtime.Clock
}

func NewVerifier(config Config, keys KeySet, clock pkgtime.Clock) identity.Verifier {
	if config.IssuerHost == "" {
		config.IssuerHost = DefaultIssuerHost
	}

	return verifier{
		audience: config.Audience,
		issuer:   fmt.Sprintf("https://%s/%s", config.IssuerHost, config.Audience),
		keys:     keys,
		clock:    clock,
	}
}

func (v verifier) Verify(ctx context.Context, assertion string) (identity.Claims, error) {
	if len(strings.Split(assertion, ".")) != 3 {
		return identity.Claims{}, invalid("token must consist of 3 segments")
	}

	claims := jwt.MapClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(assertion, claims)
	if err != nil {
		return identity.Claims{}, invalid(err.Error())
	}
	if alg := parsed.Method.Alg(); alg != expectedAlgorithm {
		return identity.Claims{}, invalid(fmt.Sprintf("unexpected algorithm %s", alg))
	}

	if issuer, _ := claims.GetIssuer(); issuer != v.issuer {
		return identity.Claims{}, invalid(fmt.Sprintf("unexpected issuer %s", issuer))
	}
	if audience, _ := claims.GetAudience(); !slices.Contains(audience, v.audience) {
		return identity.Claims{}, invalid("unexpected audience")
	}

	subject, _ := claims.GetSubject()
	if subject == "" {
		return identity.Claims{}, invalid("empty subject")
	}

	now := v.clock.Now(ctx)
	expiresAt, err := claims.GetExpirationTime()
	if err != nil || expiresAt == nil {
		return identity.Claims{}, invalid("no expiration time")
	}
	if !now.Before(expiresAt.Time) {
		return identity.Claims{}, invalid("token expired")
	}

	issuedAt, err := claims.GetIssuedAt()
	if err != nil || issuedAt == nil {
		return identity.Claims{}, invalid("no issue time")
	}
	if now.Before(issuedAt.Add(-issuedAtSkew)) {
		return identity.Claims{}, invalid("token issued in the future")
	}

	if v.keys != nil {
		_, err = jwt.NewParser(
			jwt.WithValidMethods([]string{expectedAlgorithm}),
			jwt.WithoutClaimsValidation(),
		).Parse(assertion, v.keys.Keyfunc)
		if err != nil {
			return identity.Claims{}, invalid(err.Error())
		}
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)
	return identity.Claims{
		Subject:       subject,
		Email:         email,
		Name:          name,
		EmailVerified: parseBoolClaim(claims["email_verified"]),
		IssuedAt:      issuedAt.Time.UTC(),
		ExpiresAt:     expiresAt.Time.UTC(),
	}, nil
}

func parseBoolClaim(value any) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	default:
		return false
	}
}

func invalid(reason string) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidIdentityAssertion, reason)
}
