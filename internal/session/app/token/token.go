//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names Codec=Codec
package token

import (
	"context"
	"errors"
	"time"
)

const (
	Validity = time.Hour

	ClaimRole       = "role"
	ClaimProvider   = "provider"
	ClaimExternalID = "externalId"
)

var (
	ErrInvalidToken = errors.New("token is invalid or expired")
	ErrExpiredToken = errors.New("token expired")
)

type (
	Claims struct {
		Role       string
		Provider   string
		ExternalID string
	}

	Token struct {
		Value     string
		Subject   string
		Claims    Claims
		IssuedAt  time.Time
		ExpiresAt time.Time
	}

	// Codec issues and verifies session tokens. Every failure wraps ErrInvalidToken, an expired token also wraps ErrExpiredToken.
	Codec interface {
		Issue(ctx context.Context, subject string, claims Claims) (Token, error)
		Verify(ctx context.Context, value string) (Token, error)
		SubjectOf(ctx context.Context, value string) (string, error)
		ExpiryOf(ctx context.Context, value string) (time.Time, error)
		Claim(ctx context.Context, value, name string) (string, error)
	}
)
