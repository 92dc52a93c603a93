//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names Verifier=Verifier
package identity

import (
	"context"
	"time"
)

const ProviderFirebase = "firebase"

type (
	Claims struct {
		Subject       string
		Email         string
		Name          string
		EmailVerified bool
		IssuedAt      time.Time
		ExpiresAt     time.Time
	}

	// Verifier checks an identity assertion issued by the external provider,
	// failures wrap domain.ErrInvalidIdentityAssertion.
	Verifier interface {
		Verify(ctx context.Context, assertion string) (Claims, error)
	}
)
