package stub

import (
	"context"

	"github.com/klwxsrx/go-session-gate/pkg/sql"
)

type transaction struct{}

func NewTransaction() sql.Transaction {
	return transaction{}
}

func (t transaction) Execute(ctx context.Context, fn func(ctx context.Context) error, _ ...string) error {
	return fn(ctx)
}
