package sql

import (
	"context"
	"database/sql"
	"fmt"
)

type contextKey int

const dbTransactionContextKey contextKey = iota

type Transaction interface {
	Execute(ctx context.Context, fn func(ctx context.Context) error, lockNames ...string) error
}

type instanceID string

type txData struct {
	ClientTx
	instanceID instanceID
}

type transaction struct {
	id     instanceID
	client TxClient
}

// NewTransaction runs functions in a single db transaction,
// nested Execute calls on the same instance join the outer one.
func NewTransaction(client TxClient, instanceName string) Transaction {
	return &transaction{id: instanceID(instanceName), client: client}
}

func (t *transaction) Execute(
	ctx context.Context,
	fn func(ctx context.Context) error,
	lockNames ...string,
) (err error) {
	storedTx, ok := ctx.Value(dbTransactionContextKey).(txData)
	hasParentTx := ok && storedTx.instanceID == t.id
	if !hasParentTx {
		var tx ClientTx
		tx, err = t.client.Begin(ctx)
		if err != nil {
			return fmt.Errorf("start db transaction: %w", err)
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback()
			}
		}()

		storedTx = txData{ClientTx: tx, instanceID: t.id}
		ctx = context.WithValue(ctx, dbTransactionContextKey, storedTx)
	}

	for _, lockName := range lockNames {
		err = withTransactionLevelLock(ctx, lockName, storedTx.ClientTx)
		if err != nil {
			return err
		}
	}

	err = fn(ctx)
	if err != nil || hasParentTx {
		return err
	}

	err = storedTx.ClientTx.Commit()
	if err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// NewTransactionalClient returns a Client that uses the transaction from ctx when there is one.
func NewTransactionalClient(client Client) Client {
	return &transactionalClient{client: client}
}

type transactionalClient struct {
	client Client
}

func (c *transactionalClient) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.get(ctx).ExecContext(ctx, query, args...)
}

func (c *transactionalClient) GetContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.get(ctx).GetContext(ctx, dest, query, args...)
}

func (c *transactionalClient) SelectContext(ctx context.Context, dest any, query string, args ...any) error {
	return c.get(ctx).SelectContext(ctx, dest, query, args...)
}

func (c *transactionalClient) get(ctx context.Context) Client {
	tx, ok := ctx.Value(dbTransactionContextKey).(txData)
	if ok {
		return tx.ClientTx
	}
	return c.client
}
