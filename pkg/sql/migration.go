package sql

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

const (
	migrationLock  = "perform_migration_lock"
	querySeparator = ";\n"

	migrationTableDDL = `
		CREATE TABLE IF NOT EXISTS migration (
			id text PRIMARY KEY
		)
	`
)

type Migration struct {
	txClient   TxClient
	migrations fs.ReadDirFS
	logger     log.Logger
}

func NewMigration(txClient TxClient, migrations fs.ReadDirFS, logger log.Logger) *Migration {
	return &Migration{
		txClient:   txClient,
		migrations: migrations,
		logger:     logger,
	}
}

func (m *Migration) Execute(ctx context.Context) error {
	_, err := m.txClient.ExecContext(ctx, migrationTableDDL)
	if err != nil {
		return fmt.Errorf("create migration table: %w", err)
	}

	migrationIDs, err := m.getFileNames()
	if err != nil {
		return fmt.Errorf("get migration file names: %w", err)
	}

	for _, migrationID := range migrationIDs {
		err = m.performMigration(ctx, migrationID)
		if err != nil {
			return fmt.Errorf("migration %s: %w", migrationID, err)
		}
	}

	return nil
}

func (m *Migration) getFileNames() ([]string, error) {
	entries, err := m.migrations.ReadDir(".")
	if err != nil {
		return nil, err
	}

	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		result = append(result, entry.Name())
	}

	sort.Strings(result)
	return result, nil
}

// performMigration applies a file in its own transaction under the migration lock,
// so concurrent instances apply every file once.
func (m *Migration) performMigration(ctx context.Context, migrationID string) error {
	content, err := fs.ReadFile(m.migrations, migrationID)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}
	if len(strings.TrimSpace(string(content))) == 0 {
		return errors.New("empty migration")
	}

	executed := false
	err = NewTransaction(m.txClient, migrationLock).Execute(ctx, func(ctx context.Context) error {
		tx := ctx.Value(dbTransactionContextKey).(txData)

		var count int
		err := tx.GetContext(ctx, &count, `SELECT count(*) FROM migration WHERE id = $1`, migrationID)
		if err != nil {
			return fmt.Errorf("check migration: %w", err)
		}
		if count > 0 {
			return nil
		}

		_, err = tx.ExecContext(ctx, `INSERT INTO migration VALUES ($1)`, migrationID)
		if err != nil {
			return fmt.Errorf("create migration record: %w", err)
		}

		for _, query := range strings.Split(string(content), querySeparator) {
			if strings.TrimSpace(query) == "" {
				continue
			}

			_, err = tx.ExecContext(ctx, query)
			if err != nil {
				return err
			}
		}

		executed = true
		return nil
	}, migrationLock)
	if err != nil {
		return err
	}

	if executed {
		m.logger.WithField("migrationID", migrationID).Info(ctx, "migration executed successfully")
	}
	return nil
}
