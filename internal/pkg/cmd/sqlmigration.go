package cmd

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/klwxsrx/go-session-gate/pkg/log"
	"github.com/klwxsrx/go-session-gate/pkg/sql"
)

type (
	SQLMigrations interface {
		MustRegister(migrations ...fs.ReadDirFS)
	}

	sqlMigrations struct {
		ctx    context.Context
		db     sql.Database
		logger log.Logger
	}
)

func NewSQLMigrations(
	ctx context.Context,
	db sql.Database,
	logger log.Logger,
) SQLMigrations {
	return &sqlMigrations{
		ctx:    ctx,
		db:     db,
		logger: logger,
	}
}

func (s *sqlMigrations) MustRegister(migrations ...fs.ReadDirFS) {
	for _, migration := range migrations {
		err := sql.NewMigration(s.db, migration, s.logger).Execute(s.ctx)
		if err != nil {
			panic(fmt.Errorf("execute migrations: %w", err))
		}
	}
}
