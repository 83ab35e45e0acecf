package store

import (
	"context"
	"strings"

	"github.com/praneeth827/prajju-new-one/internal/config"
	"github.com/praneeth827/prajju-new-one/internal/logger"
)

// Storages aggregates the repositories the service layer depends on.
// Both repositories are always backed by the same storage backend.
type Storages struct {
	UserRepository    UserRepository
	StudentRepository StudentRepository
}

// NewStorages constructs the persistence layer selected by configuration:
// a relational backend when a DSN is configured (PostgreSQL for
// postgres:// URIs, SQLite otherwise), or the JSON snapshot file backend
// when no DSN is set.
//
// The relational backend is migrated on startup via the embedded goose
// migrations.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		snapshot, err := NewSnapshotStore(cfg.Snapshot.Path, log)
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository:    snapshot,
			StudentRepository: snapshot,
		}, nil
	}

	db, err := connectSQL(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Msg("error migrating database")
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		StudentRepository: NewStudentRepository(db, log),
	}, nil
}

func connectSQL(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewConnectPostgres(ctx, dsn, log)
	}

	return NewConnectSQLite(ctx, strings.TrimPrefix(dsn, "sqlite:"), log)
}
