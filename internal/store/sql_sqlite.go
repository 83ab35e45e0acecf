package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/mattn/go-sqlite3"
	"github.com/praneeth827/prajju-new-one/internal/logger"
)

// NewConnectSQLite opens (or creates) a SQLite database at the given path
// and returns the wrapped [DB] ready for migration. Foreign keys are
// enabled explicitly since SQLite ships with them off.
func NewConnectSQLite(ctx context.Context, path string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// sqlite allows one writer at a time
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            DialectSQLite,
		builder:            sq.StatementBuilder.PlaceholderFormat(sq.Question),
		errorClassificator: sqliteErrorClassifier{},
		logger:             log,
	}, nil
}

// sqliteErrorClassifier implements [ErrorClassificator] for SQLite, where
// the violated column is only available in the error message
// ("UNIQUE constraint failed: users.email").
type sqliteErrorClassifier struct{}

func (sqliteErrorClassifier) UniqueViolationColumn(err error) string {
	var sErr sqlite3.Error
	if !errors.As(err, &sErr) {
		return ""
	}
	if sErr.ExtendedCode != sqlite3.ErrConstraintUnique && sErr.ExtendedCode != sqlite3.ErrConstraintPrimaryKey {
		return ""
	}

	msg := sErr.Error()
	switch {
	case strings.Contains(msg, ".email"):
		return "email"
	case strings.Contains(msg, ".phone"):
		return "phone"
	case strings.Contains(msg, ".user_id"):
		return "user_id"
	default:
		return ""
	}
}
