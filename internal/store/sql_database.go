package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/migrations"
)

// Dialects supported by the SQL backend.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

// DB wraps a *sql.DB together with the dialect it speaks, a statement
// builder with the matching placeholder format, and a classifier that maps
// driver-level errors to the store's sentinel errors.
type DB struct {
	*sql.DB

	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Builder returns the squirrel statement builder configured for this
// database's placeholder format ($N for postgres, ? for sqlite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies all embedded goose migrations for this database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// ErrorClassificator translates driver-specific errors into the violated
// unique column name, allowing repositories to report email and phone
// conflicts distinctly without knowing which driver is underneath.
type ErrorClassificator interface {
	// UniqueViolationColumn returns "email", "phone", or "user_id" when err
	// is a unique-constraint violation on the corresponding column, and ""
	// for every other error.
	UniqueViolationColumn(err error) string
}
