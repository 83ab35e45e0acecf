package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table and
// works unchanged over both supported dialects.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the assigned id.
//
// The id is assigned inside a transaction as max existing id + 1 (or 1 on an
// empty table), keeping identifier assignment monotonic and identical to the
// snapshot backend.
//
// Error handling:
//   - unique violation on the email index → [ErrEmailAlreadyExists]
//   - unique violation on the phone index → [ErrPhoneAlreadyExists]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM users`).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error assigning next user id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	query, args, err := r.db.Builder().
		Insert(user.TableName()).
		Columns("id", "name", "email", "phone", "password_hash", "created_at").
		Values(user.UserID, user.Name, user.Email, nullablePhone(user.Phone), user.PasswordHash, user.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch r.db.errorClassificator.UniqueViolationColumn(err) {
		case "email":
			return models.User{}, ErrEmailAlreadyExists
		case "phone":
			return models.User{}, ErrPhoneAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return user, nil
}

// FindUserByEmail retrieves a user record by normalized email.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound]
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.userSelect().Where("email = ?", email).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, query, args...)
}

// FindUserByID retrieves a user record by id.
//
// Error handling mirrors [FindUserByEmail].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.userSelect().Where("id = ?", userID).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.scanUser(ctx, query, args...)
}

func (r *userRepository) userSelect() sq.SelectBuilder {
	return r.db.Builder().
		Select("id", "name", "email", "phone", "password_hash", "created_at").
		From(models.User{}.TableName())
}

func (r *userRepository) scanUser(ctx context.Context, query string, args ...any) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	var phone sql.NullString

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&found.UserID, &found.Name, &found.Email, &phone, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.scanUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	found.Phone = phone.String

	return found, nil
}

// nullablePhone maps the empty string to NULL so the partial unique index
// on phone ignores accounts that did not provide one.
func nullablePhone(phone string) any {
	if phone == "" {
		return nil
	}
	return phone
}
