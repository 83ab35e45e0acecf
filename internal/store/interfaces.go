package store

import (
	"context"

	"github.com/praneeth827/prajju-new-one/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user, assigns the next monotonic id, and
	// returns the stored record. Uniqueness of the normalized email and of
	// the phone (when provided) is enforced here:
	// [ErrEmailAlreadyExists] / [ErrPhoneAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by normalized email.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by id.
	// Returns [ErrNoUserWasFound] when no account matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// StudentRepository is the data-access contract for academic records.
// At most one record exists per user id.
type StudentRepository interface {
	// UpsertDetails stores the record for details.UserID, replacing any
	// existing one wholesale, and returns the stored record.
	UpsertDetails(ctx context.Context, details models.StudentDetails) (models.StudentDetails, error)

	// FindDetailsByUserID returns the record owned by userID or
	// [ErrNoStudentDetails] when the user has not submitted one yet.
	FindDetailsByUserID(ctx context.Context, userID int64) (models.StudentDetails, error)
}
