package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/models"
)

// studentRepository is the SQL-backed implementation of [StudentRepository].
// The "student_details" table keys on user_id, so the one-record-per-user
// invariant is enforced by the schema itself.
type studentRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewStudentRepository constructs a [StudentRepository] backed by the
// provided database connection and logger.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertDetails stores the record for details.UserID, replacing any existing
// row wholesale via INSERT ... ON CONFLICT (supported identically by both
// dialects).
func (r *studentRepository) UpsertDetails(ctx context.Context, details models.StudentDetails) (models.StudentDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Insert(details.TableName()).
		Columns(
			"user_id", "roll_number", "btech_year", "gender", "category", "quota_type",
			"present_cgpa", "previous_cgpa", "attendance", "active_backlogs", "updated_at",
		).
		Values(
			details.UserID, details.RollNumber, details.BTechYear, details.Gender,
			details.Category, details.QuotaType, details.PresentCGPA, details.PreviousCGPA,
			details.Attendance, bool(details.ActiveBacklogs), details.UpdatedAt,
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			roll_number = excluded.roll_number,
			btech_year = excluded.btech_year,
			gender = excluded.gender,
			category = excluded.category,
			quota_type = excluded.quota_type,
			present_cgpa = excluded.present_cgpa,
			previous_cgpa = excluded.previous_cgpa,
			attendance = excluded.attendance,
			active_backlogs = excluded.active_backlogs,
			updated_at = excluded.updated_at`).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.UpsertDetails").Msg("error building upsert query")
		return models.StudentDetails{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*studentRepository.UpsertDetails").Msg("error upserting student details")
		return models.StudentDetails{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return details, nil
}

// FindDetailsByUserID returns the academic record owned by userID.
//
// Error handling:
//   - no matching row → [ErrNoStudentDetails] (the expected "no record yet"
//     outcome every derivation caller branches on)
//   - any other driver-level error → wrapped as "unexpected DB error"
func (r *studentRepository) FindDetailsByUserID(ctx context.Context, userID int64) (models.StudentDetails, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.Builder().
		Select(
			"user_id", "roll_number", "btech_year", "gender", "category", "quota_type",
			"present_cgpa", "previous_cgpa", "attendance", "active_backlogs", "updated_at",
		).
		From(models.StudentDetails{}.TableName()).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*studentRepository.FindDetailsByUserID").Msg("error building select query")
		return models.StudentDetails{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.StudentDetails
	var activeBacklogs bool

	row := r.db.QueryRowContext(ctx, query, args...)
	if err = row.Scan(
		&found.UserID, &found.RollNumber, &found.BTechYear, &found.Gender,
		&found.Category, &found.QuotaType, &found.PresentCGPA, &found.PreviousCGPA,
		&found.Attendance, &activeBacklogs, &found.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StudentDetails{}, ErrNoStudentDetails
		}
		log.Err(err).Str("func", "*studentRepository.FindDetailsByUserID").Msg("error: scanning error")
		return models.StudentDetails{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	found.ActiveBacklogs = models.YesNo(activeBacklogs)

	return found, nil
}
