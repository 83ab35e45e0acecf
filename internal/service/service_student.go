package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/store"
	"github.com/praneeth827/prajju-new-one/models"
)

// requiredDetailFields fixes the order in which missing fields are reported.
var requiredDetailFields = []string{
	"roll_number", "btech_year", "gender", "category", "quota_type",
	"present_cgpa", "previous_cgpa", "attendance", "active_backlogs",
}

// studentService is the concrete implementation of StudentService. It
// validates inbound academic records and delegates persistence to a
// StudentRepository.
type studentService struct {
	studentRepository store.StudentRepository
	logger            *logger.Logger
}

// NewStudentService constructs a StudentService wired to the given
// StudentRepository.
func NewStudentService(studentRepository store.StudentRepository, logger *logger.Logger) StudentService {
	return &studentService{
		studentRepository: studentRepository,
		logger:            logger,
	}
}

// UpsertDetails validates req and replaces the caller's academic record
// wholesale, stamping it with the current time.
//
// Returns the persisted record or a ValidationError listing every missing
// field ("Missing fields: a, b"), rejecting a non-Yes/No backlog flag, or
// reporting an unparsable numeric field.
func (s *studentService) UpsertDetails(ctx context.Context, userID int64, req models.StudentDetailsRequest) (models.StudentDetails, error) {
	log := logger.FromContext(ctx)

	details, err := s.validateDetails(userID, req)
	if err != nil {
		log.Error().Err(err).Int64("userID", userID).Msg("student details rejected")
		return models.StudentDetails{}, err
	}

	stored, err := s.studentRepository.UpsertDetails(ctx, details)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("student details upsert ended with error")
		return models.StudentDetails{}, fmt.Errorf("student details upsert ended with error: %w", err)
	}

	return stored, nil
}

// GetDetails returns the caller's academic record, or
// store.ErrNoStudentDetails when none has been saved yet. The absence of a
// record is an expected outcome, not a failure.
func (s *studentService) GetDetails(ctx context.Context, userID int64) (models.StudentDetails, error) {
	details, err := s.studentRepository.FindDetailsByUserID(ctx, userID)
	if err != nil {
		return models.StudentDetails{}, fmt.Errorf("student details lookup ended with error: %w", err)
	}

	return details, nil
}

func (s *studentService) validateDetails(userID int64, req models.StudentDetailsRequest) (models.StudentDetails, error) {
	present := map[string]bool{
		"roll_number":     req.RollNumber != "",
		"btech_year":      req.BTechYear != "",
		"gender":          req.Gender != "",
		"category":        req.Category != "",
		"quota_type":      req.QuotaType != "",
		"present_cgpa":    req.PresentCGPA != "",
		"previous_cgpa":   req.PreviousCGPA != "",
		"attendance":      req.Attendance != "",
		"active_backlogs": req.ActiveBacklogs != "",
	}

	var missing []string
	for _, field := range requiredDetailFields {
		if !present[field] {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return models.StudentDetails{}, newValidationError("Missing fields: %s", strings.Join(missing, ", "))
	}

	if req.ActiveBacklogs != "Yes" && req.ActiveBacklogs != "No" {
		return models.StudentDetails{}, newValidationError("active_backlogs must be 'Yes' or 'No'")
	}

	presentCGPA, err := parseNumericField("present_cgpa", req.PresentCGPA)
	if err != nil {
		return models.StudentDetails{}, err
	}
	previousCGPA, err := parseNumericField("previous_cgpa", req.PreviousCGPA)
	if err != nil {
		return models.StudentDetails{}, err
	}
	attendance, err := parseNumericField("attendance", req.Attendance)
	if err != nil {
		return models.StudentDetails{}, err
	}

	return models.StudentDetails{
		UserID:         userID,
		RollNumber:     req.RollNumber,
		BTechYear:      req.BTechYear.String(),
		Gender:         req.Gender,
		Category:       req.Category,
		QuotaType:      req.QuotaType,
		PresentCGPA:    presentCGPA,
		PreviousCGPA:   previousCGPA,
		Attendance:     attendance,
		ActiveBacklogs: req.ActiveBacklogs == "Yes",
		UpdatedAt:      time.Now().UTC(),
	}, nil
}

func parseNumericField(name string, value models.FormValue) (float64, error) {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value.String()), 64)
	if err != nil {
		return 0, newValidationError("%s must be a number", name)
	}
	return parsed, nil
}
