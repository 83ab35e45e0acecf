package service

import (
	"context"
	"fmt"

	"github.com/praneeth827/prajju-new-one/internal/advisor"
	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/store"
	"github.com/praneeth827/prajju-new-one/models"
)

// reportService composes the full student report: the owner's profile, the
// academic record and the three advisor derivations. Reports are never
// partial; a missing user or record fails the whole operation.
type reportService struct {
	userRepository    store.UserRepository
	studentRepository store.StudentRepository
	logger            *logger.Logger
}

// NewReportService constructs a ReportService over both repositories.
func NewReportService(userRepository store.UserRepository, studentRepository store.StudentRepository, logger *logger.Logger) ReportService {
	return &reportService{
		userRepository:    userRepository,
		studentRepository: studentRepository,
		logger:            logger,
	}
}

// BuildReport resolves the user and their academic record, runs all three
// derivations and assembles the report.
//
// Returns store.ErrNoUserWasFound if the account has vanished and
// store.ErrNoStudentDetails if no record was ever saved; the two absences
// stay distinguishable for the HTTP layer.
func (r *reportService) BuildReport(ctx context.Context, userID int64) (models.Report, error) {
	log := logger.FromContext(ctx)

	user, err := r.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("report user lookup failed")
		return models.Report{}, fmt.Errorf("report user lookup failed: %w", err)
	}

	details, err := r.studentRepository.FindDetailsByUserID(ctx, userID)
	if err != nil {
		return models.Report{}, fmt.Errorf("report details lookup failed: %w", err)
	}

	return models.Report{
		UserProfile:     user.Profile(),
		AcademicDetails: details.WithoutOwner(),
		Eligibility:     advisor.ComputeEligibility(details),
		Recommendations: advisor.BuildRecommendations(details),
		Performance:     advisor.AnalyzePerformance(details),
	}, nil
}
