package service

import (
	"context"
	"testing"

	"github.com/praneeth827/prajju-new-one/internal/logger"
	"github.com/praneeth827/prajju-new-one/internal/store"
	"github.com/praneeth827/prajju-new-one/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportFixtures() (*mockUserRepository, *mockStudentRepository) {
	users := &mockUserRepository{
		findUserByIDFn: func(ctx context.Context, userID int64) (models.User, error) {
			return models.User{
				UserID: userID,
				Name:   "Praneeth",
				Email:  "praneeth@example.com",
				Phone:  "9876543210",
			}, nil
		},
	}
	students := &mockStudentRepository{
		findDetailsByUserIDFn: func(ctx context.Context, userID int64) (models.StudentDetails, error) {
			return models.StudentDetails{
				UserID:         userID,
				RollNumber:     "21B81A0501",
				BTechYear:      "3",
				Gender:         "Female",
				Category:       "SC",
				QuotaType:      "Convener Quota",
				PresentCGPA:    9.0,
				PreviousCGPA:   8.6,
				Attendance:     82,
				ActiveBacklogs: false,
			}, nil
		},
	}
	return users, students
}

func TestBuildReport_ComposesAllSections(t *testing.T) {
	users, students := reportFixtures()
	svc := NewReportService(users, students, logger.Nop())

	report, err := svc.BuildReport(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Praneeth", report.UserProfile.Name)
	assert.Equal(t, "praneeth@example.com", report.UserProfile.Email)

	// the internal owner key never leaves the service
	assert.Zero(t, report.AcademicDetails.UserID)
	assert.Equal(t, "21B81A0501", report.AcademicDetails.RollNumber)

	assert.True(t, report.Eligibility.Eligible)
	assert.Equal(t, "Eligible", report.Eligibility.Status)
	assert.NotEmpty(t, report.Recommendations.Government)
	assert.Equal(t, models.TrendImproved, report.Performance.Trend)
}

func TestBuildReport_UserMissing(t *testing.T) {
	_, students := reportFixtures()
	svc := NewReportService(&mockUserRepository{}, students, logger.Nop())

	_, err := svc.BuildReport(context.Background(), 7)

	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestBuildReport_DetailsMissing(t *testing.T) {
	users, _ := reportFixtures()
	svc := NewReportService(users, &mockStudentRepository{}, logger.Nop())

	_, err := svc.BuildReport(context.Background(), 7)

	assert.ErrorIs(t, err, store.ErrNoStudentDetails)
}
