package advisor

import (
	"testing"

	"github.com/praneeth827/prajju-new-one/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseDetails() models.StudentDetails {
	return models.StudentDetails{
		RollNumber:     "21B81A0501",
		BTechYear:      "3",
		Gender:         "Female",
		Category:       "SC",
		QuotaType:      "Convener Quota",
		PresentCGPA:    9.0,
		PreviousCGPA:   8.6,
		Attendance:     82,
		ActiveBacklogs: false,
	}
}

func TestComputeEligibility_AllCriteriaMet(t *testing.T) {
	got := ComputeEligibility(baseDetails())

	assert.True(t, got.Eligible)
	assert.Equal(t, "Eligible", got.Status)
	assert.Empty(t, got.Reasons)
}

func TestComputeEligibility_BoundaryCGPAIsNotEnough(t *testing.T) {
	d := baseDetails()
	d.PresentCGPA = 7.5

	got := ComputeEligibility(d)

	assert.False(t, got.Eligible)
	assert.Equal(t, "Not Eligible", got.Status)
	require.Len(t, got.Reasons, 1)
	assert.Equal(t, "Present CGPA (7.5) must be > 7.5", got.Reasons[0])
}

func TestComputeEligibility_BoundaryAttendanceIsEnough(t *testing.T) {
	d := baseDetails()
	d.Attendance = 75

	got := ComputeEligibility(d)

	assert.True(t, got.Eligible)
	assert.Empty(t, got.Reasons)
}

func TestComputeEligibility_AllReasonsInOrder(t *testing.T) {
	d := baseDetails()
	d.PresentCGPA = 6.2
	d.PreviousCGPA = 7.0
	d.Attendance = 60
	d.ActiveBacklogs = true

	got := ComputeEligibility(d)

	assert.False(t, got.Eligible)
	assert.Equal(t, []string{
		"Present CGPA (6.2) must be > 7.5",
		"Previous CGPA (7) must be > 7.5",
		"Attendance (60%) must be >= 75%",
		"No active backlogs allowed",
	}, got.Reasons)
}

func TestBuildRecommendations_BaselineEntriesAlwaysPresent(t *testing.T) {
	d := baseDetails()
	d.Gender = "Male"
	d.Category = "General"
	d.QuotaType = "Management Quota"
	d.PresentCGPA = 6.0

	got := BuildRecommendations(d)

	require.Len(t, got.Merit, 1)
	assert.Equal(t, "National Scholarship Portal (NSP)", got.Merit[0].Name)
	require.Len(t, got.Private, 1)
	assert.Equal(t, "Internshala Internships", got.Private[0].Name)
	assert.Empty(t, got.Government)
}

func TestBuildRecommendations_FemaleConvenerSCHighCGPA(t *testing.T) {
	got := BuildRecommendations(baseDetails())

	require.Len(t, got.Government, 3)
	assert.Equal(t, "Pragati Scholarship (Girls)", got.Government[0].Name)
	assert.Equal(t, "AICTE Saksham", got.Government[1].Name)
	assert.Equal(t, "Post-Matric Scholarship (SC/ST)", got.Government[2].Name)

	require.Len(t, got.Merit, 2)
	assert.Equal(t, "UGC Merit Scholarship", got.Merit[1].Name)

	require.Len(t, got.Private, 2)
	assert.Equal(t, "Aditya Birla Scholarship", got.Private[0].Name)
	assert.Equal(t, "Internshala Internships", got.Private[1].Name)
}

func TestBuildRecommendations_CaseInsensitiveMatching(t *testing.T) {
	d := baseDetails()
	d.Gender = "FEMALE"
	d.QuotaType = "CONVENER quota"
	d.Category = "obc"

	got := BuildRecommendations(d)

	require.Len(t, got.Government, 3)
	assert.Equal(t, "Post-Matric Scholarship (OBC)", got.Government[2].Name)
}

func TestBuildRecommendations_UGCWithoutAdityaBirla(t *testing.T) {
	d := baseDetails()
	d.PresentCGPA = 8.2

	got := BuildRecommendations(d)

	require.Len(t, got.Merit, 2)
	assert.Equal(t, "UGC Merit Scholarship", got.Merit[1].Name)
	require.Len(t, got.Private, 1)
	assert.Equal(t, "Internshala Internships", got.Private[0].Name)
}

func TestAnalyzePerformance_Improved(t *testing.T) {
	d := baseDetails()
	d.PresentCGPA = 8.8
	d.PreviousCGPA = 8.0

	got := AnalyzePerformance(d)

	assert.Equal(t, models.TrendImproved, got.Trend)
	assert.Equal(t, "CGPA improved by 0.8", got.Message)
	assert.Equal(t, 0.8, got.CGPADifference)
}

func TestAnalyzePerformance_Declined(t *testing.T) {
	d := baseDetails()
	d.PresentCGPA = 7.0
	d.PreviousCGPA = 8.0

	got := AnalyzePerformance(d)

	assert.Equal(t, models.TrendDeclined, got.Trend)
	assert.Equal(t, "CGPA declined by 1", got.Message)
	assert.Equal(t, -1.0, got.CGPADifference)
}

func TestAnalyzePerformance_DeadBandIsStable(t *testing.T) {
	for _, diff := range []struct {
		present, previous float64
	}{
		{8.0, 8.0},
		{8.1, 8.0},
		{7.9, 8.0},
	} {
		d := baseDetails()
		d.PresentCGPA = diff.present
		d.PreviousCGPA = diff.previous

		got := AnalyzePerformance(d)

		assert.Equal(t, models.TrendStable, got.Trend, "present=%g previous=%g", diff.present, diff.previous)
		assert.Equal(t, "CGPA is stable", got.Message)
	}
}

func TestAnalyzePerformance_DiffRoundedToTwoDecimals(t *testing.T) {
	d := baseDetails()
	d.PresentCGPA = 8.567
	d.PreviousCGPA = 8.0

	got := AnalyzePerformance(d)

	assert.Equal(t, 0.57, got.CGPADifference)
}

func TestAnalyzePerformance_AttendanceStatus(t *testing.T) {
	d := baseDetails()
	d.Attendance = 75
	assert.Equal(t, models.AttendanceGood, AnalyzePerformance(d).AttendanceStatus)

	d.Attendance = 74.9
	got := AnalyzePerformance(d)
	assert.Equal(t, models.AttendanceNeedsImprovement, got.AttendanceStatus)
	assert.Equal(t, 74.9, got.Attendance)
}
