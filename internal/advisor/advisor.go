// Package advisor derives scholarship eligibility, scholarship
// recommendations and a performance analysis from a single student record.
// Every function here is pure: no storage, no clock, no context.
package advisor

import (
	"fmt"
	"math"
	"strings"

	"github.com/praneeth827/prajju-new-one/models"
)

const (
	minCGPA       = 7.5
	minAttendance = 75.0

	// CGPA movement inside the dead band counts as stable.
	trendDeadBand = 0.1
)

// ComputeEligibility checks the record against the scholarship criteria.
// Reasons are appended in a fixed order and the slice is empty exactly
// when the student is eligible.
func ComputeEligibility(d models.StudentDetails) models.Eligibility {
	eligible := d.PresentCGPA > minCGPA &&
		d.PreviousCGPA > minCGPA &&
		d.Attendance >= minAttendance &&
		!bool(d.ActiveBacklogs)

	reasons := []string{}
	if d.PresentCGPA <= minCGPA {
		reasons = append(reasons, fmt.Sprintf("Present CGPA (%g) must be > 7.5", d.PresentCGPA))
	}
	if d.PreviousCGPA <= minCGPA {
		reasons = append(reasons, fmt.Sprintf("Previous CGPA (%g) must be > 7.5", d.PreviousCGPA))
	}
	if d.Attendance < minAttendance {
		reasons = append(reasons, fmt.Sprintf("Attendance (%g%%) must be >= 75%%", d.Attendance))
	}
	if bool(d.ActiveBacklogs) {
		reasons = append(reasons, "No active backlogs allowed")
	}

	status := "Not Eligible"
	if eligible {
		status = "Eligible"
	}

	return models.Eligibility{
		Status:   status,
		Eligible: eligible,
		Reasons:  reasons,
	}
}

// BuildRecommendations matches the record against a fixed rule list. The
// rules are independent and non-exclusive, so a single record can collect
// entries in all three lists.
func BuildRecommendations(d models.StudentDetails) models.Recommendations {
	government := []models.Scholarship{}
	private := []models.Scholarship{}
	merit := []models.Scholarship{}

	merit = append(merit, models.Scholarship{
		Name:        "National Scholarship Portal (NSP)",
		Link:        "https://scholarships.gov.in",
		Description: "Central portal for multiple government scholarships",
	})

	if strings.EqualFold(d.Gender, "female") &&
		strings.Contains(strings.ToLower(d.QuotaType), "convener") {
		government = append(government, models.Scholarship{
			Name:        "Pragati Scholarship (Girls)",
			Link:        "https://www.aicte-pragati-saksham-gov.in/",
			Description: "AICTE scholarship for female students in technical education",
		})
		government = append(government, models.Scholarship{
			Name:        "AICTE Saksham",
			Link:        "https://www.aicte-pragati-saksham-gov.in/",
			Description: "Support for students with special needs; check eligibility",
		})
	}

	switch strings.ToUpper(d.Category) {
	case "SC", "ST":
		government = append(government, models.Scholarship{
			Name:        "Post-Matric Scholarship (SC/ST)",
			Link:        "https://scholarships.gov.in",
			Description: "Financial assistance for SC/ST students",
		})
	case "OBC":
		government = append(government, models.Scholarship{
			Name:        "Post-Matric Scholarship (OBC)",
			Link:        "https://scholarships.gov.in",
			Description: "Financial assistance for OBC students",
		})
	}

	if d.PresentCGPA >= 8.0 {
		merit = append(merit, models.Scholarship{
			Name:        "UGC Merit Scholarship",
			Link:        "https://www.ugc.gov.in/",
			Description: "Merit-based scholarship for high-performing students",
		})
	}
	if d.PresentCGPA >= 8.5 {
		private = append(private, models.Scholarship{
			Name:        "Aditya Birla Scholarship",
			Link:        "https://www.adityabirlascholars.net/",
			Description: "Private merit-based scholarship for engineering students",
		})
	}

	private = append(private, models.Scholarship{
		Name:        "Internshala Internships",
		Link:        "https://internshala.com",
		Description: "Internship portal to enhance profile and employability",
	})

	return models.Recommendations{
		Government: government,
		Private:    private,
		Merit:      merit,
	}
}

// AnalyzePerformance compares present and previous CGPA and classifies
// attendance against the scholarship bar.
func AnalyzePerformance(d models.StudentDetails) models.Performance {
	diff := round2(d.PresentCGPA - d.PreviousCGPA)

	var trend models.Trend
	var message string
	switch {
	case diff > trendDeadBand:
		trend = models.TrendImproved
		message = fmt.Sprintf("CGPA improved by %g", diff)
	case diff < -trendDeadBand:
		trend = models.TrendDeclined
		message = fmt.Sprintf("CGPA declined by %g", math.Abs(diff))
	default:
		trend = models.TrendStable
		message = "CGPA is stable"
	}

	status := models.AttendanceNeedsImprovement
	if d.Attendance >= minAttendance {
		status = models.AttendanceGood
	}

	return models.Performance{
		Trend:            trend,
		Message:          message,
		CGPADifference:   diff,
		AttendanceStatus: status,
		Attendance:       d.Attendance,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
