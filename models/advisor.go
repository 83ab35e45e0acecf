package models

// Scholarship is a single recommendation entry: a named programme with a
// link and a short description.
type Scholarship struct {
	Name        string `json:"name"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Eligibility is the derived scholarship-eligibility decision for one
// student record. Reasons lists every unmet criterion in a fixed order and
// is empty exactly when Eligible is true.
type Eligibility struct {
	// Status is the human-readable form of Eligible:
	// "Eligible" or "Not Eligible".
	Status string `json:"eligibility_status"`

	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

// Recommendations groups matched scholarships into three named lists.
// Within each list, entries keep the order the matching rules appended them.
type Recommendations struct {
	Government []Scholarship `json:"government_scholarships"`
	Private    []Scholarship `json:"private_scholarships"`
	Merit      []Scholarship `json:"merit_scholarships"`
}

// Trend is the qualitative direction of CGPA change between the previous
// and present recorded years.
type Trend string

const (
	TrendImproved Trend = "improved"
	TrendDeclined Trend = "declined"
	TrendStable   Trend = "stable"
)

// AttendanceStatus classifies attendance against the 75% scholarship bar.
type AttendanceStatus string

const (
	AttendanceGood             AttendanceStatus = "good"
	AttendanceNeedsImprovement AttendanceStatus = "needs-improvement"
)

// Performance is the derived performance analysis for one student record.
type Performance struct {
	Trend            Trend            `json:"trend"`
	Message          string           `json:"message"`
	CGPADifference   float64          `json:"cgpa_difference"`
	AttendanceStatus AttendanceStatus `json:"attendance_status"`
	Attendance       float64          `json:"attendance"`
}

// Report is the composite view served by the report endpoint: the user's
// public profile, the academic record (without the internal foreign key),
// and all three derivations. Reports are never partial; if the record is
// missing the whole operation fails instead.
type Report struct {
	UserProfile     Profile         `json:"user_profile"`
	AcademicDetails StudentDetails  `json:"academic_details"`
	Eligibility     Eligibility     `json:"eligibility"`
	Recommendations Recommendations `json:"scholarship_recommendations"`
	Performance     Performance     `json:"performance"`
}
