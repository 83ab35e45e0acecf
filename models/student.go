package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// YesNo is a boolean that serializes as the literal strings "Yes"/"No",
// matching the wire and snapshot representation of the active-backlogs flag.
type YesNo bool

// MarshalJSON implements json.Marshaler.
func (y YesNo) MarshalJSON() ([]byte, error) {
	if y {
		return json.Marshal("Yes")
	}
	return json.Marshal("No")
}

// UnmarshalJSON implements json.Unmarshaler. Only the exact strings
// "Yes" and "No" are accepted.
func (y *YesNo) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Yes":
		*y = true
	case "No":
		*y = false
	default:
		return fmt.Errorf("invalid Yes/No value: %q", s)
	}
	return nil
}

// String returns "Yes" or "No".
func (y YesNo) String() string {
	if y {
		return "Yes"
	}
	return "No"
}

// StudentDetails is the single academic record owned by one user.
// At most one record exists per user id; an upsert replaces it wholesale.
type StudentDetails struct {
	// UserID links the record to its owner. Internal foreign key,
	// stripped from API responses by handlers.
	UserID int64 `json:"user_id,omitempty"`

	// RollNumber is the institutional roll number.
	RollNumber string `json:"roll_number"`

	// BTechYear is the current programme year (free text, e.g. "3").
	BTechYear string `json:"btech_year"`

	// Gender as submitted; matched case-insensitively by the advisor.
	Gender string `json:"gender"`

	// Category is the reservation category (e.g. SC/ST/OBC/General).
	// Kept free-text; the advisor matches it best-effort.
	Category string `json:"category"`

	// QuotaType is the admission quota, matched case-insensitively
	// against "convener" by the advisor.
	QuotaType string `json:"quota_type"`

	// PresentCGPA is the current cumulative grade-point average (0-10).
	PresentCGPA float64 `json:"present_cgpa"`

	// PreviousCGPA is the prior year's CGPA (0-10).
	PreviousCGPA float64 `json:"previous_cgpa"`

	// Attendance is the attendance percentage (0-100).
	Attendance float64 `json:"attendance"`

	// ActiveBacklogs reports whether the student has outstanding
	// failed or incomplete course requirements.
	ActiveBacklogs YesNo `json:"active_backlogs"`

	// UpdatedAt is refreshed on every upsert.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the StudentDetails model.
func (d StudentDetails) TableName() string {
	return "student_details"
}

// WithoutOwner returns a copy of the record with the internal foreign key
// cleared, suitable for API responses.
func (d StudentDetails) WithoutOwner() StudentDetails {
	d.UserID = 0
	return d
}

// FormValue is a request field that accepts either a JSON string or a JSON
// number and preserves the textual form. Numeric parsing happens later in
// the service layer so that malformed input surfaces as a validation error
// rather than a JSON decoding failure.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = FormValue(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())

	return nil
}

// String returns the raw textual form of the field.
func (v FormValue) String() string { return string(v) }

// StudentDetailsRequest is the inbound payload for the upsert operation.
// All nine fields are required.
type StudentDetailsRequest struct {
	RollNumber     string    `json:"roll_number"`
	BTechYear      FormValue `json:"btech_year"`
	Gender         string    `json:"gender"`
	Category       string    `json:"category"`
	QuotaType      string    `json:"quota_type"`
	PresentCGPA    FormValue `json:"present_cgpa"`
	PreviousCGPA   FormValue `json:"previous_cgpa"`
	Attendance     FormValue `json:"attendance"`
	ActiveBacklogs string    `json:"active_backlogs"`
}
