package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/praneeth827/prajju-new-one/internal/service"
	"github.com/praneeth827/prajju-new-one/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDetails_Success(t *testing.T) {
	var gotUserID int64
	student := &mockStudentService{
		upsertDetailsFn: func(_ context.Context, userID int64, req models.StudentDetailsRequest) (models.StudentDetails, error) {
			gotUserID = userID
			assert.Equal(t, "21B81A0501", req.RollNumber)
			assert.Equal(t, "9.0", req.PresentCGPA.String())
			return models.StudentDetails{UserID: userID}, nil
		},
	}
	h := newTestHandler(t, authedMock(), student, &mockReportService{})

	body := `{"roll_number":"21B81A0501","btech_year":3,"gender":"Female",` +
		`"category":"SC","quota_type":"Convener Quota","present_cgpa":"9.0",` +
		`"previous_cgpa":8.6,"attendance":82,"active_backlogs":"No"}`
	rec := doRequest(t, h, http.MethodPost, "/student/details", body, "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Student details saved", envelope.Message)
	assert.Equal(t, int64(7), gotUserID)
}

func TestSaveDetails_ValidationError(t *testing.T) {
	student := &mockStudentService{
		upsertDetailsFn: func(_ context.Context, _ int64, _ models.StudentDetailsRequest) (models.StudentDetails, error) {
			return models.StudentDetails{}, &service.ValidationError{Message: "Missing fields: roll_number"}
		},
	}
	h := newTestHandler(t, authedMock(), student, &mockReportService{})

	rec := doRequest(t, h, http.MethodPost, "/student/details", `{}`, "valid-token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "Missing fields: roll_number", envelope.Message)
}

func TestSaveDetails_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, authedMock(), &mockStudentService{}, &mockReportService{})

	rec := doRequest(t, h, http.MethodPost, "/student/details", `{broken`, "valid-token")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid JSON was passed", decodeEnvelope(t, rec).Message)
}

func TestGetDetails_NoRecord(t *testing.T) {
	h := newTestHandler(t, authedMock(), &mockStudentService{}, &mockReportService{})

	rec := doRequest(t, h, http.MethodGet, "/student/details", "", "valid-token")

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "No student details found", envelope.Message)
}

func TestGetDetails_StripsOwnerKey(t *testing.T) {
	student := &mockStudentService{
		getDetailsFn: func(_ context.Context, userID int64) (models.StudentDetails, error) {
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
				ActiveBacklogs: true,
			}, nil
		},
	}
	h := newTestHandler(t, authedMock(), student, &mockReportService{})

	rec := doRequest(t, h, http.MethodGet, "/student/details", "", "valid-token")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.NotContains(t, body, "user_id")
	assert.Contains(t, body, `"roll_number":"21B81A0501"`)
	assert.Contains(t, body, `"active_backlogs":"Yes"`)
}
