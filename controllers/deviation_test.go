package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"recheck-api/models"
)

func validDeviationFields() map[string]string {
	return map[string]string{
		"protocol_title":        "Study A",
		"protocol_code":         "REC-2026-001",
		"type":                  "Protocol Deviation",
		"deviation_date":        "2026-08-01",
		"deviation_description": "Visit window exceeded",
		"rationale":             "Participant travel",
		"impact":                "None expected",
		"corrective_action":     "Reschedule future visits",
	}
}

func TestSubmitDeviationReportSingleInsert(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `deviation_reports`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	body, ct := multipartBody(t, validDeviationFields())
	c, w := newTestContext(t, http.MethodPost, "/researcher/deviations", body, ct,
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})

	SubmitDeviationReport(c)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), `"reported_by":"jane@univ.edu"`)
	require.Contains(t, w.Body.String(), `"reporter_user_id":12`)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitDeviationReportMissingFields(t *testing.T) {
	setupMockDB(t)

	fields := validDeviationFields()
	delete(fields, "rationale")
	delete(fields, "impact")

	body, ct := multipartBody(t, fields)
	c, w := newTestContext(t, http.MethodPost, "/researcher/deviations", body, ct,
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})

	SubmitDeviationReport(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Rationale")
	require.Contains(t, w.Body.String(), "Impact assessment")
}

func TestSubmitDeviationReportBadDate(t *testing.T) {
	setupMockDB(t)

	fields := validDeviationFields()
	fields["deviation_date"] = "01/08/2026"

	body, ct := multipartBody(t, fields)
	c, w := newTestContext(t, http.MethodPost, "/researcher/deviations", body, ct,
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})

	SubmitDeviationReport(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "YYYY-MM-DD")
}

func TestGetDeviationReportsMapsDerivedStatus(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "protocol_title", "severity", "review"}).
		AddRow(1, "Study A", models.SeverityMinor, "looks fine").
		AddRow(2, "Study B", "", "")
	mock.ExpectQuery("SELECT \\* FROM `deviation_reports`").WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodGet, "/staff/deviations", nil, "",
		testIdentity{userID: 1, email: "staff@univ.edu", role: models.RoleStaff})

	GetDeviationReports(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), models.StatusReviewed)
	require.Contains(t, w.Body.String(), models.StatusPendingView)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDeviationReportForbiddenForOtherResearcher(t *testing.T) {
	mock := setupMockDB(t)

	other := 99
	rows := sqlmock.NewRows([]string{"id", "protocol_title", "reporter_user_id"}).
		AddRow(7, "Study A", other)
	mock.ExpectQuery("SELECT \\* FROM `deviation_reports`").WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodGet, "/researcher/deviations/7", nil, "",
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})
	c.Params = gin.Params{{Key: "id", Value: "7"}}

	GetDeviationReport(c)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
