package controllers

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"recheck-api/forms"
	"recheck-api/models"
)

func TestGetFormsListsCatalog(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/forms", nil, "",
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})

	GetForms(c)

	require.Equal(t, http.StatusOK, w.Code)
	for _, def := range forms.Catalog {
		require.Contains(t, w.Body.String(), def.ID)
	}
}

func TestGetFormNotFound(t *testing.T) {
	c, w := newTestContext(t, http.MethodGet, "/forms/nope", nil, "",
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})
	c.Params = gin.Params{{Key: "id", Value: "nope"}}

	GetForm(c)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitFormValidationFailure(t *testing.T) {
	setupMockDB(t)

	body, ct := jsonBody(`{"values":{"protocol_title":"Study A"}}`)
	c, w := newTestContext(t, http.MethodPost, "/researcher/forms/progress-report/submissions", body, ct,
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})
	c.Params = gin.Params{{Key: "id", Value: "progress-report"}}

	SubmitForm(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Validation failed")
	require.Contains(t, w.Body.String(), "rec_reference_number")
}

func TestGetFormSubmissionCountsIncludesZeroForms(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"form_id", "count"}).
		AddRow("progress-report", 4)
	mock.ExpectQuery("SELECT form_id, COUNT\\(\\*\\) AS count FROM `form_submissions`").
		WillReturnRows(rows)

	c, w := newTestContext(t, http.MethodGet, "/forms/submission-counts", nil, "",
		testIdentity{userID: 12, email: "jane@univ.edu", role: models.RoleResearcher})

	GetFormSubmissionCounts(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"form_id":"progress-report","count":4`)
	// Forms with no submissions still appear with a zero count.
	require.Contains(t, w.Body.String(), `"form_id":"protocol-final-report","count":0`)
	require.NoError(t, mock.ExpectationsWereMet())
}
