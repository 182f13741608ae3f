package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recheck-api/config"
	"recheck-api/models"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	prev := config.DB
	config.DB = gdb
	t.Cleanup(func() { config.DB = prev })
	return mock
}

func strPtr(s string) *string { return &s }

func TestResolveReporterReportsExactMatch(t *testing.T) {
	mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "protocol_title", "reported_by", "report_submission_date"}).
		AddRow(7, "Study A", "jane@univ.edu", "2026-03-02").
		AddRow(3, "Study B", "Jane Doe", "2026-01-15")
	mock.ExpectQuery("SELECT \\* FROM `deviation_reports`").WillReturnRows(rows)

	user := &models.User{UserID: 12, Email: "jane@univ.edu", FullName: "Jane Doe", ShortName: strPtr("Jane")}
	reports, err := ResolveReporterReports(user)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, 7, reports[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveReporterReportsFallbackSubstring(t *testing.T) {
	mock := setupMockDB(t)

	// Exact match finds nothing; the legacy scan picks up the row whose
	// reported_by embeds the user's short name.
	mock.ExpectQuery("SELECT \\* FROM `deviation_reports`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	legacy := sqlmock.NewRows([]string{"id", "protocol_title", "reported_by"}).
		AddRow(5, "Study C", "Dr. Jane (site 2)").
		AddRow(6, "Study D", "someone else")
	mock.ExpectQuery("SELECT \\* FROM `deviation_reports`").WillReturnRows(legacy)

	user := &models.User{UserID: 12, Email: "jane@univ.edu", FullName: "Jane Smith", ShortName: strPtr("Jane")}
	reports, err := ResolveReporterReports(user)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	require.Equal(t, 5, reports[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterBySubstringIgnoresBlankReportedBy(t *testing.T) {
	reports := []models.DeviationReport{
		{ID: 1, ReportedBy: "   "},
		{ID: 2, ReportedBy: "JANE@univ.edu"},
	}
	out := filterBySubstring(reports, []string{"jane@univ.edu"})
	require.Len(t, out, 1)
	require.Equal(t, 2, out[0].ID)
}
