package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeRole(t *testing.T) {
	require.Equal(t, RoleStaff, NormalizeRole("staff"))
	require.Equal(t, RoleStaff, NormalizeRole(" STAFF "))
	require.Equal(t, RoleReviewer, NormalizeRole("Reviewer"))
	require.Equal(t, RoleResearcher, NormalizeRole("researcher"))
	require.Equal(t, "", NormalizeRole("admin"))
	require.Equal(t, "", NormalizeRole(""))
}

func TestDashboardPath(t *testing.T) {
	require.Equal(t, "/staff/dashboard", DashboardPath("staff"))
	require.Equal(t, "/reviewer/dashboard", DashboardPath(RoleReviewer))
	require.Equal(t, "/researcher/dashboard", DashboardPath("Researcher"))
	require.Equal(t, "", DashboardPath("nobody"))
}

func TestReporterCandidates(t *testing.T) {
	short := "Jane"
	u := User{Email: "jane.doe@univ.edu", FullName: "Jane Doe", ShortName: &short}

	got := u.ReporterCandidates()
	require.Equal(t, []string{"jane.doe@univ.edu", "Jane Doe", "Jane", "jane.doe"}, got)
}

func TestReporterCandidatesDedupes(t *testing.T) {
	// Short name equal to the local-part (case differences included)
	// appears once.
	short := "JANE"
	u := User{Email: "jane@univ.edu", FullName: "Jane", ShortName: &short}

	got := u.ReporterCandidates()
	require.Equal(t, []string{"jane@univ.edu", "Jane"}, got)
}

func TestAudiencesForRole(t *testing.T) {
	require.ElementsMatch(t, []string{AudienceAll, AudienceStudents}, AudiencesForRole(RoleResearcher))
	require.ElementsMatch(t, []string{AudienceAll, AudienceCommittee}, AudiencesForRole(RoleStaff))
	require.ElementsMatch(t, []string{AudienceAll, AudienceCommittee}, AudiencesForRole(RoleReviewer))
	require.Equal(t, []string{AudienceAll}, AudiencesForRole("unknown"))
}
