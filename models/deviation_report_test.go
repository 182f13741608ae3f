package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDisplayStatus(t *testing.T) {
	r := DeviationReport{}
	require.Equal(t, StatusPendingView, r.DisplayStatus())

	r.Severity = SeverityMinor
	require.Equal(t, StatusReviewed, r.DisplayStatus())

	r.Severity = SeverityMajor
	require.Equal(t, StatusReviewed, r.DisplayStatus())

	// Whitespace-only severity is still unassessed.
	r.Severity = "   "
	require.Equal(t, StatusPendingView, r.DisplayStatus())
}

func TestFeedbackTextFollowsSeverityPath(t *testing.T) {
	r := DeviationReport{
		Review:                   "minor note",
		CorrectiveActionFeedback: "major plan",
	}

	r.Severity = SeverityMinor
	require.Equal(t, "minor note", r.FeedbackText())

	r.Severity = SeverityMajor
	require.Equal(t, "major plan", r.FeedbackText())
}

func TestCanResolve(t *testing.T) {
	cases := []struct {
		name   string
		report DeviationReport
		want   bool
	}{
		{
			name:   "unassessed report",
			report: DeviationReport{Review: "feedback"},
			want:   false,
		},
		{
			name:   "assessed with feedback, no resolution yet",
			report: DeviationReport{Severity: SeverityMinor, Review: "feedback"},
			want:   true,
		},
		{
			name:   "assessed, pending resolution",
			report: DeviationReport{Severity: SeverityMinor, Review: "f", ResolutionStatus: ResolutionPending},
			want:   true,
		},
		{
			name:   "rejected resolution allows resubmission",
			report: DeviationReport{Severity: SeverityMajor, CorrectiveActionFeedback: "f", ResolutionStatus: ResolutionRejected},
			want:   true,
		},
		{
			name:   "resolution in flight",
			report: DeviationReport{Severity: SeverityMinor, Review: "f", ResolutionStatus: ResolutionInProgress},
			want:   false,
		},
		{
			name:   "already resolved",
			report: DeviationReport{Severity: SeverityMinor, Review: "f", ResolutionStatus: ResolutionResolved},
			want:   false,
		},
		{
			name:   "assessed but both feedback fields empty",
			report: DeviationReport{Severity: SeverityMinor},
			want:   false,
		},
		{
			name:   "major path feedback satisfies a minor report too",
			report: DeviationReport{Severity: SeverityMinor, CorrectiveActionFeedback: "f"},
			want:   true,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.report.CanResolve())
		})
	}
}

func TestRequiresResolutionDocs(t *testing.T) {
	r := DeviationReport{Severity: SeverityMajor, CorrectiveActionDocs: CorrectiveDocsRequired}
	require.True(t, r.RequiresResolutionDocs())

	r.CorrectiveActionDocs = CorrectiveNone
	require.False(t, r.RequiresResolutionDocs())

	// Docs flag without major severity never gates.
	r = DeviationReport{Severity: SeverityMinor, CorrectiveActionDocs: CorrectiveDocsRequired}
	require.False(t, r.RequiresResolutionDocs())
}

func TestActionNeeded(t *testing.T) {
	require.Equal(t, ActionCompleted,
		(&DeviationReport{ResolutionStatus: ResolutionResolved}).ActionNeeded())
	require.Equal(t, ActionReviewResponse,
		(&DeviationReport{ResolutionStatus: ResolutionInProgress}).ActionNeeded())
	require.Equal(t, ActionRequired,
		(&DeviationReport{Severity: SeverityMinor, Review: "f"}).ActionNeeded())
	require.Equal(t, ActionRequired,
		(&DeviationReport{Severity: SeverityMinor, Review: "f", ResolutionStatus: ResolutionPending}).ActionNeeded())
	require.Equal(t, ActionViewFeedback,
		(&DeviationReport{}).ActionNeeded())
	require.Equal(t, ActionViewFeedback,
		(&DeviationReport{Severity: SeverityMinor, Review: "f", ResolutionStatus: ResolutionRejected}).ActionNeeded())
}

func TestToListItemDerivations(t *testing.T) {
	r := DeviationReport{
		ID:                            4,
		ProtocolTitle:                 "Study A",
		Severity:                      SeverityMajor,
		CorrectiveActionFeedback:      "fix it",
		ResolutionSupportingDocuments: StringList{"/files/resolutions/a.pdf"},
	}
	item := r.ToListItem()
	require.Equal(t, StatusReviewed, item.Status)
	require.True(t, item.HasFeedback)
	require.Equal(t, 1, item.AttachmentCount)

	// Feedback left over from a prior cycle does not show before assessment.
	r.Severity = ""
	item = r.ToListItem()
	require.Equal(t, StatusPendingView, item.Status)
	require.False(t, item.HasFeedback)
}
