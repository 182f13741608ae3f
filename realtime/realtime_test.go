package realtime

import (
	"testing"

	"github.com/stretchr/testify/require"

	"recheck-api/models"
)

func TestApplyUpdatePatchesInPlace(t *testing.T) {
	window := []models.DeviationReport{
		{ID: 1, Severity: ""},
		{ID: 2, Severity: ""},
	}
	updated := models.DeviationReport{ID: 2, Severity: models.SeverityMajor}

	out, requery := Apply(window, Event{Type: EventUpdate, ReportID: 2, Report: &updated})
	require.False(t, requery)
	require.Equal(t, models.SeverityMajor, out[1].Severity)
	require.Equal(t, 1, out[0].ID)
}

func TestApplyUpdateOutsideWindowIsNoop(t *testing.T) {
	window := []models.DeviationReport{{ID: 1}}
	updated := models.DeviationReport{ID: 99}

	out, requery := Apply(window, Event{Type: EventUpdate, ReportID: 99, Report: &updated})
	require.False(t, requery)
	require.Len(t, out, 1)
}

func TestApplyInsertForcesRequery(t *testing.T) {
	window := []models.DeviationReport{{ID: 1}}
	_, requery := Apply(window, Event{Type: EventInsert, ReportID: 5, Report: &models.DeviationReport{ID: 5}})
	require.True(t, requery)
}

func TestApplyDeleteDropsRowAndForcesRequery(t *testing.T) {
	window := []models.DeviationReport{{ID: 1}, {ID: 2}, {ID: 3}}
	out, requery := Apply(window, Event{Type: EventDelete, ReportID: 2})
	require.True(t, requery)
	require.Len(t, out, 2)
	for _, r := range out {
		require.NotEqual(t, 2, r.ID)
	}
}

func TestHubPublishFanout(t *testing.T) {
	h := NewHub()
	ch1, cancel1 := h.Subscribe()
	ch2, cancel2 := h.Subscribe()
	defer cancel1()
	defer cancel2()

	h.PublishUpdate(&models.DeviationReport{ID: 4})

	e1 := <-ch1
	e2 := <-ch2
	require.Equal(t, EventUpdate, e1.Type)
	require.Equal(t, 4, e1.ReportID)
	require.Equal(t, 4, e2.ReportID)
}

func TestHubCancelStopsDelivery(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe()
	cancel()

	// Publishing after cancel must not panic on the closed channel.
	h.PublishDelete(9)
	_, open := <-ch
	require.False(t, open)
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe()
	defer cancel()

	for i := 0; i < subscriberBuffer*2; i++ {
		h.PublishInsert(&models.DeviationReport{ID: i})
	}
	// Reaching here without deadlock is the assertion.
}
