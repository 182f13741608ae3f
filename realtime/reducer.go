package realtime

import "recheck-api/models"

// Apply folds a change event into a loaded page of reports and reports
// whether the caller must re-query.
//
// All three event kinds go through this one reducer. Updates touching a
// row in the window are patched in place with no re-query; inserts and
// deletes change page membership, so they always force a refresh (a
// delete also drops the row immediately so the UI never shows a stale
// record while the refresh runs).
func Apply(window []models.DeviationReport, e Event) ([]models.DeviationReport, bool) {
	switch e.Type {
	case EventUpdate:
		if e.Report == nil {
			return window, true
		}
		for i := range window {
			if window[i].ID == e.ReportID {
				window[i] = *e.Report
				return window, false
			}
		}
		return window, false
	case EventInsert:
		return window, true
	case EventDelete:
		out := window[:0]
		for _, r := range window {
			if r.ID != e.ReportID {
				out = append(out, r)
			}
		}
		return out, true
	default:
		return window, false
	}
}
