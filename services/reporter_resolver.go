package services

import (
	"fmt"
	"strings"

	"recheck-api/config"
	"recheck-api/models"
)

// ResolveReporterReports returns the deviation reports belonging to the
// given user, newest submission first.
//
// New rows carry reporter_user_id and match directly. Legacy rows were
// keyed on whatever identifier the insert path had at hand (email, full
// name, short name or email local-part), so those are matched against
// the user's candidate identifiers. If the exact match finds nothing, a
// case-insensitive substring scan over unclaimed legacy rows runs as a
// last resort.
func ResolveReporterReports(user *models.User) ([]models.DeviationReport, error) {
	candidates := user.ReporterCandidates()

	var reports []models.DeviationReport
	err := config.DB.
		Where("reporter_user_id = ? OR (reporter_user_id IS NULL AND reported_by IN ?)", user.UserID, candidates).
		Order("report_submission_date DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reports for user %d: %w", user.UserID, err)
	}
	if len(reports) > 0 {
		return reports, nil
	}

	var legacy []models.DeviationReport
	err = config.DB.
		Where("reporter_user_id IS NULL").
		Order("report_submission_date DESC").
		Find(&legacy).Error
	if err != nil {
		return nil, fmt.Errorf("failed to scan legacy reports: %w", err)
	}
	return filterBySubstring(legacy, candidates), nil
}

func filterBySubstring(reports []models.DeviationReport, candidates []string) []models.DeviationReport {
	matched := make([]models.DeviationReport, 0)
	for _, r := range reports {
		reported := strings.ToLower(strings.TrimSpace(r.ReportedBy))
		if reported == "" {
			continue
		}
		for _, c := range candidates {
			c = strings.ToLower(c)
			if strings.Contains(reported, c) || strings.Contains(c, reported) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}
