package usecase

import (
	"strconv"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/scorecard"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/report"
)

var factorLabels = map[entity.ScoreFactor]string{
	entity.FactorOverall2025:   "Overall 2025",
	entity.FactorBaseline2023:  "Baseline 2023",
	entity.FactorAirspaceLease: "Airspace Lease",
	entity.FactorEasement:      "Easement",
	entity.FactorTaskForce:     "Task Forces",
	entity.FactorSandbox:       "Sandbox",
	entity.FactorJobs:          "Jobs",
	entity.FactorAirRights:     "Air Rights",
}

// RankScorecard ranks the regions of card and orders them by factor. When
// names is non-nil the ranked regions are then lined up with that list.
func RankScorecard(card entity.Scorecard, factor entity.ScoreFactor, names []string) entity.Scorecard {
	regions := scorecard.Rank(card.Regions)
	if names != nil {
		regions = scorecard.Merge(regions, names)
	}
	card.Regions = scorecard.SortBy(regions, factor)
	return card
}

func scorecardSection(card entity.Scorecard, factor entity.ScoreFactor) report.Section {
	s := report.Section{
		Title:   "State Scorecard",
		Sheet:   "Scorecard",
		Headers: []string{"State", "Rank 2025", "Rank 2023", "Change", factorLabels[factor]},
	}
	for _, r := range card.Regions {
		if !r.HasScore {
			s.Rows = append(s.Rows, []string{r.Name, report.NotAvailable, report.NotAvailable, report.NotAvailable, report.NotAvailable})
			continue
		}
		s.Rows = append(s.Rows, []string{
			r.Name,
			strconv.Itoa(r.Rank2025),
			strconv.Itoa(r.Rank2023),
			strconv.FormatFloat(r.Delta, 'f', 2, 64),
			strconv.FormatFloat(r.Score(factor), 'f', 2, 64),
		})
	}
	return s
}
