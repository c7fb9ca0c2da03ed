package entity

// ScoreFactor names a scored column of the state scorecard workbook.
type ScoreFactor string

const (
	FactorOverall2025   ScoreFactor = "overall_2025"
	FactorBaseline2023  ScoreFactor = "baseline_2023"
	FactorAirspaceLease ScoreFactor = "airspace_lease"
	FactorEasement      ScoreFactor = "easement"
	FactorTaskForce     ScoreFactor = "task_force"
	FactorSandbox       ScoreFactor = "sandbox"
	FactorJobs          ScoreFactor = "jobs"
	FactorAirRights     ScoreFactor = "air_rights"
)

// ScoreFactors lists the factors in workbook order.
var ScoreFactors = []ScoreFactor{
	FactorOverall2025,
	FactorBaseline2023,
	FactorAirspaceLease,
	FactorEasement,
	FactorTaskForce,
	FactorSandbox,
	FactorJobs,
	FactorAirRights,
}

// RegionScore is one state row of the scorecard.
type RegionScore struct {
	Name     string                  `json:"name"`
	Scores   map[ScoreFactor]float64 `json:"scores"`
	Rank2025 int                     `json:"rank_2025"`
	Rank2023 int                     `json:"rank_2023"`
	Delta    float64                 `json:"delta"`
	HasScore bool                    `json:"has_score"`
}

// Score returns the value of f, 0 when absent.
func (r RegionScore) Score(f ScoreFactor) float64 {
	return r.Scores[f]
}

// Scorecard is the ranked list of regions.
type Scorecard struct {
	Sheet   string        `json:"sheet"`
	Regions []RegionScore `json:"regions"`
}
