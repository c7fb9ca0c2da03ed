// Package scorecard ranks states by their drone-readiness scores and merges
// them with a list of map regions.
package scorecard

import (
	"sort"

	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/entity"
)

// Rank assigns 1-based 2025 and 2023 ranks by descending overall score and
// the year-over-year delta. Ties keep workbook order.
func Rank(regions []entity.RegionScore) []entity.RegionScore {
	out := make([]entity.RegionScore, len(regions))
	copy(out, regions)

	assign(out, entity.FactorOverall2025, func(r *entity.RegionScore, rank int) { r.Rank2025 = rank })
	assign(out, entity.FactorBaseline2023, func(r *entity.RegionScore, rank int) { r.Rank2023 = rank })
	for i := range out {
		out[i].Delta = out[i].Score(entity.FactorOverall2025) - out[i].Score(entity.FactorBaseline2023)
	}
	return out
}

func assign(regions []entity.RegionScore, f entity.ScoreFactor, set func(*entity.RegionScore, int)) {
	idx := make([]int, len(regions))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return regions[idx[a]].Score(f) > regions[idx[b]].Score(f)
	})
	for rank, i := range idx {
		set(&regions[i], rank+1)
	}
}

// SortBy orders regions by descending factor score, stable on ties.
func SortBy(regions []entity.RegionScore, f entity.ScoreFactor) []entity.RegionScore {
	out := make([]entity.RegionScore, len(regions))
	copy(out, regions)
	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Score(f) > out[b].Score(f)
	})
	return out
}

// Merge lines regions up with map region names. Names without a score row
// are kept with HasScore false; score rows without a map region are dropped.
func Merge(regions []entity.RegionScore, names []string) []entity.RegionScore {
	byName := make(map[string]entity.RegionScore, len(regions))
	for _, r := range regions {
		byName[r.Name] = r
	}
	out := make([]entity.RegionScore, 0, len(names))
	for _, n := range names {
		r, ok := byName[n]
		if !ok {
			out = append(out, entity.RegionScore{Name: n})
			continue
		}
		r.HasScore = true
		out = append(out, r)
	}
	return out
}

// ParseFactor maps a factor name to a ScoreFactor.
func ParseFactor(s string) (entity.ScoreFactor, bool) {
	for _, f := range entity.ScoreFactors {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}
