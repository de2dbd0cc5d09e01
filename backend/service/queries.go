package service

import (
	"project/backend/game"
	"project/backend/models"
)

// AttributeStat is one row of the derived stats view. Derived values are
// computed on demand and never stored.
type AttributeStat struct {
	Name       string    `json:"name"`
	Percentage float64   `json:"percentage"`
	Rank       game.Rank `json:"rank"`
}

// Stats projects the profile's raw scores into per-attribute percentages and
// ranks, in the canonical attribute order.
func Stats(p *models.Profile) []AttributeStat {
	cohort := p.GameCohort()
	stats := make([]AttributeStat, 0, len(game.AttributeOrder))
	for _, name := range game.AttributeOrder {
		percentage, rank := game.AttributeRank(name, p.RawScores, cohort)
		stats = append(stats, AttributeStat{Name: name, Percentage: percentage, Rank: rank})
	}
	return stats
}

// Overall returns the profile's overall percentage and rank.
func Overall(p *models.Profile) (float64, game.Rank) {
	percentage := game.OverallPercentage(p.RawScores, p.GameCohort())
	return percentage, game.RankFromPercentage(percentage)
}

// Theme is the rank driving the UI theme: the settings override when set,
// otherwise the overall rank.
func Theme(p *models.Profile) game.Rank {
	if p.Settings.ThemeOverride != "" && game.ValidRank(p.Settings.ThemeOverride) {
		return game.Rank(p.Settings.ThemeOverride)
	}
	_, rank := Overall(p)
	return rank
}
