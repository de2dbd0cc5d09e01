package service

import (
	"math"
	"sort"

	"project/backend/game"
	"project/backend/models"
)

// LeaderboardEntry is one ranked row. Score is the percentage scaled by 100,
// so 29% shows as 2900.
type LeaderboardEntry struct {
	Name  string    `json:"name"`
	Rank  game.Rank `json:"rank"`
	Score int       `json:"score"`
}

// BuildLeaderboard ranks the given profiles, either on a single attribute or
// on the overall percentage when attribute is empty or unknown. Ordering is
// deterministic: descending score, then ascending name.
func BuildLeaderboard(profiles []models.Profile, attribute string) []LeaderboardEntry {
	entries := make([]LeaderboardEntry, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		percentage, rank := profileScore(p, attribute)
		entries = append(entries, LeaderboardEntry{
			Name:  p.Name,
			Rank:  rank,
			Score: int(math.Round(percentage * 100)),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

func profileScore(p *models.Profile, attribute string) (float64, game.Rank) {
	cohort := p.GameCohort()
	if attribute != "" {
		if _, ok := game.AttributeByName(cohort, attribute); ok {
			return game.AttributeRank(attribute, p.RawScores, cohort)
		}
	}
	percentage := game.OverallPercentage(p.RawScores, cohort)
	return percentage, game.RankFromPercentage(percentage)
}

// Leaderboard builds the board over every stored profile.
func (s *ProgressionService) Leaderboard(attribute string) ([]LeaderboardEntry, error) {
	var profiles []models.Profile
	if err := s.DB.Select("name", "raw_scores", "cohort").Find(&profiles).Error; err != nil {
		return nil, persistErr(err)
	}
	return BuildLeaderboard(profiles, attribute), nil
}
