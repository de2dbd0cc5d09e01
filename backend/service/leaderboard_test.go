package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/backend/game"
	"project/backend/models"
)

func strengthProfile(name string, bench float64) models.Profile {
	return models.Profile{
		Name:      name,
		RawScores: models.ScoreMap{"Bench Press": bench},
		Cohort:    string(game.CohortMale2025),
	}
}

func TestBuildLeaderboardAttributeFilter(t *testing.T) {
	profiles := []models.Profile{
		strengthProfile("Toto", 75),      // 50% -> 5000
		strengthProfile("Edgelord", 150), // 100% -> 10000
		strengthProfile("Lockjaw", 30),   // 20% -> 2000
	}

	entries := BuildLeaderboard(profiles, "Strength")
	require.Len(t, entries, 3)

	assert.Equal(t, "Edgelord", entries[0].Name)
	assert.Equal(t, 10000, entries[0].Score)
	assert.Equal(t, game.RankS, entries[0].Rank)

	assert.Equal(t, "Toto", entries[1].Name)
	assert.Equal(t, 5000, entries[1].Score)
	assert.Equal(t, game.RankC, entries[1].Rank)

	assert.Equal(t, "Lockjaw", entries[2].Name)
	assert.Equal(t, 2000, entries[2].Score)
	assert.Equal(t, game.RankD, entries[2].Rank)
}

func TestBuildLeaderboardTieBreakIsNameAscending(t *testing.T) {
	// Charlie and Bravo tie; ordering must still be deterministic.
	profiles := []models.Profile{
		strengthProfile("Charlie", 97.5),
		strengthProfile("Alpha", 105),
		strengthProfile("Bravo", 97.5),
	}

	entries := BuildLeaderboard(profiles, "Strength")
	require.Len(t, entries, 3)
	assert.Equal(t, "Alpha", entries[0].Name)
	assert.Equal(t, "Bravo", entries[1].Name)
	assert.Equal(t, "Charlie", entries[2].Name)
	assert.Equal(t, entries[1].Score, entries[2].Score)
}

func TestBuildLeaderboardOverall(t *testing.T) {
	// A perfect Strength is worth 100/5 = 20% overall -> 2000.
	full := models.Profile{
		Name: "Edgelord",
		RawScores: models.ScoreMap{
			"Bench Press": 150,
			"Deadlift":    245,
			"Squat":       220,
		},
		Cohort: string(game.CohortMale2025),
	}
	empty := models.Profile{Name: "Toto", RawScores: models.ScoreMap{}, Cohort: string(game.CohortMale2025)}

	entries := BuildLeaderboard([]models.Profile{empty, full}, "")
	require.Len(t, entries, 2)
	assert.Equal(t, "Edgelord", entries[0].Name)
	assert.Equal(t, 2000, entries[0].Score)
	assert.Equal(t, game.RankD, entries[0].Rank)
	assert.Equal(t, "Toto", entries[1].Name)
	assert.Equal(t, 0, entries[1].Score)
	assert.Equal(t, game.RankE, entries[1].Rank)
}

func TestBuildLeaderboardUnknownAttributeFallsBackToOverall(t *testing.T) {
	profiles := []models.Profile{strengthProfile("Edgelord", 150)}

	filtered := BuildLeaderboard(profiles, "Charisma")
	overall := BuildLeaderboard(profiles, "")
	assert.Equal(t, overall, filtered)
}

func TestBuildLeaderboardEmpty(t *testing.T) {
	assert.Empty(t, BuildLeaderboard(nil, ""))
}
