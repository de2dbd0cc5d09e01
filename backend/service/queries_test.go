package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"project/backend/game"
	"project/backend/models"
)

func TestStatsFollowsAttributeOrder(t *testing.T) {
	profile := &models.Profile{
		RawScores: models.ScoreMap{"Bench Press": 60, "Deadlift": 60, "Squat": 0},
		Cohort:    string(game.CohortMale2025),
	}

	stats := Stats(profile)
	require.Len(t, stats, len(game.AttributeOrder))
	for i, name := range game.AttributeOrder {
		assert.Equal(t, name, stats[i].Name)
	}

	assert.InDelta(t, 21.5, stats[0].Percentage, 0.01)
	assert.Equal(t, game.RankD, stats[0].Rank)
	// Attributes with no recorded tests project to (0, E)
	assert.Equal(t, 0.0, stats[1].Percentage)
	assert.Equal(t, game.RankE, stats[1].Rank)
}

func TestOverallMatchesMeanOfStats(t *testing.T) {
	profile := &models.Profile{
		RawScores: models.ScoreMap{"Bench Press": 150, "Pull-ups": 36},
		Cohort:    string(game.CohortMale2025),
	}

	var sum float64
	for _, s := range Stats(profile) {
		sum += s.Percentage
	}

	percentage, rank := Overall(profile)
	assert.InDelta(t, sum/float64(len(game.AttributeOrder)), percentage, 0.0001)
	assert.Equal(t, game.RankFromPercentage(percentage), rank)
}

func TestThemeOverride(t *testing.T) {
	profile := &models.Profile{
		RawScores: models.ScoreMap{},
		Cohort:    string(game.CohortMale2025),
	}

	// No override: theme follows the overall rank
	assert.Equal(t, game.RankE, Theme(profile))

	profile.Settings.ThemeOverride = "S"
	assert.Equal(t, game.RankS, Theme(profile))

	// A stale invalid override falls back to the overall rank
	profile.Settings.ThemeOverride = "Z"
	assert.Equal(t, game.RankE, Theme(profile))
}
