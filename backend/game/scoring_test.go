package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestPercentageNormal(t *testing.T) {
	std := TestStandard{Name: "Bench Press", Target: 150, Unit: "kg"}

	assert.Equal(t, 0.0, TestPercentage(0, std))
	assert.Equal(t, 0.0, TestPercentage(-10, std))
	assert.InDelta(t, 40.0, TestPercentage(60, std), 0.0001)
	assert.Equal(t, 100.0, TestPercentage(150, std))
	// Capped at 100 even past the target
	assert.Equal(t, 100.0, TestPercentage(300, std))
}

func TestTestPercentageInverse(t *testing.T) {
	std := TestStandard{Name: "100m Sprint", Target: 10.3, Unit: "s", Inverse: true}

	assert.Equal(t, 0.0, TestPercentage(0, std))
	assert.Equal(t, 0.0, TestPercentage(-1, std))
	// Twice the target time is half the score
	assert.InDelta(t, 50.0, TestPercentage(20.6, std), 0.0001)
	assert.Equal(t, 100.0, TestPercentage(10.3, std))
	// Faster than the target still caps at 100
	assert.Equal(t, 100.0, TestPercentage(5, std))
}

func TestTestPercentageBoundsAndMonotonicity(t *testing.T) {
	normal := TestStandard{Name: "Squat", Target: 220, Unit: "kg"}
	inverse := TestStandard{Name: "Pro Agility Shuttle", Target: 4, Unit: "s", Inverse: true}

	values := []float64{0.1, 1, 5, 50, 100, 219, 220, 221, 1000}
	var prevNormal, prevInverse float64
	for i, v := range values {
		pn := TestPercentage(v, normal)
		pi := TestPercentage(v, inverse)
		assert.GreaterOrEqual(t, pn, 0.0)
		assert.LessOrEqual(t, pn, 100.0)
		assert.GreaterOrEqual(t, pi, 0.0)
		assert.LessOrEqual(t, pi, 100.0)
		if i > 0 {
			assert.GreaterOrEqual(t, pn, prevNormal, "normal standards increase with value")
			assert.LessOrEqual(t, pi, prevInverse, "inverse standards decrease with value")
		}
		prevNormal, prevInverse = pn, pi
	}
}

func TestRankFromPercentageBoundaries(t *testing.T) {
	cases := []struct {
		percentage float64
		want       Rank
	}{
		{85.0, RankS},
		{84.9, RankA},
		{68.0, RankA},
		{67.9, RankB},
		{51.0, RankB},
		{50.9, RankC},
		{34.0, RankC},
		{33.9, RankD},
		{17.0, RankD},
		{16.9, RankE},
		{0, RankE},
		{100, RankS},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, RankFromPercentage(tc.percentage), "percentage %.1f", tc.percentage)
	}
}

func TestAttributeRankWorkedExample(t *testing.T) {
	// Bench 60/150 = 40%, Deadlift 60/245 = 24.49%, Squat 0 = 0%
	scores := map[string]float64{
		"Bench Press": 60,
		"Deadlift":    60,
		"Squat":       0,
	}

	percentage, rank := AttributeRank("Strength", scores, CohortMale2025)
	assert.InDelta(t, 21.5, percentage, 0.01)
	assert.Equal(t, RankD, rank)
}

func TestAttributeRankSkipsUnrecordedTests(t *testing.T) {
	// Only Bench Press is recorded; Deadlift and Squat must not drag the
	// average down as zeros.
	scores := map[string]float64{"Bench Press": 150}

	percentage, rank := AttributeRank("Strength", scores, CohortMale2025)
	assert.Equal(t, 100.0, percentage)
	assert.Equal(t, RankS, rank)
}

func TestAttributeRankEmpty(t *testing.T) {
	percentage, rank := AttributeRank("Strength", map[string]float64{}, CohortMale2025)
	assert.Equal(t, 0.0, percentage)
	assert.Equal(t, RankE, rank)

	percentage, rank = AttributeRank("Nonsense", map[string]float64{"Bench Press": 100}, CohortMale2025)
	assert.Equal(t, 0.0, percentage)
	assert.Equal(t, RankE, rank)
}

func TestOverallRankCountsEveryAttribute(t *testing.T) {
	// A perfect Strength alone is diluted by the four empty attributes:
	// 100/5 = 20% overall.
	scores := map[string]float64{
		"Bench Press": 150,
		"Deadlift":    245,
		"Squat":       220,
	}

	assert.InDelta(t, 20.0, OverallPercentage(scores, CohortMale2025), 0.0001)
	assert.Equal(t, RankD, OverallRank(scores, CohortMale2025))
}

func TestOverallRankEmptyScores(t *testing.T) {
	assert.Equal(t, 0.0, OverallPercentage(nil, CohortMale2025))
	assert.Equal(t, RankE, OverallRank(nil, CohortMale2025))
}

func TestCohortTargetsDiffer(t *testing.T) {
	scores := map[string]float64{"Bench Press": 100}

	malePct, _ := AttributeRank("Strength", scores, CohortMale2025)
	femalePct, _ := AttributeRank("Strength", scores, CohortFemale1520)

	assert.InDelta(t, 100.0/150.0*100, malePct, 0.0001)
	assert.Equal(t, 100.0, femalePct)
}

func TestAttributeTablesCoverAllAttributes(t *testing.T) {
	for _, cohort := range []Cohort{CohortMale2025, CohortFemale1520} {
		attrs := Attributes(cohort)
		require.Len(t, attrs, len(AttributeOrder))
		for _, name := range AttributeOrder {
			attr, ok := attrs[name]
			require.True(t, ok, "cohort %s missing %s", cohort, name)
			assert.Equal(t, name, attr.Name)
			assert.NotEmpty(t, attr.Tests)
		}
	}
}
