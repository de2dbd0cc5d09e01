package game

import "math"

// TestPercentage converts a raw test value into a percentage in [0, 100].
// Normal standards score value/target; inverse standards score target/value
// so that faster times rate higher. Non-positive values score zero.
func TestPercentage(value float64, std TestStandard) float64 {
	if value <= 0 {
		return 0
	}
	if std.Inverse {
		return math.Min(100, std.Target/value*100)
	}
	return math.Min(100, value/std.Target*100)
}

// RankFromPercentage maps a percentage onto the rank ladder. Band lower
// bounds are inclusive: 85 is already an S, 84.9 still an A.
func RankFromPercentage(percentage float64) Rank {
	switch {
	case percentage >= 85:
		return RankS
	case percentage >= 68:
		return RankA
	case percentage >= 51:
		return RankB
	case percentage >= 34:
		return RankC
	case percentage >= 17:
		return RankD
	default:
		return RankE
	}
}

// AttributeRank averages the percentages of every test in the attribute that
// has a recorded score. Tests without an entry are excluded from the average
// rather than counted as zero; an attribute with no entries at all is (0, E).
func AttributeRank(attributeName string, scores map[string]float64, cohort Cohort) (float64, Rank) {
	attr, ok := AttributeByName(cohort, attributeName)
	if !ok {
		return 0, RankE
	}

	var total float64
	var count int
	for _, test := range attr.Tests {
		if value, recorded := scores[test.Name]; recorded {
			total += TestPercentage(value, test)
			count++
		}
	}
	if count == 0 {
		return 0, RankE
	}

	average := total / float64(count)
	return average, RankFromPercentage(average)
}

// OverallPercentage is the unweighted mean over all attributes of the cohort.
// Unlike the per-test average, every attribute counts, even at zero.
func OverallPercentage(scores map[string]float64, cohort Cohort) float64 {
	var total float64
	for _, name := range AttributeOrder {
		percentage, _ := AttributeRank(name, scores, cohort)
		total += percentage
	}
	return total / float64(len(AttributeOrder))
}

// OverallRank is the rank projection of OverallPercentage.
func OverallRank(scores map[string]float64, cohort Cohort) Rank {
	return RankFromPercentage(OverallPercentage(scores, cohort))
}
