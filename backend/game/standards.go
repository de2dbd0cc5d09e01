// Package game holds the static progression reference data (cohort test
// standards, mission catalog) and the pure scoring math on top of it.
// Nothing in this package touches the database.
package game

// Rank is the letter grade derived from a percentage score.
type Rank string

const (
	RankE Rank = "E"
	RankD Rank = "D"
	RankC Rank = "C"
	RankB Rank = "B"
	RankA Rank = "A"
	RankS Rank = "S"
)

// RankColors maps ranks to their UI accent colors.
var RankColors = map[Rank]string{
	RankS: "#ff2a57",
	RankA: "#ffe597",
	RankB: "#8247ff",
	RankC: "#00abff",
	RankD: "#2aff5f",
	RankE: "#ffffff",
}

// ValidRank reports whether s is one of the six rank letters.
func ValidRank(s string) bool {
	_, ok := RankColors[Rank(s)]
	return ok
}

// Cohort selects which test-target table applies to a profile.
type Cohort string

const (
	CohortMale2025   Cohort = "male_20_25"
	CohortFemale1520 Cohort = "female_15_20"
)

// CohortLabels maps cohorts to their display names.
var CohortLabels = map[Cohort]string{
	CohortMale2025:   "Male: 20 - 25 years old",
	CohortFemale1520: "Female: 15 - 20 years old",
}

// ValidCohort reports whether s names a known cohort.
func ValidCohort(s string) bool {
	_, ok := CohortLabels[Cohort(s)]
	return ok
}

// TestStandard defines one physical test. Target is the raw value worth 100%.
// Inverse marks timed events where lower raw values are better.
type TestStandard struct {
	Name    string  `json:"name"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
	Inverse bool    `json:"inverse,omitempty"`
}

// Attribute groups the tests whose percentages average into one rank.
type Attribute struct {
	Name  string         `json:"name"`
	Tests []TestStandard `json:"tests"`
}

// AttributeOrder is the canonical attribute iteration order. Keep this stable
// because clients render stats in this order.
var AttributeOrder = []string{"Strength", "Endurance", "Stamina", "Speed", "Agility"}

var male2025Targets = map[string]Attribute{
	"Strength": {
		Name: "Strength",
		Tests: []TestStandard{
			{Name: "Bench Press", Target: 150, Unit: "kg"},
			{Name: "Deadlift", Target: 245, Unit: "kg"},
			{Name: "Squat", Target: 220, Unit: "kg"},
		},
	},
	"Endurance": {
		Name: "Endurance",
		Tests: []TestStandard{
			{Name: "Pull-ups", Target: 36, Unit: "reps"},
			{Name: "Push-ups", Target: 47, Unit: "reps"},
		},
	},
	"Stamina": {
		Name: "Stamina",
		Tests: []TestStandard{
			{Name: "Plank Hold", Target: 15, Unit: "min"},
			{Name: "Burpees", Target: 91, Unit: "reps"},
			{Name: "1-mile run", Target: 6.3, Unit: "min", Inverse: true},
		},
	},
	"Speed": {
		Name: "Speed",
		Tests: []TestStandard{
			{Name: "100m Sprint", Target: 10.3, Unit: "s", Inverse: true},
			{Name: "40-yard Dash", Target: 4.2, Unit: "s", Inverse: true},
		},
	},
	"Agility": {
		Name: "Agility",
		Tests: []TestStandard{
			{Name: "Pro Agility Shuttle", Target: 4, Unit: "s", Inverse: true},
		},
	},
}

var female1520Targets = map[string]Attribute{
	"Strength": {
		Name: "Strength",
		Tests: []TestStandard{
			{Name: "Bench Press", Target: 100, Unit: "kg"},
			{Name: "Deadlift", Target: 150, Unit: "kg"},
			{Name: "Squat", Target: 120, Unit: "kg"},
		},
	},
	"Endurance": {
		Name: "Endurance",
		Tests: []TestStandard{
			{Name: "Pull-ups", Target: 10, Unit: "reps"},
			{Name: "Push-ups", Target: 30, Unit: "reps"},
		},
	},
	"Stamina": {
		Name: "Stamina",
		Tests: []TestStandard{
			{Name: "Plank Hold", Target: 15, Unit: "min"},
			{Name: "Burpees", Target: 73, Unit: "reps"},
			{Name: "1-mile run", Target: 7.5, Unit: "min", Inverse: true},
		},
	},
	"Speed": {
		Name: "Speed",
		Tests: []TestStandard{
			{Name: "100m Sprint", Target: 10.9, Unit: "s", Inverse: true},
			{Name: "40-yard Dash", Target: 5, Unit: "s", Inverse: true},
		},
	},
	"Agility": {
		Name: "Agility",
		Tests: []TestStandard{
			{Name: "Pro Agility Shuttle", Target: 10, Unit: "s", Inverse: true},
		},
	},
}

// Attributes returns the attribute table for the given cohort. Unknown
// cohorts fall back to the male 20-25 table, matching the original defaults.
func Attributes(cohort Cohort) map[string]Attribute {
	if cohort == CohortFemale1520 {
		return female1520Targets
	}
	return male2025Targets
}

// AttributeByName looks up one attribute in the cohort's table.
func AttributeByName(cohort Cohort, name string) (Attribute, bool) {
	attr, ok := Attributes(cohort)[name]
	return attr, ok
}

// TestByName finds the standard for a single test within the cohort's table.
func TestByName(cohort Cohort, name string) (TestStandard, bool) {
	for _, attr := range Attributes(cohort) {
		for _, t := range attr.Tests {
			if t.Name == name {
				return t, true
			}
		}
	}
	return TestStandard{}, false
}
