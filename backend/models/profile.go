package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"project/backend/game"
)

// ScoreMap stores raw test values keyed by test name as a jsonb column.
type ScoreMap map[string]float64

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		m = ScoreMap{}
	}
	return json.Marshal(m)
}

func (m *ScoreMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// Settings holds the per-profile preferences. ThemeOverride is a rank letter;
// empty means the theme follows the overall rank.
type Settings struct {
	ScoringEnabled bool   `json:"scoringEnabled"`
	ThemeOverride  string `json:"themeOverride,omitempty"`
}

func (s Settings) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *Settings) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// TitleRef is a game.Title persisted as a jsonb column.
type TitleRef game.Title

func (t TitleRef) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *TitleRef) Scan(value interface{}) error {
	return scanJSON(value, t)
}

func scanJSON(value, dest interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	case nil:
		return nil
	default:
		return errors.New("unsupported column type for json scan")
	}
}

// Profile is one hunter's account row plus its progression associations.
type Profile struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"-"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	AvatarURL    string    `json:"avatar_url"`
	ActiveTitle  TitleRef  `gorm:"type:jsonb" json:"active_title"`
	RawScores    ScoreMap  `gorm:"type:jsonb" json:"test_scores"`
	Settings     Settings  `gorm:"type:jsonb" json:"settings"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	Cohort       string    `gorm:"default:male_20_25" json:"cohort"`

	UnlockedTitles  []UnlockedTitle  `gorm:"foreignKey:ProfileID" json:"unlocked_titles"`
	CompletedQuests []CompletedQuest `gorm:"foreignKey:ProfileID" json:"completed_quests"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// HasTitle reports whether the profile owns a title by that name. Requires
// UnlockedTitles to be loaded.
func (p *Profile) HasTitle(name string) bool {
	for _, t := range p.UnlockedTitles {
		if t.Name == name {
			return true
		}
	}
	return false
}

// CompletedSet returns the completed quest ids as a lookup set. Requires
// CompletedQuests to be loaded.
func (p *Profile) CompletedSet() map[string]bool {
	set := make(map[string]bool, len(p.CompletedQuests))
	for _, q := range p.CompletedQuests {
		set[q.QuestID] = true
	}
	return set
}

// GameCohort converts the stored cohort string into its typed form.
func (p *Profile) GameCohort() game.Cohort {
	return game.Cohort(p.Cohort)
}

func (p *Profile) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.ID)
}

// UnlockedTitle is one owned title row.
type UnlockedTitle struct {
	gorm.Model `json:"-"`
	ProfileID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_profile_title;not null" json:"-"`
	Name       string    `gorm:"uniqueIndex:idx_profile_title;not null" json:"name"`
	Rarity     string    `gorm:"not null" json:"rarity"`
}

// CompletedQuest marks one quest id as done for a profile.
type CompletedQuest struct {
	gorm.Model `json:"-"`
	ProfileID  uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_profile_quest;not null" json:"-"`
	QuestID    string    `gorm:"uniqueIndex:idx_profile_quest;not null" json:"quest_id"`
}
