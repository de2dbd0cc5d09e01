package service

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"project/backend/game"
	"project/backend/models"
)

// RecordScore merges one raw test value into the target profile's scores.
// Only the owner or an admin may write; the value must be a finite,
// non-negative number and the test must exist in the target's cohort table.
func (s *ProgressionService) RecordScore(acting Actor, targetID uuid.UUID, testName string, value float64) error {
	if acting.ID != targetID && !acting.IsAdmin {
		return fmt.Errorf("%w: cannot edit another hunter's scores", ErrPermissionDenied)
	}
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return fmt.Errorf("%w: score must be a finite non-negative number", ErrValidation)
	}

	return s.withProfile(targetID, func(tx *gorm.DB, p *models.Profile) error {
		if _, ok := game.TestByName(p.GameCohort(), testName); !ok {
			return fmt.Errorf("%w: unknown test %q", ErrNotFound, testName)
		}
		if p.RawScores == nil {
			p.RawScores = models.ScoreMap{}
		}
		p.RawScores[testName] = value
		return tx.Model(p).Update("raw_scores", p.RawScores).Error
	})
}

// ClaimQuest is the admin direct-grant path: it marks the quest completed and
// unlocks its reward title. Claiming an already-completed quest is a no-op
// success. Mythic capstones stay locked until the path's regular quests are
// all completed.
func (s *ProgressionService) ClaimQuest(acting Actor, targetID uuid.UUID, questID string) error {
	if !acting.IsAdmin {
		return fmt.Errorf("%w: direct quest grants are admin-only", ErrPermissionDenied)
	}
	quest, ok := game.QuestByID(questID)
	if !ok {
		return fmt.Errorf("%w: quest %q", ErrNotFound, questID)
	}

	return s.withProfile(targetID, func(tx *gorm.DB, p *models.Profile) error {
		completed := p.CompletedSet()
		if completed[quest.ID] {
			return nil
		}
		if quest.IsMythic() {
			path, _ := game.PathForQuest(quest.ID)
			if !game.CanClaimMythic(path, completed) {
				return fmt.Errorf("%w: finish the other %s quests first", ErrLocked, path.Name)
			}
		}
		return grantQuest(tx, p, quest)
	})
}

// grantQuest inserts the completed-quest row and the reward title. Both
// inserts ride the unique (profile, quest) / (profile, title) indexes with
// do-nothing conflict handling, so a repeated grant cannot duplicate rows.
func grantQuest(tx *gorm.DB, p *models.Profile, quest game.Quest) error {
	done := models.CompletedQuest{ProfileID: p.ID, QuestID: quest.ID}
	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&done).Error; err != nil {
		return err
	}
	title := models.UnlockedTitle{
		ProfileID: p.ID,
		Name:      quest.Reward.Name,
		Rarity:    string(quest.Reward.Rarity),
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&title).Error
}

// SetActiveTitle switches the displayed title to one the profile owns.
func (s *ProgressionService) SetActiveTitle(profileID uuid.UUID, titleName string) error {
	return s.withProfile(profileID, func(tx *gorm.DB, p *models.Profile) error {
		for _, t := range p.UnlockedTitles {
			if t.Name == titleName {
				p.ActiveTitle = models.TitleRef{Name: t.Name, Rarity: game.Rarity(t.Rarity)}
				return tx.Model(p).Update("active_title", p.ActiveTitle).Error
			}
		}
		return fmt.Errorf("%w: title %q is not unlocked", ErrNotFound, titleName)
	})
}

// SettingsPatch is a field-wise partial update; nil fields keep their value.
type SettingsPatch struct {
	ScoringEnabled *bool   `json:"scoringEnabled"`
	ThemeOverride  *string `json:"themeOverride"`
}

// UpdateSettings merges the patch into the stored settings.
func (s *ProgressionService) UpdateSettings(profileID uuid.UUID, patch SettingsPatch) error {
	if patch.ThemeOverride != nil && *patch.ThemeOverride != "" && !game.ValidRank(*patch.ThemeOverride) {
		return fmt.Errorf("%w: unknown theme rank %q", ErrValidation, *patch.ThemeOverride)
	}

	return s.withProfile(profileID, func(tx *gorm.DB, p *models.Profile) error {
		if patch.ScoringEnabled != nil {
			p.Settings.ScoringEnabled = *patch.ScoringEnabled
		}
		if patch.ThemeOverride != nil {
			p.Settings.ThemeOverride = *patch.ThemeOverride
		}
		return tx.Model(p).Update("settings", p.Settings).Error
	})
}

// Rename reassigns the profile's unique name. The availability check and the
// update share the profile lock, so two renames to the same name serialize.
func (s *ProgressionService) Rename(profileID uuid.UUID, newName string) error {
	if newName == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}

	return s.withProfile(profileID, func(tx *gorm.DB, p *models.Profile) error {
		var taken int64
		if err := tx.Model(&models.Profile{}).
			Where("name = ? AND id <> ?", newName, p.ID).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return fmt.Errorf("%w: %q", ErrConflict, newName)
		}
		return tx.Model(p).Update("name", newName).Error
	})
}

// UpdateAvatar stores a new avatar reference. Upload mechanics live elsewhere;
// the ledger only keeps the URL.
func (s *ProgressionService) UpdateAvatar(profileID uuid.UUID, url string) error {
	return s.withProfile(profileID, func(tx *gorm.DB, p *models.Profile) error {
		return tx.Model(p).Update("avatar_url", url).Error
	})
}

// UpdatePassword swaps the stored credential hash. Hashing is the caller's
// concern; the ledger never sees the plaintext.
func (s *ProgressionService) UpdatePassword(profileID uuid.UUID, passwordHash string) error {
	if passwordHash == "" {
		return fmt.Errorf("%w: password hash must not be empty", ErrValidation)
	}
	return s.withProfile(profileID, func(tx *gorm.DB, p *models.Profile) error {
		return tx.Model(p).Update("password_hash", passwordHash).Error
	})
}
