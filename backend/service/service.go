// Package service implements the progression engine: ledger commands,
// the title-request workflow and leaderboard aggregation. All mutations go
// through a ProgressionService constructed with an injected database handle;
// there is no package-level state.
package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"project/backend/game"
	"project/backend/models"
)

// ProgressionService owns every ledger mutation and derived view.
type ProgressionService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// Actor is the already-authenticated caller handle. Commands never see
// credentials, only the resolved identity and its admin flag.
type Actor struct {
	ID      uuid.UUID
	Name    string
	IsAdmin bool
}

// ActorFrom derives the command handle from a loaded profile row.
func ActorFrom(p *models.Profile) Actor {
	return Actor{ID: p.ID, Name: p.Name, IsAdmin: p.IsAdmin}
}

// Register creates a fresh ledger: empty scores, default settings and the
// base Hunter title both unlocked and active.
func (s *ProgressionService) Register(name, passwordHash string, cohort game.Cohort) (*models.Profile, error) {
	if name == "" || passwordHash == "" {
		return nil, fmt.Errorf("%w: name and password are required", ErrValidation)
	}
	if !game.ValidCohort(string(cohort)) {
		return nil, fmt.Errorf("%w: unknown cohort %q", ErrValidation, cohort)
	}

	profile := &models.Profile{
		Name:         name,
		PasswordHash: passwordHash,
		ActiveTitle:  models.TitleRef(game.BaseTitle),
		RawScores:    models.ScoreMap{},
		Settings:     models.Settings{},
		Cohort:       string(cohort),
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&models.Profile{}).Where("name = ?", name).Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return fmt.Errorf("%w: %q", ErrConflict, name)
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		base := models.UnlockedTitle{
			ProfileID: profile.ID,
			Name:      game.BaseTitle.Name,
			Rarity:    string(game.BaseTitle.Rarity),
		}
		return tx.Create(&base).Error
	})
	if err != nil {
		return nil, domainOrPersist(err)
	}

	profile.UnlockedTitles = []models.UnlockedTitle{{
		ProfileID: profile.ID,
		Name:      game.BaseTitle.Name,
		Rarity:    string(game.BaseTitle.Rarity),
	}}
	return profile, nil
}

// ProfileByID loads a profile with its titles and completed quests.
func (s *ProgressionService) ProfileByID(id uuid.UUID) (*models.Profile, error) {
	return s.loadProfile("id = ?", id)
}

// ProfileByName loads a profile by its unique name.
func (s *ProgressionService) ProfileByName(name string) (*models.Profile, error) {
	return s.loadProfile("name = ?", name)
}

func (s *ProgressionService) loadProfile(query string, arg interface{}) (*models.Profile, error) {
	var profile models.Profile
	err := s.DB.Preload("UnlockedTitles").Preload("CompletedQuests").
		Where(query, arg).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile", ErrNotFound)
		}
		return nil, persistErr(err)
	}
	return &profile, nil
}

// withProfile runs fn inside a transaction holding a row lock on the target
// profile. The lock is the per-profile serialization point: owner and admin
// writes to the same ledger queue behind it instead of clobbering each other.
// State is always re-read under the lock, never carried between commands.
func (s *ProgressionService) withProfile(targetID uuid.UUID, fn func(tx *gorm.DB, p *models.Profile) error) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := lockProfile(tx, targetID)
		if err != nil {
			return err
		}
		return fn(tx, p)
	})
	return domainOrPersist(err)
}

func lockProfile(tx *gorm.DB, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: profile", ErrNotFound)
		}
		return nil, err
	}
	if err := tx.Where("profile_id = ?", id).Find(&profile.UnlockedTitles).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("profile_id = ?", id).Find(&profile.CompletedQuests).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func persistErr(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}

// domainOrPersist passes typed failures through untouched and classifies
// everything else (driver errors, rollbacks) as a persistence failure.
// Unique-index violations are the exception: a name race that slips past an
// in-transaction check is a permanent conflict, not a retriable failure.
func domainOrPersist(err error) error {
	if err == nil || IsDomainError(err) {
		return err
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return persistErr(err)
}
