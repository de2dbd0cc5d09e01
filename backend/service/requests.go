package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"project/backend/game"
	"project/backend/models"
)

// SubmitRequest opens a pending title request for the quest's reward. The
// reward is taken from the catalog, never from the caller. Submitting again
// while an identical request is still pending returns the existing request
// instead of stacking duplicates.
func (s *ProgressionService) SubmitRequest(acting Actor, questID string) (*models.TitleRequest, error) {
	quest, ok := game.QuestByID(questID)
	if !ok {
		return nil, fmt.Errorf("%w: quest %q", ErrNotFound, questID)
	}

	var request models.TitleRequest
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		// Submits serialize on the profile row lock like every other ledger
		// mutation; without it two concurrent submits both miss the pending
		// check and both insert.
		if _, err := lockProfile(tx, acting.ID); err != nil {
			return err
		}
		err := tx.Where("profile_id = ? AND quest_id = ? AND status = ?",
			acting.ID, questID, models.RequestPending).
			First(&request).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		request = models.TitleRequest{
			ProfileID:   acting.ID,
			QuestID:     quest.ID,
			TitleName:   quest.Reward.Name,
			TitleRarity: string(quest.Reward.Rarity),
			Status:      models.RequestPending,
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, domainOrPersist(err)
	}
	return &request, nil
}

// ApproveRequest grants the requested quest and title to the requesting
// profile and closes the request. Approval is the authorization: the grant
// skips the admin-only and mythic-gate checks of the direct claim path.
// Only Pending requests can transition; approving twice fails.
func (s *ProgressionService) ApproveRequest(reviewer Actor, requestID uuid.UUID) error {
	if !reviewer.IsAdmin {
		return fmt.Errorf("%w: only admins review requests", ErrPermissionDenied)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		request, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		profile, err := lockProfile(tx, request.ProfileID)
		if err != nil {
			return err
		}
		quest, ok := game.QuestByID(request.QuestID)
		if !ok {
			return fmt.Errorf("%w: quest %q", ErrNotFound, request.QuestID)
		}
		if err := grantQuest(tx, profile, quest); err != nil {
			return err
		}
		return closeRequest(tx, request, models.RequestApproved, reviewer.ID)
	})
	return domainOrPersist(err)
}

// DenyRequest closes the request without touching the ledger.
func (s *ProgressionService) DenyRequest(reviewer Actor, requestID uuid.UUID) error {
	if !reviewer.IsAdmin {
		return fmt.Errorf("%w: only admins review requests", ErrPermissionDenied)
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		request, err := lockRequest(tx, requestID)
		if err != nil {
			return err
		}
		return closeRequest(tx, request, models.RequestDenied, reviewer.ID)
	})
	return domainOrPersist(err)
}

// lockRequest loads the request row FOR UPDATE and enforces the Pending-only
// transition rule.
func lockRequest(tx *gorm.DB, id uuid.UUID) (*models.TitleRequest, error) {
	var request models.TitleRequest
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: request %s", ErrNotFound, id)
		}
		return nil, err
	}
	if request.Status != models.RequestPending {
		return nil, fmt.Errorf("%w: already %s", ErrInvalidTransition, request.Status)
	}
	return &request, nil
}

func closeRequest(tx *gorm.DB, request *models.TitleRequest, status string, reviewerID uuid.UUID) error {
	now := time.Now()
	return tx.Model(request).Updates(map[string]interface{}{
		"status":      status,
		"reviewed_at": &now,
		"reviewed_by": reviewerID,
	}).Error
}

// PendingQuestIDs lists the quest ids the profile has open requests for,
// so the client can grey out the request button. The result is never nil,
// an empty ledger serializes as an empty array.
func (s *ProgressionService) PendingQuestIDs(profileID uuid.UUID) ([]string, error) {
	ids := []string{}
	err := s.DB.Model(&models.TitleRequest{}).
		Where("profile_id = ? AND status = ?", profileID, models.RequestPending).
		Pluck("quest_id", &ids).Error
	if err != nil {
		return nil, persistErr(err)
	}
	return ids, nil
}

// PendingRequestsFor is the admin view of a profile's open requests,
// addressed by name.
func (s *ProgressionService) PendingRequestsFor(targetName string) ([]models.TitleRequest, error) {
	target, err := s.ProfileByName(targetName)
	if err != nil {
		return nil, err
	}

	requests := []models.TitleRequest{}
	err = s.DB.Where("profile_id = ? AND status = ?", target.ID, models.RequestPending).
		Order("created_at ASC").
		Find(&requests).Error
	if err != nil {
		return nil, persistErr(err)
	}
	return requests, nil
}
