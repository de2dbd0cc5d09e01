package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Title request statuses. Pending is the only non-terminal state.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestDenied   = "denied"
)

// TitleRequest is a non-admin claim on a quest reward awaiting moderation.
// CreatedAt doubles as the requested-at timestamp.
type TitleRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time  `json:"requested_at"`
	UpdatedAt   time.Time  `json:"-"`
	ProfileID   uuid.UUID  `gorm:"type:uuid;index;not null" json:"profile_id"`
	QuestID     string     `gorm:"index;not null" json:"quest_id"`
	TitleName   string     `gorm:"not null" json:"title_name"`
	TitleRarity string     `gorm:"not null" json:"title_rarity"`
	Status      string     `gorm:"default:pending;not null" json:"status"`
	ReviewedAt  *time.Time `json:"reviewed_at,omitempty"`
	ReviewedBy  *uuid.UUID `gorm:"type:uuid" json:"reviewed_by,omitempty"`
}

func (r *TitleRequest) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
