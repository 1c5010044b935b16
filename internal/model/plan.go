package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan is a scheduled get-together. Unlike a shareable it can carry several
// priorities, one per participant slot.
type Plan struct {
	ID           uuid.UUID                `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID      uuid.UUID                `json:"ownerId" gorm:"type:char(36);not null;index"`
	Name         string                   `json:"name" gorm:"size:255;not null"`
	Priorities   datatypes.JSONSlice[int] `json:"priorities"`
	GroupSize    int                      `json:"groupSize" gorm:"not null"`
	Participants datatypes.JSON           `json:"participants"`
	Date         *time.Time               `json:"date"`
	Expiration   *time.Time               `json:"expiration"`
	Confirmed    bool                     `json:"confirmed" gorm:"not null;default:false"`
	Archived     bool                     `json:"archived" gorm:"not null;default:false"`
	Repeats      *int                     `json:"repeats"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    time.Time                `json:"updatedAt"`

	Owner *Profile `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Priorities == nil {
		p.Priorities = datatypes.JSONSlice[int]{}
	}
	if len(p.Participants) == 0 {
		p.Participants = datatypes.JSON("[]")
	}
	return nil
}
