package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Procedure struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	Description *string `gorm:"size:255" json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Procedure) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
