package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	ClientID uuid.UUID `gorm:"type:uuid;index;not null" json:"client_id"`
	Client   *Client   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client,omitempty"`

	ProcedureID uuid.UUID  `gorm:"type:uuid;index;not null" json:"procedure_id"`
	Procedure   *Procedure `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"procedure,omitempty"`

	AppointmentDate time.Time `gorm:"index;not null" json:"appointment_date"`
	Paid            bool      `gorm:"default:false" json:"paid"`
	Status          string    `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes           *string   `gorm:"size:255" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
