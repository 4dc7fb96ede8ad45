package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client belongs to exactly one owner. Inactive clients keep their
// history but are not offered when booking.
type Client struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name      string     `gorm:"size:100;not null" json:"name"`
	Email     string     `gorm:"size:100;not null" json:"email"`
	Phone     *string    `gorm:"size:20" json:"phone,omitempty"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Address   *string    `gorm:"size:255" json:"address,omitempty"`

	Active           bool `gorm:"default:true" json:"active"`
	RescheduledCount int  `gorm:"default:0" json:"rescheduled_count"`
	CancelledCount   int  `gorm:"default:0" json:"cancelled_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Client) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
