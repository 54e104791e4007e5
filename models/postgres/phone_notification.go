package postgres

import (
	"time"

	"Santa/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/*
 * 'PhoneNotification' is a draw result waiting to be delivered by SMS. The payload
 * holds everything the sender needs (giver, receiver, link, event name). SentAt is
 * set by whatever delivers it.
 */
type PhoneNotification struct {
	ID        models.ID      `gorm:"primaryKey;size:24;not null" json:"id"`
	DrawID    models.ID      `gorm:"size:24;not null;index" json:"draw_id"`
	EventID   models.ID      `gorm:"size:24;not null;index" json:"event_id"`
	Phone     string         `gorm:"size:32;not null" json:"phone"`
	Payload   datatypes.JSON `gorm:"type:jsonb" json:"payload"`
	SentAt    *time.Time     `json:"sent_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

func (p *PhoneNotification) BeforeCreate(tx *gorm.DB) error {
	if p.ID.IsZero() {
		p.ID = models.NewID()
	}
	return nil
}
