package postgres

import (
	"time"

	"Santa/models"

	"gorm.io/gorm"
)

/*
 * 'Draw' assigns one giver to one receiver inside an event. Rows are written once
 * by the draw commit and never updated. Token is the secret the giver uses to look
 * up their receiver.
 */
type Draw struct {
	ID         models.ID `gorm:"primaryKey;size:24;not null" json:"id"`
	EventID    models.ID `gorm:"size:24;not null;uniqueIndex:idx_draws_event_giver" json:"event_id"`
	GiverID    models.ID `gorm:"size:24;not null;uniqueIndex:idx_draws_event_giver" json:"giver"`
	ReceiverID models.ID `gorm:"size:24;not null" json:"receiver"`
	Token      string    `gorm:"size:36;not null;uniqueIndex" json:"uuid"`
	CreatedAt  time.Time `json:"created_at"`
}

func (d *Draw) BeforeCreate(tx *gorm.DB) error {
	if d.ID.IsZero() {
		d.ID = models.NewID()
	}
	return nil
}
