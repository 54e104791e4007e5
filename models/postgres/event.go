package postgres

import (
	"time"

	"Santa/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

/*
 * 'Event' is a gift exchange. Guests keeps insertion order and always holds the owner.
 * IsDrawn goes from false to true exactly once, in the same transaction that stores the draws.
 */
type Event struct {
	ID              models.ID      `gorm:"primaryKey;size:24;not null" json:"id"`
	OwnerID         models.ID      `gorm:"size:24;not null;index:idx_events_owner" json:"owner_id"`
	Name            string         `gorm:"size:200;not null" json:"name"`
	EventDate       time.Time      `gorm:"not null" json:"event_date"`
	DrawDate        time.Time      `gorm:"not null" json:"draw_date"`
	BackgroundImage *string        `gorm:"size:1024" json:"background_image"`
	Guests          pq.StringArray `gorm:"type:varchar(24)[]" json:"guests"`
	IsDrawn         bool           `gorm:"not null" json:"is_drawn"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID.IsZero() {
		e.ID = models.NewID()
	}
	return nil
}

func (e *Event) HasGuest(id models.ID) bool {
	for _, g := range e.Guests {
		if g == string(id) {
			return true
		}
	}
	return false
}

func (e *Event) GuestIDs() []models.ID {
	ids := make([]models.ID, 0, len(e.Guests))
	for _, g := range e.Guests {
		ids = append(ids, models.ID(g))
	}
	return ids
}

func (e *Event) Summary() models.EventSummary {
	return models.EventSummary{
		ID:              e.ID,
		Name:            e.Name,
		BackgroundImage: e.BackgroundImage,
		EventDate:       e.EventDate,
		DrawDate:        e.DrawDate,
		IsDrawn:         e.IsDrawn,
	}
}
