package postgres

import (
	"time"

	"Santa/models"

	"gorm.io/gorm"
)

type WishlistItem struct {
	ID          models.ID             `gorm:"primaryKey;size:24;not null" json:"id"`
	UserID      models.ID             `gorm:"size:24;not null;index:idx_wishlist_items_user" json:"user_id"`
	Title       string                `gorm:"size:200;not null" json:"title"`
	Description *string               `gorm:"size:2000" json:"description,omitempty"`
	URL         *string               `gorm:"size:1024" json:"url,omitempty"`
	Status      models.WishlistStatus `gorm:"size:16;not null" json:"status"`
	CreatedAt   time.Time             `json:"created_at"`
}

func (w *WishlistItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID.IsZero() {
		w.ID = models.NewID()
	}
	if w.Status == "" {
		w.Status = models.StatusFree
	}
	return nil
}
