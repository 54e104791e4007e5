package storage

import (
	"context"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	alreadyDrawn  = "Already drawed for this event"
	drawNotFound  = "Draw not found or access denied"
	guestsChanged = "Guest list changed during draw, try again"
)

// CommitDraw flips the event's drawn flag and stores every draw in one transaction.
// The flag is only flipped when it is still false and the stored guest list still
// equals guests, the list the draws were generated from. A concurrent commit fails
// with AlreadyDrawn, a guest added or removed meanwhile fails with GuestsChanged, and
// neither leaves rows behind.
func (s *Store) CommitDraw(ctx context.Context, eventID models.ID, guests []models.ID, draws []postgres.Draw) error {
	snapshot := make(pq.StringArray, len(guests))
	for i, g := range guests {
		snapshot[i] = g.String()
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&postgres.Event{}).
			Where("id = ? AND is_drawn = ? AND guests = ?::varchar[]", eventID, false, snapshot).
			Update("is_drawn", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var e postgres.Event
			if err := tx.Select("is_drawn").Where("id = ?", eventID).Take(&e).Error; err != nil {
				return err
			}
			if e.IsDrawn {
				return apperr.NewAlreadyDrawn(alreadyDrawn)
			}
			return apperr.NewGuestsChanged(guestsChanged)
		}
		if len(draws) == 0 {
			return nil
		}
		return tx.Create(&draws).Error
	})
	return classify(err, eventNotFound)
}

// FindDraw returns the draw matching both token and giver. A wrong token and a wrong
// giver are indistinguishable to the caller.
func (s *Store) FindDraw(ctx context.Context, token string, giverID models.ID) (*postgres.Draw, error) {
	var d postgres.Draw
	err := s.db.WithContext(ctx).
		Where("token = ? AND giver_id = ?", token, giverID).
		Take(&d).Error
	if err != nil {
		return nil, classify(err, drawNotFound)
	}
	return &d, nil
}
