package storage

import (
	"context"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"gorm.io/gorm"
)

const (
	eventNotFound = "Event not found"
	guestsLocked  = "Event already drawn, guests are locked"
)

func (s *Store) CreateEvent(ctx context.Context, e *postgres.Event) error {
	return classify(s.db.WithContext(ctx).Create(e).Error, eventNotFound)
}

func (s *Store) GetEvent(ctx context.Context, id models.ID) (*postgres.Event, error) {
	var e postgres.Event
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&e).Error; err != nil {
		return nil, classify(err, eventNotFound)
	}
	return &e, nil
}

func (s *Store) ListEvents(ctx context.Context) ([]postgres.Event, error) {
	var events []postgres.Event
	if err := s.db.WithContext(ctx).Order("event_date").Find(&events).Error; err != nil {
		return nil, classify(err, eventNotFound)
	}
	return events, nil
}

// AddGuest appends userID to the guest list in a single statement. It reports false
// when the user was already a guest, drawn event or not.
func (s *Store) AddGuest(ctx context.Context, eventID, userID models.ID) (bool, error) {
	res := s.db.WithContext(ctx).Model(&postgres.Event{}).
		Where("id = ? AND is_drawn = ? AND NOT (?::varchar = ANY(guests))", eventID, false, userID).
		Update("guests", gorm.Expr("array_append(guests, ?::varchar)", userID))
	if res.Error != nil {
		return false, classify(res.Error, eventNotFound)
	}
	if res.RowsAffected > 0 {
		return true, nil
	}

	e, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return false, err
	}
	if !e.HasGuest(userID) && e.IsDrawn {
		return false, apperr.NewAlreadyDrawn(guestsLocked)
	}
	return false, nil
}

// RemoveGuest drops userID from the guest list. The owner cannot be removed.
func (s *Store) RemoveGuest(ctx context.Context, eventID, userID models.ID) error {
	res := s.db.WithContext(ctx).Model(&postgres.Event{}).
		Where("id = ? AND is_drawn = ? AND owner_id <> ? AND ?::varchar = ANY(guests)", eventID, false, userID, userID).
		Update("guests", gorm.Expr("array_remove(guests, ?::varchar)", userID))
	if res.Error != nil {
		return classify(res.Error, eventNotFound)
	}
	if res.RowsAffected > 0 {
		return nil
	}

	e, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return err
	}
	switch {
	case e.IsDrawn:
		return apperr.NewAlreadyDrawn(guestsLocked)
	case e.OwnerID == userID:
		return apperr.NewValidation("Owner cannot be removed")
	default:
		return apperr.NewValidation("User is not a guest")
	}
}
