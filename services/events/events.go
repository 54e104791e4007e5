// Package events manages events and their guest lists.
package events

import (
	"context"
	"strings"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"github.com/google/logger"
	"github.com/lib/pq"
)

type Store interface {
	CreateEvent(ctx context.Context, e *postgres.Event) error
	ListEvents(ctx context.Context) ([]postgres.Event, error)
	AddGuest(ctx context.Context, eventID, userID models.ID) (bool, error)
	RemoveGuest(ctx context.Context, eventID, userID models.ID) error
}

// UserFinder resolves the target of an invitation or removal.
type UserFinder interface {
	GetUserInfo(ctx context.Context, id models.ID) (*postgres.User, error)
	GetUserByEmailOrPhone(ctx context.Context, email, phone string) (*postgres.User, error)
}

type Service struct {
	store Store
	users UserFinder
}

func NewService(store Store, users UserFinder) *Service {
	return &Service{store: store, users: users}
}

// Create stores a new event owned by ownerID, who becomes its first guest.
func (s *Service) Create(ctx context.Context, ownerID models.ID, in models.CreateEventInput) (*postgres.Event, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.NewValidation("Name is required")
	}
	if in.EventDate.IsZero() || in.DrawDate.IsZero() {
		return nil, apperr.NewValidation("Event and draw dates are required")
	}

	e := &postgres.Event{
		OwnerID:         ownerID,
		Name:            name,
		EventDate:       in.EventDate,
		DrawDate:        in.DrawDate,
		BackgroundImage: in.BackgroundImage,
		Guests:          pq.StringArray{ownerID.String()},
	}
	if err := s.store.CreateEvent(ctx, e); err != nil {
		return nil, err
	}
	logger.Infof("events: %s created event %s", ownerID, e.ID)
	return e, nil
}

func (s *Service) List(ctx context.Context) ([]models.EventListItem, error) {
	events, err := s.store.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.EventListItem, 0, len(events))
	for _, e := range events {
		out = append(out, models.EventListItem{
			ID:                e.ID,
			Name:              e.Name,
			BackgroundImage:   e.BackgroundImage,
			EventDate:         e.EventDate,
			ParticipantsCount: len(e.Guests),
		})
	}
	return out, nil
}

// Join adds userID to the guests. Joining twice is a no-op.
func (s *Service) Join(ctx context.Context, eventID string, userID models.ID) error {
	eid, err := models.ParseID("EventId", eventID)
	if err != nil {
		return err
	}
	added, err := s.store.AddGuest(ctx, eid, userID)
	if err != nil {
		return err
	}
	if added {
		logger.Infof("events: %s joined %s", userID, eid)
	}
	return nil
}

func (s *Service) Invite(ctx context.Context, eventID string, contact models.ContactInput) (*postgres.User, error) {
	eid, u, err := s.target(ctx, eventID, contact)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.AddGuest(ctx, eid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Remove(ctx context.Context, eventID string, contact models.ContactInput) (*postgres.User, error) {
	eid, u, err := s.target(ctx, eventID, contact)
	if err != nil {
		return nil, err
	}
	if err := s.store.RemoveGuest(ctx, eid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) target(ctx context.Context, eventID string, contact models.ContactInput) (models.ID, *postgres.User, error) {
	eid, err := models.ParseID("EventId", eventID)
	if err != nil {
		return "", nil, err
	}
	if contact.Empty() {
		return "", nil, apperr.NewValidation("Email or phone is required")
	}

	var u *postgres.User
	if contact.UserID != "" {
		uid, err := models.ParseID("UserId", contact.UserID)
		if err != nil {
			return "", nil, err
		}
		u, err = s.users.GetUserInfo(ctx, uid)
		if err != nil {
			return "", nil, err
		}
	} else {
		u, err = s.users.GetUserByEmailOrPhone(ctx, contact.Email, contact.Phone)
		if err != nil {
			return "", nil, err
		}
	}
	return eid, u, nil
}
