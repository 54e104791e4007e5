// Package access decides what a user may see of an event.
package access

import (
	"context"

	"Santa/models"
	"Santa/models/postgres"

	"github.com/google/logger"
)

type EventReader interface {
	GetEvent(ctx context.Context, id models.ID) (*postgres.Event, error)
}

type UserReader interface {
	GetUser(ctx context.Context, id models.ID) (*postgres.User, error)
}

// Access is a user's view of one event. Guests is only filled for the owner and guests.
// GuestIDs is the stored guest list as read, in order, including ids whose user
// could not be loaded.
type Access struct {
	models.EventSummary
	IsOwner  bool                 `json:"isOwner"`
	IsGuest  bool                 `json:"isGuest"`
	Guests   []models.UserProfile `json:"guests,omitempty"`
	GuestIDs []models.ID          `json:"-"`
}

type Resolver struct {
	events EventReader
	users  UserReader
}

func NewResolver(events EventReader, users UserReader) *Resolver {
	return &Resolver{events: events, users: users}
}

func (r *Resolver) Resolve(ctx context.Context, userID, eventID string) (*Access, error) {
	uid, err := models.ParseID("UserId", userID)
	if err != nil {
		return nil, err
	}
	eid, err := models.ParseID("EventId", eventID)
	if err != nil {
		return nil, err
	}

	event, err := r.events.GetEvent(ctx, eid)
	if err != nil {
		return nil, err
	}

	a := &Access{
		EventSummary: event.Summary(),
		IsOwner:      event.OwnerID == uid,
		IsGuest:      event.HasGuest(uid),
	}
	if !a.IsOwner && !a.IsGuest {
		return a, nil
	}

	a.GuestIDs = event.GuestIDs()
	a.Guests = make([]models.UserProfile, 0, len(a.GuestIDs))
	for _, gid := range a.GuestIDs {
		u, err := r.users.GetUser(ctx, gid)
		if err != nil {
			logger.Warningf("access: dropping guest %s of event %s: %v", gid, eid, err)
			continue
		}
		a.Guests = append(a.Guests, u.Profile())
	}
	return a, nil
}
