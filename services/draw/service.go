// Package draw runs the Secret Santa draw of an event and answers receiver lookups.
package draw

import (
	"context"
	"errors"
	"time"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/services/access"
	"Santa/services/notify"
	"Santa/utils/apperr"

	"github.com/google/logger"
)

const (
	lockTTL        = 30 * time.Second
	commitAttempts = 3
)

type Store interface {
	CommitDraw(ctx context.Context, eventID models.ID, guests []models.ID, draws []postgres.Draw) error
	FindDraw(ctx context.Context, token string, giverID models.ID) (*postgres.Draw, error)
}

type AccessResolver interface {
	Resolve(ctx context.Context, userID, eventID string) (*access.Access, error)
}

type Notifier interface {
	Notify(ctx context.Context, draws []postgres.Draw, event notify.EventContext) notify.Report
}

// Locker serialises draws of the same event across instances. ok is false when
// another holder has the lock.
type Locker interface {
	AcquireDrawLock(ctx context.Context, eventID string, ttl time.Duration) (release func(), ok bool, err error)
}

type Service struct {
	store    Store
	access   AccessResolver
	notifier Notifier
	locker   Locker
}

// NewService builds the draw service. locker may be nil, the commit transaction still
// refuses a second draw on its own.
func NewService(store Store, resolver AccessResolver, notifier Notifier, locker Locker) *Service {
	return &Service{store: store, access: resolver, notifier: notifier, locker: locker}
}

// DrawEvent draws the event on behalf of requesterID, stores the result, notifies the
// givers and returns the draws. When the guest list changes between reading it and
// committing, the draw is regenerated from the new list, up to commitAttempts times.
func (s *Service) DrawEvent(ctx context.Context, eventID, requesterID string) ([]postgres.Draw, error) {
	eid, err := models.ParseID("EventId", eventID)
	if err != nil {
		return nil, err
	}

	a, err := s.drawable(ctx, eid, requesterID)
	if err != nil {
		return nil, err
	}

	if s.locker != nil {
		release, ok, err := s.locker.AcquireDrawLock(ctx, eid.String(), lockTTL)
		switch {
		case err != nil:
			logger.Warningf("draw: lock unavailable for event %s, relying on commit: %v", eid, err)
		case !ok:
			return nil, apperr.NewAlreadyDrawn("Draw already in progress for this event")
		default:
			defer release()
		}
	}

	var draws []postgres.Draw
	for attempt := 1; ; attempt++ {
		draws, err = s.commit(ctx, eid, a)
		if err == nil {
			break
		}
		if !errors.Is(err, apperr.ErrGuestsChanged) || attempt == commitAttempts {
			return nil, err
		}
		logger.Infof("draw: guests of event %s changed during draw, retrying", eid)
		if a, err = s.drawable(ctx, eid, requesterID); err != nil {
			return nil, err
		}
	}
	logger.Infof("draw: event %s drawn with %d participants", eid, len(draws))

	report := s.notifier.Notify(context.WithoutCancel(ctx), draws, notify.EventContext{ID: eid, Name: a.Name})
	logger.Infof("draw: event %s notifications: %s", eid, report)

	return draws, nil
}

// drawable reads the event and checks that requesterID may draw it now.
func (s *Service) drawable(ctx context.Context, eid models.ID, requesterID string) (*access.Access, error) {
	a, err := s.access.Resolve(ctx, requesterID, eid.String())
	if err != nil {
		return nil, err
	}
	if !a.IsOwner {
		return nil, apperr.NewAuthorization("User is not the owner")
	}
	if len(a.Guests) < 2 {
		return nil, apperr.NewInsufficientParticipants("Not enough participants for draw")
	}
	if a.IsDrawn {
		return nil, apperr.NewAlreadyDrawn("Already drawed for this event")
	}
	return a, nil
}

// commit pairs the resolved guests of a and stores the pairs, guarded by the guest
// list a was read with.
func (s *Service) commit(ctx context.Context, eid models.ID, a *access.Access) ([]postgres.Draw, error) {
	participants := make([]models.ID, len(a.Guests))
	for i, g := range a.Guests {
		participants[i] = g.ID
	}
	pairs, err := Generate(participants)
	if err != nil {
		return nil, err
	}

	draws := make([]postgres.Draw, len(pairs))
	for i, p := range pairs {
		draws[i] = postgres.Draw{
			ID:         models.NewID(),
			EventID:    eid,
			GiverID:    p.Giver,
			ReceiverID: p.Receiver,
			Token:      p.Token,
		}
	}

	if err := s.store.CommitDraw(ctx, eid, a.GuestIDs, draws); err != nil {
		return nil, err
	}
	return draws, nil
}
