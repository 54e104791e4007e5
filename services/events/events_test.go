package events

import (
	"context"
	"strings"
	"testing"
	"time"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	events map[models.ID]*postgres.Event
	users  map[models.ID]*postgres.User
}

func newMemStore() *memStore {
	return &memStore{events: map[models.ID]*postgres.Event{}, users: map[models.ID]*postgres.User{}}
}

func (m *memStore) CreateEvent(_ context.Context, e *postgres.Event) error {
	e.ID = models.NewID()
	m.events[e.ID] = e
	return nil
}

func (m *memStore) ListEvents(context.Context) ([]postgres.Event, error) {
	var out []postgres.Event
	for _, e := range m.events {
		out = append(out, *e)
	}
	return out, nil
}

func (m *memStore) AddGuest(_ context.Context, eventID, userID models.ID) (bool, error) {
	e, ok := m.events[eventID]
	if !ok {
		return false, apperr.NewNotFound("Event not found")
	}
	if e.HasGuest(userID) {
		return false, nil
	}
	if e.IsDrawn {
		return false, apperr.NewAlreadyDrawn("Event already drawn, guests are locked")
	}
	e.Guests = append(e.Guests, userID.String())
	return true, nil
}

func (m *memStore) RemoveGuest(_ context.Context, eventID, userID models.ID) error {
	e, ok := m.events[eventID]
	if !ok {
		return apperr.NewNotFound("Event not found")
	}
	if e.OwnerID == userID {
		return apperr.NewValidation("Owner cannot be removed")
	}
	for i, g := range e.Guests {
		if g == userID.String() {
			e.Guests = append(e.Guests[:i], e.Guests[i+1:]...)
			return nil
		}
	}
	return apperr.NewValidation("User is not a guest")
}

func (m *memStore) GetUserInfo(_ context.Context, id models.ID) (*postgres.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, apperr.NewNotFound("User not found")
}

func (m *memStore) GetUserByEmailOrPhone(_ context.Context, email, phone string) (*postgres.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range m.users {
		emailOK := email == "" || (u.Email != nil && *u.Email == email)
		phoneOK := phone == "" || (u.Phone != nil && *u.Phone == phone)
		if emailOK && phoneOK {
			return u, nil
		}
	}
	return nil, apperr.NewNotFound("User not found")
}

func (m *memStore) addUser(email string) *postgres.User {
	u := &postgres.User{ID: models.NewID(), Email: &email}
	m.users[u.ID] = u
	return u
}

func createInput() models.CreateEventInput {
	return models.CreateEventInput{
		Name:      "Noel 2025",
		EventDate: time.Date(2025, 12, 24, 19, 0, 0, 0, time.UTC),
		DrawDate:  time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAddsOwnerAsGuest(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, store)
	owner := models.NewID()

	e, err := svc.Create(context.Background(), owner, createInput())

	require.NoError(t, err)
	assert.Equal(t, owner, e.OwnerID)
	assert.Equal(t, []models.ID{owner}, e.GuestIDs())
	assert.False(t, e.IsDrawn)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].ParticipantsCount)
}

func TestCreateValidation(t *testing.T) {
	svc := NewService(newMemStore(), newMemStore())

	in := createInput()
	in.Name = "  "
	_, err := svc.Create(context.Background(), models.NewID(), in)
	assert.EqualError(t, err, "Name is required")

	in = createInput()
	in.DrawDate = time.Time{}
	_, err = svc.Create(context.Background(), models.NewID(), in)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestJoinIsIdempotent(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, store)
	e, err := svc.Create(context.Background(), models.NewID(), createInput())
	require.NoError(t, err)
	guest := models.NewID()

	require.NoError(t, svc.Join(context.Background(), e.ID.String(), guest))
	require.NoError(t, svc.Join(context.Background(), e.ID.String(), guest))

	assert.Len(t, store.events[e.ID].Guests, 2)
}

func TestJoinDrawnEvent(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, store)
	e, err := svc.Create(context.Background(), models.NewID(), createInput())
	require.NoError(t, err)
	store.events[e.ID].IsDrawn = true

	err = svc.Join(context.Background(), e.ID.String(), models.NewID())

	assert.ErrorIs(t, err, apperr.ErrAlreadyDrawn)
}

func TestRejoinDrawnEventIsNoop(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, store)
	owner := models.NewID()
	e, err := svc.Create(context.Background(), owner, createInput())
	require.NoError(t, err)
	store.events[e.ID].IsDrawn = true

	require.NoError(t, svc.Join(context.Background(), e.ID.String(), owner))
	assert.Len(t, store.events[e.ID].Guests, 1)
}

func TestInviteAndRemove(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, store)
	owner := store.addUser("owner@x.fr")
	bob := store.addUser("bob@x.fr")
	e, err := svc.Create(context.Background(), owner.ID, createInput())
	require.NoError(t, err)

	u, err := svc.Invite(context.Background(), e.ID.String(), models.ContactInput{Email: "BOB@x.fr"})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, u.ID)
	assert.True(t, store.events[e.ID].HasGuest(bob.ID))

	_, err = svc.Remove(context.Background(), e.ID.String(), models.ContactInput{UserID: bob.ID.String()})
	require.NoError(t, err)
	assert.False(t, store.events[e.ID].HasGuest(bob.ID))

	_, err = svc.Remove(context.Background(), e.ID.String(), models.ContactInput{Email: "bob@x.fr"})
	assert.EqualError(t, err, "User is not a guest")

	_, err = svc.Remove(context.Background(), e.ID.String(), models.ContactInput{Email: "owner@x.fr"})
	assert.EqualError(t, err, "Owner cannot be removed")
}

func TestInviteErrors(t *testing.T) {
	store := newMemStore()
	svc := NewService(store, store)
	e, err := svc.Create(context.Background(), models.NewID(), createInput())
	require.NoError(t, err)

	_, err = svc.Invite(context.Background(), e.ID.String(), models.ContactInput{})
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = svc.Invite(context.Background(), e.ID.String(), models.ContactInput{Email: "ghost@x.fr"})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "User not found")

	_, err = svc.Invite(context.Background(), "bad", models.ContactInput{Email: "ghost@x.fr"})
	assert.EqualError(t, err, "Invalid EventId")
}
