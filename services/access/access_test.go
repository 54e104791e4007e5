package access

import (
	"context"
	"errors"
	"testing"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/utils/apperr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEvents map[models.ID]*postgres.Event

func (f fakeEvents) GetEvent(_ context.Context, id models.ID) (*postgres.Event, error) {
	if e, ok := f[id]; ok {
		return e, nil
	}
	return nil, apperr.NewNotFound("Event not found")
}

type fakeUsers map[models.ID]*postgres.User

func (f fakeUsers) GetUser(_ context.Context, id models.ID) (*postgres.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("lookup failed")
}

func setup() (*Resolver, models.ID, []models.ID) {
	owner, g1, g2 := models.NewID(), models.NewID(), models.NewID()
	eventID := models.NewID()
	events := fakeEvents{eventID: {
		ID:      eventID,
		OwnerID: owner,
		Name:    "Noel 2025",
		Guests:  pq.StringArray{owner.String(), g1.String(), g2.String()},
	}}
	users := fakeUsers{
		owner: {ID: owner, FirstName: "Ana"},
		g1:    {ID: g1, FirstName: "Bob"},
		g2:    {ID: g2, FirstName: "Cyd"},
	}
	return NewResolver(events, users), eventID, []models.ID{owner, g1, g2}
}

func TestResolveOwner(t *testing.T) {
	r, eventID, ids := setup()

	a, err := r.Resolve(context.Background(), ids[0].String(), eventID.String())

	require.NoError(t, err)
	assert.True(t, a.IsOwner)
	assert.True(t, a.IsGuest)
	assert.Equal(t, "Noel 2025", a.Name)
	require.Len(t, a.Guests, 3)
	for i, g := range a.Guests {
		assert.Equal(t, ids[i], g.ID)
	}
}

func TestResolveOutsiderGetsSummaryOnly(t *testing.T) {
	r, eventID, _ := setup()

	a, err := r.Resolve(context.Background(), models.NewID().String(), eventID.String())

	require.NoError(t, err)
	assert.False(t, a.IsOwner)
	assert.False(t, a.IsGuest)
	assert.Nil(t, a.Guests)
	assert.Equal(t, eventID, a.ID)
}

func TestResolveDropsUnresolvedGuests(t *testing.T) {
	r, eventID, ids := setup()
	delete(r.users.(fakeUsers), ids[1])

	a, err := r.Resolve(context.Background(), ids[2].String(), eventID.String())

	require.NoError(t, err)
	assert.True(t, a.IsGuest)
	require.Len(t, a.Guests, 2)
	assert.Equal(t, ids[0], a.Guests[0].ID)
	assert.Equal(t, ids[2], a.Guests[1].ID)
	assert.Equal(t, ids, a.GuestIDs)
}

func TestResolveErrors(t *testing.T) {
	r, eventID, ids := setup()

	_, err := r.Resolve(context.Background(), "", eventID.String())
	assert.EqualError(t, err, "UserId is required")

	_, err = r.Resolve(context.Background(), ids[0].String(), "nope")
	assert.EqualError(t, err, "Invalid EventId")
	assert.ErrorIs(t, err, apperr.ErrValidation)

	_, err = r.Resolve(context.Background(), ids[0].String(), models.NewID().String())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "Event not found")
}
