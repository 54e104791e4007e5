package draw

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"Santa/models"
	"Santa/models/postgres"
	"Santa/services/access"
	"Santa/services/notify"
	"Santa/utils/apperr"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore keeps events, users and draws in memory and applies the same
// compare-and-set as the database commit.
type memStore struct {
	mu        sync.Mutex
	events    map[models.ID]*postgres.Event
	users     map[models.ID]*postgres.User
	draws     []postgres.Draw
	commitErr error
	commits   int
	// beforeCommit runs ahead of every commit, outside the lock.
	beforeCommit func(eventID models.ID)
}

func newMemStore() *memStore {
	return &memStore{events: map[models.ID]*postgres.Event{}, users: map[models.ID]*postgres.User{}}
}

func (m *memStore) GetEvent(_ context.Context, id models.ID) (*postgres.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.events[id]
	if !ok {
		return nil, apperr.NewNotFound("Event not found")
	}
	cp := *e
	cp.Guests = append(pq.StringArray(nil), e.Guests...)
	return &cp, nil
}

func (m *memStore) GetUser(_ context.Context, id models.ID) (*postgres.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, apperr.NewNotFound("User not found")
	}
	return u, nil
}

func (m *memStore) CommitDraw(_ context.Context, eventID models.ID, guests []models.ID, draws []postgres.Draw) error {
	if m.beforeCommit != nil {
		m.beforeCommit(eventID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commits++
	if m.commitErr != nil {
		return m.commitErr
	}
	e := m.events[eventID]
	if e.IsDrawn {
		return apperr.NewAlreadyDrawn("Already drawed for this event")
	}
	if !slices.Equal(e.GuestIDs(), guests) {
		return apperr.NewGuestsChanged("Guest list changed during draw, try again")
	}
	e.IsDrawn = true
	m.draws = append(m.draws, draws...)
	return nil
}

// join adds a fresh user to the event the way a concurrent join request would.
func (m *memStore) join(eventID models.ID) models.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := models.NewID()
	m.users[id] = &postgres.User{ID: id, FirstName: "late"}
	m.events[eventID].Guests = append(m.events[eventID].Guests, id.String())
	return id
}

func (m *memStore) FindDraw(_ context.Context, token string, giverID models.ID) (*postgres.Draw, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.draws {
		if d.Token == token && d.GiverID == giverID {
			return &d, nil
		}
	}
	return nil, apperr.NewNotFound("Draw not found or access denied")
}

func (m *memStore) addEvent(owner models.ID, guests ...models.ID) models.ID {
	id := models.NewID()
	all := pq.StringArray{owner.String()}
	for _, g := range guests {
		all = append(all, g.String())
	}
	for _, g := range append([]models.ID{owner}, guests...) {
		m.users[g] = &postgres.User{ID: g, FirstName: "user-" + g.String()[20:]}
	}
	m.events[id] = &postgres.Event{ID: id, OwnerID: owner, Name: "Noel", Guests: all}
	return id
}

type countingNotifier struct {
	mu    sync.Mutex
	calls [][]postgres.Draw
}

func (c *countingNotifier) Notify(_ context.Context, draws []postgres.Draw, _ notify.EventContext) notify.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, draws)
	return notify.Report{Emailed: len(draws)}
}

type stubLocker struct {
	busy     bool
	err      error
	released bool
}

func (l *stubLocker) AcquireDrawLock(context.Context, string, time.Duration) (func(), bool, error) {
	if l.err != nil {
		return nil, false, l.err
	}
	if l.busy {
		return nil, false, nil
	}
	return func() { l.released = true }, true, nil
}

func newTestService(store *memStore, locker Locker) (*Service, *countingNotifier) {
	n := &countingNotifier{}
	return NewService(store, access.NewResolver(store, store), n, locker), n
}

func TestDrawEventThreeGuests(t *testing.T) {
	store := newMemStore()
	owner, b, c := models.NewID(), models.NewID(), models.NewID()
	eventID := store.addEvent(owner, b, c)
	svc, notifier := newTestService(store, nil)

	draws, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

	require.NoError(t, err)
	require.Len(t, draws, 3)
	givers := map[models.ID]bool{}
	for _, d := range draws {
		assert.Equal(t, eventID, d.EventID)
		assert.NotEqual(t, d.GiverID, d.ReceiverID)
		assert.True(t, models.IsValidID(d.ID.String()))
		givers[d.GiverID] = true
	}
	assert.Len(t, givers, 3)
	assert.True(t, store.events[eventID].IsDrawn)
	assert.Len(t, store.draws, 3)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, draws, notifier.calls[0])
}

func TestDrawEventTwice(t *testing.T) {
	store := newMemStore()
	owner, b, c := models.NewID(), models.NewID(), models.NewID()
	eventID := store.addEvent(owner, b, c)
	svc, notifier := newTestService(store, nil)

	_, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())
	require.NoError(t, err)

	_, err = svc.DrawEvent(context.Background(), eventID.String(), owner.String())

	assert.ErrorIs(t, err, apperr.ErrAlreadyDrawn)
	assert.EqualError(t, err, "Already drawed for this event")
	assert.Len(t, store.draws, 3)
	assert.Len(t, notifier.calls, 1)
}

func TestDrawEventConcurrentRequestsDrawOnce(t *testing.T) {
	store := newMemStore()
	owner := models.NewID()
	eventID := store.addEvent(owner, models.NewID(), models.NewID(), models.NewID())
	svc, _ := newTestService(store, nil)

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.DrawEvent(context.Background(), eventID.String(), owner.String())
		}(i)
	}
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, apperr.ErrAlreadyDrawn)
	}
	assert.Equal(t, 1, ok)
	assert.Len(t, store.draws, 4)
}

func TestDrawEventGuestJoinsMidDraw(t *testing.T) {
	store := newMemStore()
	owner, b, c := models.NewID(), models.NewID(), models.NewID()
	eventID := store.addEvent(owner, b, c)
	var late models.ID
	store.beforeCommit = func(id models.ID) {
		if late.IsZero() {
			late = store.join(id)
		}
	}
	svc, notifier := newTestService(store, nil)

	draws, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

	require.NoError(t, err)
	require.Len(t, draws, 4)
	assert.Equal(t, 2, store.commits)
	givers, receivers := map[models.ID]bool{}, map[models.ID]bool{}
	for _, d := range draws {
		givers[d.GiverID] = true
		receivers[d.ReceiverID] = true
	}
	assert.True(t, givers[late])
	assert.True(t, receivers[late])
	assert.Len(t, store.draws, 4)
	require.Len(t, notifier.calls, 1)
	assert.Len(t, notifier.calls[0], 4)
}

func TestDrawEventGuestListKeepsMoving(t *testing.T) {
	store := newMemStore()
	owner := models.NewID()
	eventID := store.addEvent(owner, models.NewID())
	store.beforeCommit = func(id models.ID) { store.join(id) }
	svc, notifier := newTestService(store, nil)

	_, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

	assert.ErrorIs(t, err, apperr.ErrGuestsChanged)
	assert.Equal(t, commitAttempts, store.commits)
	assert.False(t, store.events[eventID].IsDrawn)
	assert.Empty(t, store.draws)
	assert.Empty(t, notifier.calls)
}

func TestDrawEventSingleGuest(t *testing.T) {
	store := newMemStore()
	owner := models.NewID()
	eventID := store.addEvent(owner)
	svc, notifier := newTestService(store, nil)

	_, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

	assert.ErrorIs(t, err, apperr.ErrInsufficientParticipants)
	assert.EqualError(t, err, "Not enough participants for draw")
	assert.False(t, store.events[eventID].IsDrawn)
	assert.Empty(t, store.draws)
	assert.Empty(t, notifier.calls)
}

func TestDrawEventRequiresOwner(t *testing.T) {
	store := newMemStore()
	owner, guest := models.NewID(), models.NewID()
	eventID := store.addEvent(owner, guest)
	svc, _ := newTestService(store, nil)

	_, err := svc.DrawEvent(context.Background(), eventID.String(), guest.String())

	assert.ErrorIs(t, err, apperr.ErrAuthorization)
	assert.Empty(t, store.draws)
}

func TestDrawEventValidation(t *testing.T) {
	svc, _ := newTestService(newMemStore(), nil)

	_, err := svc.DrawEvent(context.Background(), "", models.NewID().String())
	assert.EqualError(t, err, "EventId is required")

	_, err = svc.DrawEvent(context.Background(), "abc", models.NewID().String())
	assert.EqualError(t, err, "Invalid EventId")

	_, err = svc.DrawEvent(context.Background(), models.NewID().String(), models.NewID().String())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestDrawEventStorageFailure(t *testing.T) {
	store := newMemStore()
	owner := models.NewID()
	eventID := store.addEvent(owner, models.NewID())
	store.commitErr = apperr.NewStorage(errors.New("pq: could not serialize access"))
	svc, notifier := newTestService(store, nil)

	_, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

	assert.ErrorIs(t, err, apperr.ErrStorage)
	assert.EqualError(t, err, "pq: could not serialize access")
	assert.Empty(t, notifier.calls)
}

func TestDrawEventLock(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		store := newMemStore()
		owner := models.NewID()
		eventID := store.addEvent(owner, models.NewID())
		svc, _ := newTestService(store, &stubLocker{busy: true})

		_, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

		assert.ErrorIs(t, err, apperr.ErrAlreadyDrawn)
		assert.False(t, store.events[eventID].IsDrawn)
	})

	t.Run("released after draw", func(t *testing.T) {
		store := newMemStore()
		owner := models.NewID()
		eventID := store.addEvent(owner, models.NewID())
		locker := &stubLocker{}
		svc, _ := newTestService(store, locker)

		_, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

		require.NoError(t, err)
		assert.True(t, locker.released)
	})

	t.Run("redis down still draws", func(t *testing.T) {
		store := newMemStore()
		owner := models.NewID()
		eventID := store.addEvent(owner, models.NewID())
		svc, _ := newTestService(store, &stubLocker{err: errors.New("dial tcp: connection refused")})

		draws, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())

		require.NoError(t, err)
		assert.Len(t, draws, 2)
	})
}

func TestGetReceiver(t *testing.T) {
	store := newMemStore()
	owner, b := models.NewID(), models.NewID()
	eventID := store.addEvent(owner, b)
	svc, _ := newTestService(store, nil)
	draws, err := svc.DrawEvent(context.Background(), eventID.String(), owner.String())
	require.NoError(t, err)
	d := draws[0]

	got, err := svc.GetReceiver(context.Background(), d.Token, d.GiverID.String())
	require.NoError(t, err)
	assert.Equal(t, d.ReceiverID, got)

	_, err = svc.GetReceiver(context.Background(), d.Token, d.ReceiverID.String())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.EqualError(t, err, "Draw not found or access denied")

	_, err = svc.GetReceiver(context.Background(), "unknown-token", d.GiverID.String())
	assert.EqualError(t, err, "Draw not found or access denied")

	_, err = svc.GetReceiver(context.Background(), "", d.GiverID.String())
	assert.EqualError(t, err, "UUID is required")

	_, err = svc.GetReceiver(context.Background(), d.Token, "")
	assert.EqualError(t, err, "UserId is required")

	_, err = svc.GetReceiver(context.Background(), d.Token, "xyz")
	assert.EqualError(t, err, "Invalid UserId")
}
