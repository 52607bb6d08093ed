package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// fakeStore simulates the persistence layer with an in-memory covers tally
// per (date, slot).  createErrs, when non-empty, scripts the outcome of
// successive CreateIfAvailable calls regardless of the tally.
type fakeStore struct {
	covers     map[string]int
	createErrs []error
	created    []*model.Reservation
	sumErr     error
}

func newFakeStore() *fakeStore {
	return &fakeStore{covers: map[string]int{}}
}

func slotKey(date time.Time, slot string) string {
	return date.Format("2006-01-02") + "|" + slot
}

func (s *fakeStore) CreateIfAvailable(_ context.Context, res *model.Reservation, limit int) error {
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		if err != nil {
			return err
		}
	}
	key := slotKey(res.Date, res.TimeSlot)
	if s.covers[key]+res.PartySize > limit {
		return ErrSlotUnavailable
	}
	s.covers[key] += res.PartySize
	cp := *res
	s.created = append(s.created, &cp)
	return nil
}

func (s *fakeStore) SumActiveCovers(_ context.Context, date time.Time, slot string) (int, error) {
	if s.sumErr != nil {
		return 0, s.sumErr
	}
	return s.covers[slotKey(date, slot)], nil
}

type fakeNotifier struct {
	calls int
	err   error
}

func (n *fakeNotifier) ReservationCreated(context.Context, *model.Reservation) error {
	n.calls++
	return n.err
}

func newTestWorkflow(store Store, notifier Notifier) *Workflow {
	w := NewWorkflow(store, notifier)
	w.now = func() time.Time { return fixedNow }
	return w
}

func TestWorkflowCreateSucceeds(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{}
	w := newTestWorkflow(store, notifier)

	res, err := w.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, idPattern, res.ID)
	assert.Equal(t, model.StatusPending, res.Status)
	assert.Equal(t, "Marie Dupont", res.GuestName)
	assert.Equal(t, 4, res.PartySize)
	require.Len(t, store.created, 1)
	assert.Equal(t, 1, notifier.calls)
}

func TestWorkflowCreateRejectsInvalidRequest(t *testing.T) {
	store := newFakeStore()
	w := newTestWorkflow(store, nil)

	req := validRequest()
	req.Email = "nope"

	_, err := w.Create(context.Background(), req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Empty(t, store.created, "invalid requests must not reach the store")
}

func TestWorkflowCreateFullSlot(t *testing.T) {
	store := newFakeStore()
	store.covers[slotKey(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), "19:30")] = model.SlotCapacity
	w := newTestWorkflow(store, &fakeNotifier{})

	_, err := w.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotUnavailable)
	assert.Empty(t, store.created)
}

func TestWorkflowCreateExactlyFillsSlot(t *testing.T) {
	store := newFakeStore()
	store.covers[slotKey(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), "19:30")] = model.SlotCapacity - 5

	w := newTestWorkflow(store, nil)
	req := validRequest()
	req.Guests = 5

	res, err := w.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 5, res.PartySize)
}

func TestWorkflowCreateSurvivesNotifierFailure(t *testing.T) {
	store := newFakeStore()
	notifier := &fakeNotifier{err: errors.New("broker down")}
	w := newTestWorkflow(store, notifier)

	res, err := w.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	require.Len(t, store.created, 1)
}

func TestWorkflowCreateRetriesTakenID(t *testing.T) {
	store := newFakeStore()
	store.createErrs = []error{ErrIDTaken, ErrIDTaken}
	w := newTestWorkflow(store, nil)

	res, err := w.Create(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, res.ID, store.created[0].ID)
}

func TestWorkflowCreateGivesUpAfterRepeatedCollisions(t *testing.T) {
	store := newFakeStore()
	store.createErrs = []error{ErrIDTaken, ErrIDTaken, ErrIDTaken}
	w := newTestWorkflow(store, nil)

	_, err := w.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrIDTaken)
	assert.Empty(t, store.created)
}

func TestWorkflowCreateSurfacesStoreFailure(t *testing.T) {
	store := newFakeStore()
	want := errors.New("connection reset")
	store.createErrs = []error{want}
	w := newTestWorkflow(store, &fakeNotifier{})

	_, err := w.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, want)
}

func TestWorkflowAvailability(t *testing.T) {
	store := newFakeStore()
	date := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	store.covers[slotKey(date, "19:30")] = model.SlotCapacity     // full
	store.covers[slotKey(date, "20:00")] = model.SlotCapacity - 1 // one seat left
	w := newTestWorkflow(store, nil)

	slots, err := w.Availability(context.Background(), date)
	require.NoError(t, err)
	require.Len(t, slots, 11)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.False(t, byTime["19:30"])
	assert.True(t, byTime["20:00"])
	assert.True(t, byTime["12:00"])
}

func TestWorkflowAvailabilitySurfacesStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.sumErr = errors.New("timeout")
	w := newTestWorkflow(store, nil)

	_, err := w.Availability(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestNewWorkflowPanicsOnNilStore(t *testing.T) {
	assert.Panics(t, func() { NewWorkflow(nil, nil) })
}
