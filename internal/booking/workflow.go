package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/maisonlila/restaurant-booking/internal/model"
)

// Errors surfaced by the workflow beyond validation failures.  Store
// implementations return these sentinels so the workflow and the HTTP layer
// can tell a full slot from a broken database.
var (
	// ErrSlotUnavailable means the requested (date, time) cannot seat the
	// party without exceeding the slot capacity ceiling.
	ErrSlotUnavailable = errors.New("slot no longer available for requested party size")
	// ErrIDTaken means the generated public reference already exists.  The
	// workflow regenerates and retries a bounded number of times.
	ErrIDTaken = errors.New("reservation id already taken")
)

// Store is the persistence surface the workflow needs.
type Store interface {
	// CreateIfAvailable inserts the reservation if and only if the summed
	// covers of active reservations at its exact (date, time), including
	// the new party, stay within limit.  The capacity read and the insert
	// must run in one transaction with a locking read so that concurrent
	// requests for the same slot serialize at the store; without that,
	// two requests can both pass the check and jointly exceed the ceiling.
	// Returns ErrSlotUnavailable or ErrIDTaken as appropriate.
	CreateIfAvailable(ctx context.Context, res *model.Reservation, limit int) error

	// SumActiveCovers returns the total covers of PENDING and CONFIRMED
	// reservations at the exact (date, slot) pair.
	SumActiveCovers(ctx context.Context, date time.Time, slot string) (int, error)
}

// Notifier delivers reservation lifecycle notifications.  Implementations
// must report failure as an error value; the workflow treats notification as
// best-effort and never fails a created booking over it.
type Notifier interface {
	ReservationCreated(ctx context.Context, res *model.Reservation) error
}

// SlotAvailability is one entry of the availability probe.
type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// maxIDAttempts bounds regeneration when a public reference collides.
const maxIDAttempts = 3

// Workflow orchestrates reservation intake: validate, check capacity,
// persist, notify.  It holds no mutable state of its own; every request is
// an independent read-then-write against the store.
type Workflow struct {
	store    Store
	notifier Notifier
	now      func() time.Time
}

// NewWorkflow builds a Workflow.  notifier may be nil, in which case the
// notification step is skipped entirely.
func NewWorkflow(store Store, notifier Notifier) *Workflow {
	if store == nil {
		panic("nil store passed to NewWorkflow")
	}
	return &Workflow{store: store, notifier: notifier, now: time.Now}
}

// Create runs the full intake sequence for one raw request.
//
// Validation and capacity failures abort with no reservation created.  A
// persistence failure is terminal for the request; the generated reference
// is simply discarded.  A notification failure is logged and swallowed: the
// reservation exists regardless.
func (w *Workflow) Create(ctx context.Context, req Request) (*model.Reservation, error) {
	n, err := Validate(req, w.now())
	if err != nil {
		return nil, err
	}

	res := &model.Reservation{
		GuestName:       n.GuestName,
		Email:           n.Email,
		Phone:           n.Phone,
		Date:            n.Date,
		TimeSlot:        n.TimeSlot,
		PartySize:       n.PartySize,
		SpecialRequests: n.SpecialRequests,
		Status:          model.StatusPending,
	}

	for attempt := 1; ; attempt++ {
		res.ID = NewReservationID()
		err = w.store.CreateIfAvailable(ctx, res, model.SlotCapacity)
		if errors.Is(err, ErrIDTaken) && attempt < maxIDAttempts {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}

	if w.notifier != nil {
		if nerr := w.notifier.ReservationCreated(ctx, res); nerr != nil {
			log.Printf("booking: confirmation notification failed for %s: %v", res.ID, nerr)
		}
	}
	return res, nil
}

// Availability probes every catalog slot on the given date with a nominal
// party of one and reports whether each could still be seated.
func (w *Workflow) Availability(ctx context.Context, date time.Time) ([]SlotAvailability, error) {
	out := make([]SlotAvailability, 0, len(catalog))
	for _, slot := range catalog {
		sum, err := w.store.SumActiveCovers(ctx, date, slot)
		if err != nil {
			return nil, err
		}
		out = append(out, SlotAvailability{Time: slot, Available: sum+1 <= model.SlotCapacity})
	}
	return out, nil
}
