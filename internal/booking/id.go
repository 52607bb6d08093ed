package booking

import (
	"fmt"
	"math/rand"
	"time"
)

// idPrefix is the fixed two-letter prefix on every public reservation
// reference.  Changing it would orphan references already sent to guests.
const idPrefix = "ML"

// NewReservationID builds a public reservation reference: the prefix, the
// last six digits of the current Unix-millisecond timestamp, and a
// zero-padded three-digit random suffix, e.g. "ML738402057".
//
// The reference is a display convenience, not a primary key: two calls in
// the same truncation window can collide, so the workflow verifies the id
// against the store and regenerates on collision.
func NewReservationID() string {
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("%s%s%03d", idPrefix, ts, rand.Intn(1000))
}
