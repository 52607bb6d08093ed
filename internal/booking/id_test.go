package booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var idPattern = regexp.MustCompile(`^ML\d{9}$`)

func TestNewReservationIDFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewReservationID()
		assert.Regexp(t, idPattern, id)
		assert.Len(t, id, 11)
	}
}
