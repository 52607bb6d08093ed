package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotsCatalog(t *testing.T) {
	slots := Slots()
	require.Len(t, slots, 11)

	assert.Equal(t, "12:00", slots[0])
	assert.Equal(t, "14:00", slots[4])
	assert.Equal(t, "19:00", slots[5])
	assert.Equal(t, "21:30", slots[10])

	// Chronological order within the day.
	for i := 1; i < len(slots); i++ {
		assert.Less(t, slots[i-1], slots[i])
	}
}

func TestSlotsReturnsCopy(t *testing.T) {
	first := Slots()
	first[0] = "00:00"
	assert.Equal(t, "12:00", Slots()[0])
}
