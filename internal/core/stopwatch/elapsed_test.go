package stopwatch

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHoursAndMinutes(t *testing.T) {
	tests := []struct {
		seconds int64
		hours   uint32
		minutes uint32
	}{
		{seconds: 0, hours: 0, minutes: 0},
		{seconds: 59, hours: 0, minutes: 0},
		{seconds: 60, hours: 0, minutes: 1},
		{seconds: 3599, hours: 0, minutes: 59},
		{seconds: 3600, hours: 1, minutes: 0},
		{seconds: 3661, hours: 1, minutes: 1},
		{seconds: 3725, hours: 1, minutes: 2},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("%ds", tc.seconds), func(t *testing.T) {
			hours, minutes := HoursAndMinutes(time.Duration(tc.seconds) * time.Second)
			assert.Equal(t, tc.hours, hours)
			assert.Equal(t, tc.minutes, minutes)
		})
	}
}

func TestHoursAndMinutesDropsSubSecondPrecision(t *testing.T) {
	hours, minutes := HoursAndMinutes(59*time.Second + 999*time.Millisecond)
	assert.Zero(t, hours)
	assert.Zero(t, minutes)
}

func TestHoursAndMinutesBounds(t *testing.T) {
	hours, minutes := HoursAndMinutes(-5 * time.Minute)
	assert.Zero(t, hours)
	assert.Zero(t, minutes)

	hours, minutes = HoursAndMinutes(time.Duration(math.MaxInt64))
	assert.Equal(t, uint32(2562047), hours)
	assert.Equal(t, uint32(47), minutes)
}
