package stopwatch

import (
	"math"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
)

// HoursAndMinutes splits an elapsed duration into whole hours and the whole
// minutes left over. Seconds are dropped. Negative durations count as zero and
// hours saturate at math.MaxUint32 instead of wrapping.
func HoursAndMinutes(elapsed time.Duration) (hours, minutes uint32) {
	if elapsed < 0 {
		return 0, 0
	}
	seconds := uint64(elapsed / time.Second)
	totalHours := seconds / secondsPerHour
	if totalHours > math.MaxUint32 {
		totalHours = math.MaxUint32
	}
	return uint32(totalHours), uint32((seconds % secondsPerHour) / secondsPerMinute)
}
