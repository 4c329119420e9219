package window

import "fmt"

// DefaultSeparator sits between hours and minutes (RATIO, U+2236).
const DefaultSeparator = "∶"

// FormatElapsed renders hours and minutes as zero-padded two-digit fields.
func FormatElapsed(hours, minutes uint32, separator string) string {
	return fmt.Sprintf("%02d%s%02d", hours, separator, minutes)
}
