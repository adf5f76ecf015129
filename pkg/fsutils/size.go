package fsutils

import "strconv"

// ShortSize returns a compact human readable size string, e.g. "12KB".
func ShortSize(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	units := []string{"KB", "MB", "GB", "TB"}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}
	// Rounding to nearest
	val := (size + div/2) / div
	// If rounding up pushes it to the next unit
	if val >= unit && exp < len(units)-1 {
		val /= unit
		exp++
	}
	return strconv.FormatInt(val, 10) + units[exp]
}
