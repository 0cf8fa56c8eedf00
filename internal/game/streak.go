package game

import (
	"strconv"
	"strings"
)

// ParseWinstreak decodes a persisted streak. Absent, non-numeric and
// negative values read as zero.
func ParseWinstreak(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// FormatWinstreak encodes a streak as a base-10 string.
func FormatWinstreak(n int) string {
	return strconv.Itoa(max(n, 0))
}
