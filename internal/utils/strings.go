package utils

import (
	"strconv"
	"strings"
)

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// NormalizeSpace collapses repeated whitespace into a single space.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitRoomList splits comma/semicolon separated room-number strings into
// deduplicated ints. Unparsable entries are skipped.
func SplitRoomList(raw string) []int {
	out := []int{}
	seen := map[int]bool{}
	parts := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}

// JoinRoomList renders room numbers as "301, 302".
func JoinRoomList(rooms []int) string {
	parts := make([]string, 0, len(rooms))
	for _, r := range rooms {
		parts = append(parts, strconv.Itoa(r))
	}
	return strings.Join(parts, ", ")
}
