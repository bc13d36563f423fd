package stats

import "strings"

const HighCard = "High Card"

// Category reduces a showdown description such as
// "Two Pair, A's & 10's (combination: ...)" to its hand type.
func Category(desc string) string {
	if i := strings.Index(desc, "(combination:"); i >= 0 {
		desc = desc[:i]
	}
	if i := strings.Index(desc, ","); i >= 0 {
		desc = desc[:i]
	}
	desc = strings.TrimSpace(desc)
	if strings.Contains(desc, "High") {
		return HighCard
	}
	return desc
}
