package hand

import "poker-night/internal/event"

// Segment splits an oldest-first event stream into hands. Each group starts
// at a hand-start marker and runs until the next one. Anything before the
// first marker belongs to no hand. Hand numbers are passed through as-is.
func Segment(events []event.Event) [][]event.Event {
	var out [][]event.Event
	start := -1
	for i, ev := range events {
		if ev.Kind != event.KindHandStart {
			continue
		}
		if start >= 0 {
			out = append(out, events[start:i])
		}
		start = i
	}
	if start >= 0 {
		out = append(out, events[start:])
	}
	return out
}

// Prelude returns the events logged before the first hand marker, where
// the opening buy-ins usually are.
func Prelude(events []event.Event) []event.Event {
	for i, ev := range events {
		if ev.Kind == event.KindHandStart {
			return events[:i]
		}
	}
	return events
}
