package hand

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"poker-night/internal/event"
	"poker-night/internal/identity"
	"poker-night/internal/logline"
)

const baseOrder = int64(165481566000000)

// classify turns message texts into events, one tick apart.
func classify(t *testing.T, texts ...string) []event.Event {
	t.Helper()
	c := event.NewClassifier(event.DialectCurrent)
	out := make([]event.Event, 0, len(texts))
	for i, text := range texts {
		l, err := logline.New(i+1, fmt.Sprintf("%s,2022-06-09T23:01:00.000Z,%d", text, baseOrder+int64(i)*100000))
		if err != nil {
			t.Fatalf("logline.New() error = %v", err)
		}
		ev, err := c.Classify(l)
		if err != nil {
			t.Fatalf("Classify(%q) error = %v", text, err)
		}
		out = append(out, ev)
	}
	return out
}

func orderOf(i int) int64 {
	return baseOrder + int64(i)*100000
}

func testBuilder() *Builder {
	return NewBuilder(identity.NewNormalizer(map[string]string{
		"alice": "Alice",
		"al":    "Alice",
		"bob":   "Bob",
		"carol": "Carol",
	}), zerolog.Nop())
}
