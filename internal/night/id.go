package night

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// runIDs issues one ULID per reconstruction. ReconstructAll draws from it
// on several goroutines, so ids from one Runner sort in issue order even
// within the same millisecond.
type runIDs struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

func newRunIDs(seed int64, now func() time.Time) *runIDs {
	return &runIDs{entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0), now: now}
}

func (g *runIDs) next() (string, time.Time) {
	g.mu.Lock()
	defer g.mu.Unlock()
	at := g.now()
	return ulid.MustNew(ulid.Timestamp(at), g.entropy).String(), at
}

// RunIDTime returns when a run id was issued, to the millisecond.
func RunIDTime(id string) (time.Time, error) {
	u, err := ulid.ParseStrict(id)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %v", ErrBadRunID, id, err)
	}
	return ulid.Time(u.Time()), nil
}
