package night

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"poker-night/internal/event"
	"poker-night/internal/hand"
	"poker-night/internal/identity"
	"poker-night/internal/ledger"
	"poker-night/internal/logline"
	"poker-night/internal/stats"
)

// Result is one reconstructed session.
type Result struct {
	RunID   string
	Started time.Time
	Path    string
	Date    time.Time
	Dialect event.Dialect
	Lines   int
	Records []hand.Record
	Ledger  *ledger.Ledger
	Stats   stats.Summary
	// Balanced is false when the conservation check ran and failed.
	Balanced bool
}

type Runner struct {
	norm              *identity.Normalizer
	checkConservation bool
	workers           int
	ids               *runIDs
	log               zerolog.Logger
}

func NewRunner(norm *identity.Normalizer, checkConservation bool, log zerolog.Logger) *Runner {
	return &Runner{
		norm:              norm,
		checkConservation: checkConservation,
		workers:           4,
		ids:               newRunIDs(time.Now().UnixNano(), time.Now),
		log:               log,
	}
}

// Reconstruct runs the whole pipeline over one session's rows, which must
// already be oldest-first.
func (r *Runner) Reconstruct(path string, lines []logline.RawLine) (*Result, error) {
	res := &Result{Path: path, Lines: len(lines), Balanced: true}
	res.RunID, res.Started = r.ids.next()
	log := r.log.With().Str("run_id", res.RunID).Str("session", filepath.Base(path)).Logger()

	if path != "" {
		date, err := logline.SessionDate(path)
		if err != nil {
			log.Warn().Err(err).Msg("session date unknown")
		}
		res.Date = date
	}

	classifier := event.NewClassifier(event.DetectDialect(lines))
	res.Dialect = classifier.Dialect()
	events, err := classifier.ClassifyAll(lines)
	if err != nil {
		metricSessionsFailedTotal.Add(1)
		return nil, err
	}
	metricLinesReadTotal.Add(int64(len(lines)))
	var inert int64
	for _, ev := range events {
		if ev.Kind == event.KindInert {
			inert++
		}
	}
	metricLinesInertTotal.Add(inert)

	builder := hand.NewBuilder(r.norm, log)
	res.Records, err = builder.BuildAll(hand.Segment(events))
	if err == nil && len(res.Records) > 0 {
		err = builder.AttachPrelude(&res.Records[0], hand.Prelude(events))
	}
	if err != nil {
		metricSessionsFailedTotal.Add(1)
		return nil, err
	}
	metricHandsBuiltTotal.Add(int64(len(res.Records)))
	for _, rec := range res.Records {
		if !rec.HasSnapshot {
			metricHandsNoSnapshotTotal.Add(1)
		}
	}

	res.Ledger, err = ledger.Reconstruct(res.Records)
	if err != nil {
		metricSessionsFailedTotal.Add(1)
		return nil, err
	}
	if n := len(res.Records); n > 0 {
		if err := ledger.Finish(res.Ledger, res.Records[n-1]); err != nil {
			metricSessionsFailedTotal.Add(1)
			return nil, err
		}
	}
	metricLedgerEntriesTotal.Add(int64(len(res.Ledger.Entries)))

	if r.checkConservation {
		res.Balanced = res.Ledger.CheckConservation(log)
		if !res.Balanced {
			metricSessionsImbalancedTotal.Add(1)
		}
	}

	res.Stats = stats.Summarize(res.Records)
	metricSessionsTotal.Add(1)

	log.Info().
		Str("dialect", res.Dialect.String()).
		Int("lines", res.Lines).
		Int("hands", len(res.Records)).
		Int("players", len(res.Ledger.Players())).
		Dur("took", r.ids.now().Sub(res.Started)).
		Msg("session reconstructed")
	return res, nil
}

func (r *Runner) ReconstructFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lines, err := logline.ReadSession(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res, err := r.Reconstruct(path, lines)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// ReconstructAll rebuilds every file independently and returns the results
// in the order of paths. The first failure cancels the rest.
func (r *Runner) ReconstructAll(ctx context.Context, paths []string) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, ErrNoSessions
	}
	out := make([]*Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.ReconstructFile(p)
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Discover lists the session exports in dir, sorted by name. Export names
// carry the date, so name order is play order.
func Discover(dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoSessions, dir)
	}
	return paths, nil
}

// Merge folds sessions in the given order into all-time series.
func Merge(results []*Result) map[identity.Identity][]ledger.Entry {
	sessions := make([]ledger.Session, 0, len(results))
	for _, res := range results {
		sessions = append(sessions, ledger.Session{Date: res.Date, Ledger: res.Ledger})
	}
	return ledger.Merge(sessions)
}
