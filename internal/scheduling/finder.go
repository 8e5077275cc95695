package scheduling

import (
	"context"
	"sync"

	"github.com/Supremetechy/go-ham/internal/booking"
	"github.com/Supremetechy/go-ham/internal/schedule"
	"github.com/Supremetechy/go-ham/internal/workers"
	"github.com/Supremetechy/go-ham/pkg/logging"
)

// Candidate is a worker who can take the requested slot, annotated with the
// inputs the selector scores on.
type Candidate struct {
	Worker        booking.Worker
	Workload      int // committed bookings on the requested day
	DistanceMiles float64
}

// Finder answers "who could take this job" by fanning out schedule checks
// across the capable workers.
type Finder struct {
	dir     workers.Directory
	repo    schedule.Repository
	catalog *booking.Catalog
	dist    DistanceProvider
	rules   RuleSet
	logger  *logging.Logger
}

// NewFinder creates an availability finder.
func NewFinder(dir workers.Directory, repo schedule.Repository, catalog *booking.Catalog, dist DistanceProvider, rules RuleSet, logger *logging.Logger) *Finder {
	if logger == nil {
		logger = logging.Default()
	}
	return &Finder{
		dir:     dir,
		repo:    repo,
		catalog: catalog,
		dist:    dist,
		rules:   rules,
		logger:  logger,
	}
}

// FindAvailable returns the workers able to take the request's slot:
// capability match, no buffer-expanded overlap with committed intervals, and
// under the daily booking cap. Schedule checks for all capable workers run
// concurrently; the result preserves directory order so downstream
// tie-breaking is deterministic. A worker whose schedule cannot be read is
// treated as unavailable.
func (f *Finder) FindAvailable(ctx context.Context, req booking.Request) ([]Candidate, error) {
	capable, err := f.dir.FindByCapability(ctx, req.ServiceType)
	if err != nil {
		return nil, err
	}
	if len(capable) == 0 {
		return nil, nil
	}

	start, end, err := req.Window(f.catalog)
	if err != nil {
		return nil, err
	}

	type slot struct {
		candidate Candidate
		available bool
	}
	results := make([]slot, len(capable))

	var wg sync.WaitGroup
	for i, w := range capable {
		wg.Add(1)
		go func(i int, w booking.Worker) {
			defer wg.Done()

			intervals, err := f.repo.IntervalsOn(ctx, w.ID, start)
			if err != nil {
				f.logger.Error("scheduling: schedule read failed, treating worker as unavailable",
					"worker", w.Name, "error", err)
				return
			}
			if len(intervals) >= f.rules.MaxDailyBookings {
				return
			}
			for _, iv := range intervals {
				if schedule.Overlaps(start, end, iv, f.rules.Buffer()) {
					return
				}
			}
			results[i] = slot{
				candidate: Candidate{
					Worker:        w,
					Workload:      len(intervals),
					DistanceMiles: f.dist.Distance(w, req.Address),
				},
				available: true,
			}
		}(i, w)
	}
	wg.Wait()

	var out []Candidate
	for _, r := range results {
		if r.available {
			out = append(out, r.candidate)
		}
	}
	return out, nil
}
