// Package aggregator implements the multi-source refresh that builds the
// driver's worklist. It fans a listing call out to every configured
// provider concurrently, joins the results, and merges them with the jobs
// already tracked locally.
package aggregator

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/core/ports"
)

// Outcome is the result of one refresh round.
//
// Fetched is always usable, even on partial failure: it carries every
// listing that did arrive. Failed names the providers whose listing call
// failed, so the caller can surface a degraded-but-working state to the
// driver.
type Outcome struct {
	Fetched []*job.Job
	Failed  []job.Provider
}

// Engine fetches available jobs from all providers. It holds no worklist
// state itself; the orchestrator owns that and merges the fetched
// listings against it at commit time.
type Engine struct {
	clients []ports.ProviderClient
	logger  *slog.Logger
}

// NewEngine creates an aggregation engine over the given provider clients.
func NewEngine(clients []ports.ProviderClient, logger *slog.Logger) *Engine {
	return &Engine{
		clients: clients,
		logger:  logger.With("component", "aggregator"),
	}
}

// Refresh lists available jobs from every provider concurrently.
//
// One provider failing neither cancels nor fails the others: its listings
// are simply absent from this round and its name lands in Outcome.Failed.
// Refresh returns a non-nil error only when every provider failed.
//
// Refresh deliberately does not merge: listings can be arbitrarily stale
// by the time the slow fan-out settles, so the caller must run Merge
// against its live worklist at the moment it commits the result.
func (e *Engine) Refresh(ctx context.Context) (Outcome, error) {
	type listing struct {
		provider job.Provider
		jobs     []*job.Job
		err      error
	}

	listings := make([]listing, len(e.clients))

	var wg sync.WaitGroup
	for i, client := range e.clients {
		i, client := i, client
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobs, err := client.ListAvailable(ctx)
			listings[i] = listing{provider: client.Provider(), jobs: jobs, err: err}
		}()
	}
	wg.Wait()

	var fetched []*job.Job
	var failed []job.Provider
	var failures []error
	for _, l := range listings {
		if l.err != nil {
			e.logger.WarnContext(ctx, "provider listing failed", "provider", l.provider, "error", l.err)
			failed = append(failed, l.provider)
			failures = append(failures, l.err)
			continue
		}
		fetched = append(fetched, l.jobs...)
	}

	outcome := Outcome{
		Fetched: fetched,
		Failed:  failed,
	}

	if len(e.clients) > 0 && len(failed) == len(e.clients) {
		return outcome, errors.Join(failures...)
	}
	return outcome, nil
}

// Merge combines the current worklist with freshly fetched listings.
//
// Jobs the driver is locally working on (status neither available nor
// declined) are preserved verbatim; providers are not assumed to reflect
// local optimistic state, so a fresh listing that shares an id with a
// preserved active job is discarded in favor of the local copy. This is
// what keeps an already-accepted job from reappearing as a duplicate
// available entry when a source re-lists it from stale data.
//
// Merge is a pure function of its inputs. Overlapping refreshes therefore
// converge to the same worklist regardless of arrival order, provided the
// caller evaluates it against the worklist as it stands at commit time,
// not against a snapshot taken before the listings were fetched.
func Merge(current, fetched []*job.Job) []*job.Job {
	merged := make([]*job.Job, 0, len(current)+len(fetched))
	seen := make(map[string]struct{}, len(current))

	for _, j := range current {
		if !j.IsActive() {
			continue
		}
		merged = append(merged, j)
		seen[j.ID()] = struct{}{}
	}

	for _, j := range fetched {
		if _, dup := seen[j.ID()]; dup {
			continue
		}
		merged = append(merged, j)
		seen[j.ID()] = struct{}{}
	}

	return merged
}
