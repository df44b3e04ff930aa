package services

import (
	"sort"

	"gigboard/internal/core/domain/model/job"
)

// Ranker is a domain service that orders jobs by their payout-per-distance
// score and selects the best available job for voice-driven acceptance.
//
// Selection rules:
//   - Higher score wins
//   - Ties resolve to the first job encountered in the input order
//     (the sort is stable, so selection is deterministic for a given input)
//   - Only jobs in Available status are candidates for BestAvailable
type Ranker struct{}

// NewRanker creates a new Ranker instance.
func NewRanker() Ranker {
	return Ranker{}
}

// SortByScore returns a new slice with the jobs ordered by descending
// score. The input slice is not modified.
func (r Ranker) SortByScore(jobs []*job.Job) []*job.Job {
	sorted := make([]*job.Job, len(jobs))
	copy(sorted, jobs)

	sort.SliceStable(sorted, func(i, k int) bool {
		return sorted[i].Score() > sorted[k].Score()
	})

	return sorted
}

// BestAvailable returns the available job with the highest score.
// The second return value is false when no job is available.
func (r Ranker) BestAvailable(jobs []*job.Job) (*job.Job, bool) {
	var best *job.Job
	for _, j := range jobs {
		if j.Status() != job.Available {
			continue
		}
		if best == nil || j.Score() > best.Score() {
			best = j
		}
	}

	return best, best != nil
}
