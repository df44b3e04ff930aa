// Package ports declares the boundaries the orchestration core depends on.
// Adapters implement these interfaces; the core never imports an adapter.
package ports

import (
	"context"

	"gigboard/internal/core/domain/model/job"
)

// ProviderClient is the uniform capability surface over one external
// gig-work source. One instance exists per provider identifier.
//
// All calls are network-bound and may be slow; every method takes a
// context and callers must not hold rendering up on them. Implementations
// are responsible for their own timeouts; the core imposes none.
//
// Error contract:
//   - ListAvailable fails with errs.ErrSourceUnavailable; callers must
//     tolerate one source failing while others succeed
//   - Accept fails with errs.ErrJobNotFound when the id is unknown to the
//     source and errs.ErrAlreadyTaken when another actor claimed the job
//   - AdvanceStatus fails with errs.ErrJobNotFound for unknown ids
type ProviderClient interface {
	// Provider returns the source identifier this client serves.
	Provider() job.Provider

	// ListAvailable returns the jobs currently offered by this source,
	// all in Available status.
	ListAvailable(ctx context.Context) ([]*job.Job, error)

	// Accept claims a job for the driver and returns it with status
	// advanced to Accepted.
	Accept(ctx context.Context, jobID string) (*job.Job, error)

	// Decline removes the job id from this source's future listings.
	Decline(ctx context.Context, jobID string) error

	// AdvanceStatus persists a lifecycle transition server-side and
	// returns the updated job.
	AdvanceStatus(ctx context.Context, jobID string, next job.Status) (*job.Job, error)
}
