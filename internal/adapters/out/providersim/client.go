package providersim

import (
	"context"
	"log/slog"
	"time"

	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/core/ports"
	"gigboard/internal/pkg/errs"
)

// Client simulates one external provider's API over the shared dataset
// store. Every call sleeps for the client's configured latency first, the
// way a network round trip would, and honors context cancellation while
// waiting.
type Client struct {
	provider job.Provider
	store    *Store
	latency  time.Duration
	logger   *slog.Logger
}

// NewClient creates a simulated client for one provider.
func NewClient(provider job.Provider, store *Store, latency time.Duration, logger *slog.Logger) *Client {
	return &Client{
		provider: provider,
		store:    store,
		latency:  latency,
		logger:   logger.With("component", "providersim", "provider", provider.String()),
	}
}

// NewClients builds the full set of simulated clients over one store,
// with per-provider latencies mirroring the reference sources.
func NewClients(store *Store, logger *slog.Logger) []ports.ProviderClient {
	return []ports.ProviderClient{
		NewClient(job.ProviderDoorDash, store, 100*time.Millisecond, logger),
		NewClient(job.ProviderUberEats, store, 120*time.Millisecond, logger),
		NewClient(job.ProviderInstacart, store, 150*time.Millisecond, logger),
	}
}

// Provider returns the source identifier this client serves.
func (c *Client) Provider() job.Provider {
	return c.provider
}

// ListAvailable returns the jobs this source currently offers. The rows
// come back with their stored status, so a job accepted earlier in the
// session is re-offered as available; callers dedup against their local
// active copies.
func (c *Client) ListAvailable(ctx context.Context) ([]*job.Job, error) {
	if err := c.simulateDelay(ctx); err != nil {
		return nil, errs.NewSourceUnavailableErrorWithCause(c.provider.String(), err)
	}

	rows, err := c.store.listAvailable(ctx, c.provider)
	if err != nil {
		return nil, errs.NewSourceUnavailableErrorWithCause(c.provider.String(), err)
	}

	jobs := make([]*job.Job, 0, len(rows))
	for _, row := range rows {
		j, convErr := toDomain(row)
		if convErr != nil {
			return nil, errs.NewSourceUnavailableErrorWithCause(c.provider.String(), convErr)
		}
		jobs = append(jobs, j)
	}
	return jobs, nil
}

// Accept claims the job and returns it with status accepted. The
// acceptance is not written back to the dataset; see the package comment.
func (c *Client) Accept(ctx context.Context, jobID string) (*job.Job, error) {
	if err := c.simulateDelay(ctx); err != nil {
		return nil, errs.NewSourceUnavailableErrorWithCause(c.provider.String(), err)
	}

	row, err := c.store.get(ctx, c.provider, jobID)
	if err != nil {
		return nil, err
	}
	if row.Taken {
		return nil, errs.NewAlreadyTakenError(jobID)
	}

	j, err := toDomain(row)
	if err != nil {
		return nil, err
	}
	return j.WithStatus(job.Accepted)
}

// Decline removes the job from this source's future listings.
func (c *Client) Decline(ctx context.Context, jobID string) error {
	if err := c.simulateDelay(ctx); err != nil {
		return errs.NewSourceUnavailableErrorWithCause(c.provider.String(), err)
	}

	if _, err := c.store.get(ctx, c.provider, jobID); err != nil {
		return err
	}

	c.logger.InfoContext(ctx, "job declined", "job", jobID)
	return c.store.setStatus(ctx, jobID, job.Declined)
}

// AdvanceStatus persists a lifecycle transition and returns the updated job.
func (c *Client) AdvanceStatus(ctx context.Context, jobID string, next job.Status) (*job.Job, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if err := c.simulateDelay(ctx); err != nil {
		return nil, errs.NewSourceUnavailableErrorWithCause(c.provider.String(), err)
	}

	row, err := c.store.get(ctx, c.provider, jobID)
	if err != nil {
		return nil, err
	}

	if err := c.store.setStatus(ctx, jobID, next); err != nil {
		return nil, err
	}

	row.Status = next.String()
	return toDomain(row)
}

// simulateDelay sleeps for the configured latency, bailing out early if
// the context is cancelled.
func (c *Client) simulateDelay(ctx context.Context) error {
	if c.latency <= 0 {
		return nil
	}

	timer := time.NewTimer(c.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
