package providersim_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"gigboard/internal/adapters/out/providersim"
	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seededStore(t *testing.T) *providersim.Store {
	t.Helper()

	store, err := providersim.OpenInMemory()
	require.NoError(t, err)

	fixtures, err := providersim.DefaultFixtures()
	require.NoError(t, err)
	require.NoError(t, store.Seed(context.Background(), fixtures))
	return store
}

// newClient builds a zero-latency client for one provider over a freshly
// seeded store.
func newClient(t *testing.T, store *providersim.Store, provider job.Provider) *providersim.Client {
	t.Helper()
	return providersim.NewClient(provider, store, 0, testLogger())
}

func TestDefaultFixtures(t *testing.T) {
	fixtures, err := providersim.DefaultFixtures()
	require.NoError(t, err)

	assert.NotEmpty(t, fixtures.Jobs)
	for _, f := range fixtures.Jobs {
		assert.NotEmpty(t, f.Provider, f.ID)
		assert.Greater(t, f.DistanceMi, 0.0, f.ID)
	}
}

func TestClient_ListAvailable(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	t.Run("returns only this provider's available jobs", func(t *testing.T) {
		dd := newClient(t, store, job.ProviderDoorDash)

		jobs, err := dd.ListAvailable(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		for _, j := range jobs {
			assert.Equal(t, job.ProviderDoorDash, j.Provider())
			assert.Equal(t, job.Available, j.Status())
		}
	})

	t.Run("providers do not see each other's jobs", func(t *testing.T) {
		dd := newClient(t, store, job.ProviderDoorDash)
		ic := newClient(t, store, job.ProviderInstacart)

		ddJobs, err := dd.ListAvailable(ctx)
		require.NoError(t, err)
		icJobs, err := ic.ListAvailable(ctx)
		require.NoError(t, err)

		seen := make(map[string]struct{})
		for _, j := range ddJobs {
			seen[j.ID()] = struct{}{}
		}
		for _, j := range icJobs {
			_, dup := seen[j.ID()]
			assert.False(t, dup, j.ID())
		}
	})
}

func TestClient_Accept(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	dd := newClient(t, store, job.ProviderDoorDash)

	t.Run("returns the job with status accepted", func(t *testing.T) {
		accepted, err := dd.Accept(ctx, "dd-1001")
		require.NoError(t, err)
		assert.Equal(t, job.Accepted, accepted.Status())
		assert.Equal(t, "dd-1001", accepted.ID())
	})

	t.Run("acceptance is not persisted so the listing re-offers the job", func(t *testing.T) {
		_, err := dd.Accept(ctx, "dd-1001")
		require.NoError(t, err)

		jobs, err := dd.ListAvailable(ctx)
		require.NoError(t, err)

		ids := make([]string, len(jobs))
		for i, j := range jobs {
			ids[i] = j.ID()
		}
		assert.Contains(t, ids, "dd-1001")
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		_, err := dd.Accept(ctx, "dd-9999")
		require.ErrorIs(t, err, errs.ErrJobNotFound)
	})

	t.Run("another provider's id fails with not found", func(t *testing.T) {
		_, err := dd.Accept(ctx, "ue-2001")
		require.ErrorIs(t, err, errs.ErrJobNotFound)
	})

	t.Run("a job claimed by another actor fails with already taken", func(t *testing.T) {
		ue := newClient(t, store, job.ProviderUberEats)
		_, err := ue.Accept(ctx, "ue-2002")
		require.ErrorIs(t, err, errs.ErrAlreadyTaken)
	})

	t.Run("a cancelled call surfaces as source unavailable", func(t *testing.T) {
		slow := providersim.NewClient(job.ProviderDoorDash, store, time.Millisecond, testLogger())
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := slow.Accept(cancelled, "dd-1001")
		require.ErrorIs(t, err, errs.ErrSourceUnavailable)
		assert.ErrorContains(t, err, "context canceled")
	})
}

func TestClient_Decline(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	dd := newClient(t, store, job.ProviderDoorDash)

	t.Run("declined ids leave future listings", func(t *testing.T) {
		require.NoError(t, dd.Decline(ctx, "dd-1002"))

		jobs, err := dd.ListAvailable(ctx)
		require.NoError(t, err)
		for _, j := range jobs {
			assert.NotEqual(t, "dd-1002", j.ID())
		}
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		require.ErrorIs(t, dd.Decline(ctx, "dd-9999"), errs.ErrJobNotFound)
	})
}

func TestClient_AdvanceStatus(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()
	ic := newClient(t, store, job.ProviderInstacart)

	t.Run("persists the transition and returns the updated job", func(t *testing.T) {
		updated, err := ic.AdvanceStatus(ctx, "ic-3001", job.EnroutePickup)
		require.NoError(t, err)
		assert.Equal(t, job.EnroutePickup, updated.Status())

		// The row left available status, so the listing drops it.
		jobs, err := ic.ListAvailable(ctx)
		require.NoError(t, err)
		for _, j := range jobs {
			assert.NotEqual(t, "ic-3001", j.ID())
		}
	})

	t.Run("rejects invalid target statuses", func(t *testing.T) {
		_, err := ic.AdvanceStatus(ctx, "ic-3002", job.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		_, err := ic.AdvanceStatus(ctx, "ic-9999", job.PickedUp)
		require.ErrorIs(t, err, errs.ErrJobNotFound)
	})
}

func TestStore_Seed(t *testing.T) {
	t.Run("mints ids and defaults status for sparse rows", func(t *testing.T) {
		store, err := providersim.OpenInMemory()
		require.NoError(t, err)

		fixtures := providersim.Fixtures{Jobs: []providersim.FixtureJob{{
			Provider:   "doordash",
			PayoutUsd:  10,
			DistanceMi: 2,
		}}}
		require.NoError(t, store.Seed(context.Background(), fixtures))

		dd := providersim.NewClient(job.ProviderDoorDash, store, 0, testLogger())
		jobs, err := dd.ListAvailable(context.Background())
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.NotEmpty(t, jobs[0].ID())
		assert.Equal(t, job.Available, jobs[0].Status())
	})

	t.Run("rejects invalid fixture rows", func(t *testing.T) {
		store, err := providersim.OpenInMemory()
		require.NoError(t, err)

		fixtures := providersim.Fixtures{Jobs: []providersim.FixtureJob{{
			ID:         "bad-1",
			Provider:   "grubhub",
			PayoutUsd:  10,
			DistanceMi: 2,
		}}}
		require.Error(t, store.Seed(context.Background(), fixtures))
	})
}
