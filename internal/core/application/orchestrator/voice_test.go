package orchestrator_test

import (
	"context"
	"testing"
	"time"

	"gigboard/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrchestrator_HandleTranscript(t *testing.T) {
	ctx := context.Background()

	t.Run("accept-best claims the highest scoring available job", func(t *testing.T) {
		lean := listed(t, "dd-lean", job.ProviderDoorDash, 9, 3) // 3.00
		fat := listed(t, "dd-fat", job.ProviderDoorDash, 20, 4)  // 5.00
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		dd.On("ListAvailable", mock.Anything).Return([]*job.Job{lean, fat}, nil)
		dd.On("Accept", mock.Anything, "dd-fat").Return(inStatus(t, fat, job.Accepted), nil)

		o := newOrchestrator(t, dd)
		require.NoError(t, o.RefreshAll(ctx))
		require.NoError(t, o.HandleTranscript(ctx, "yes please accept it", true))

		focused, ok := o.Focused()
		require.True(t, ok)
		assert.Equal(t, "dd-fat", focused.ID())
		dd.AssertNotCalled(t, "Accept", mock.Anything, "dd-lean")
	})

	t.Run("accept-best with no available jobs does nothing", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd)

		require.NoError(t, o.HandleTranscript(ctx, "accept", true))
		dd.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("decline-current declines the focused available job", func(t *testing.T) {
		offer := listed(t, "dd-1", job.ProviderDoorDash, 12, 4)
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		dd.On("ListAvailable", mock.Anything).Return([]*job.Job{offer}, nil)
		dd.On("Decline", mock.Anything, "dd-1").Return(nil)

		o := newOrchestrator(t, dd)
		require.NoError(t, o.RefreshAll(ctx))
		require.NoError(t, o.SetFocused("dd-1"))
		require.NoError(t, o.HandleTranscript(ctx, "nah skip this one", true))

		_, ok := o.Job("dd-1")
		assert.False(t, ok)
	})

	t.Run("decline-current ignores a job already in progress", func(t *testing.T) {
		offer := listed(t, "dd-1", job.ProviderDoorDash, 12, 4)
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		dd.On("ListAvailable", mock.Anything).Return([]*job.Job{offer}, nil)
		dd.On("Accept", mock.Anything, "dd-1").Return(inStatus(t, offer, job.Accepted), nil)

		o := newOrchestrator(t, dd)
		require.NoError(t, o.RefreshAll(ctx))
		require.NoError(t, o.Accept(ctx, "dd-1"))
		require.NoError(t, o.HandleTranscript(ctx, "skip it", true))

		dd.AssertNotCalled(t, "Decline", mock.Anything, mock.Anything)
		_, ok := o.Job("dd-1")
		assert.True(t, ok)
	})

	t.Run("arrival phrases advance the focused job", func(t *testing.T) {
		offer := listed(t, "dd-1", job.ProviderDoorDash, 12, 4)
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		dd.On("ListAvailable", mock.Anything).Return([]*job.Job{offer}, nil)
		dd.On("Accept", mock.Anything, "dd-1").Return(inStatus(t, offer, job.Accepted), nil)
		dd.On("AdvanceStatus", mock.Anything, "dd-1", job.EnroutePickup).
			Return(inStatus(t, offer, job.EnroutePickup), nil)

		o := newOrchestrator(t, dd)
		require.NoError(t, o.RefreshAll(ctx))
		require.NoError(t, o.Accept(ctx, "dd-1"))
		require.NoError(t, o.HandleTranscript(ctx, "I'm here", true))

		got, _ := o.Job("dd-1")
		assert.Equal(t, job.EnroutePickup, got.Status())
	})

	t.Run("advance with nothing focused does nothing", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd)

		require.NoError(t, o.HandleTranscript(ctx, "next step", true))
		dd.AssertNotCalled(t, "AdvanceStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("call and message commands acknowledge without state changes", func(t *testing.T) {
		offer := listed(t, "dd-1", job.ProviderDoorDash, 12, 4)
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		dd.On("ListAvailable", mock.Anything).Return([]*job.Job{offer}, nil)

		o := newOrchestrator(t, dd)
		require.NoError(t, o.RefreshAll(ctx))
		require.NoError(t, o.SetFocused("dd-1"))

		require.NoError(t, o.HandleTranscript(ctx, "call the customer", true))
		require.NoError(t, o.HandleTranscript(ctx, "send a message", true))

		got, ok := o.Job("dd-1")
		require.True(t, ok)
		assert.Equal(t, job.Available, got.Status())
	})

	t.Run("unmatched text is silently ignored", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd)

		require.NoError(t, o.HandleTranscript(ctx, "what a lovely morning", true))
		assert.Empty(t, o.UI().LastError)
	})

	t.Run("non-final transcripts only update the live transcript", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd)

		require.NoError(t, o.HandleTranscript(ctx, "yes please acc", false))

		assert.Equal(t, "yes please acc", o.UI().LiveTranscript)
		dd.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("disabled voice drops transcripts entirely", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd)
		o.ToggleVoice()

		require.NoError(t, o.HandleTranscript(ctx, "yes please accept it", true))

		assert.Empty(t, o.UI().LiveTranscript)
		dd.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
	})

	t.Run("live transcript clears after the configured delay", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd) // 20ms TTL

		require.NoError(t, o.HandleTranscript(ctx, "what a lovely morning", true))
		assert.Equal(t, "what a lovely morning", o.UI().LiveTranscript)

		assert.Eventually(t, func() bool {
			return o.UI().LiveTranscript == ""
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("a newer utterance supersedes a pending clear", func(t *testing.T) {
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		o := newOrchestrator(t, dd)

		require.NoError(t, o.HandleTranscript(ctx, "first utterance", true))
		require.NoError(t, o.HandleTranscript(ctx, "second utterance", true))

		assert.Eventually(t, func() bool {
			return o.UI().LiveTranscript == ""
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("voice accept while driving is gated like any accept", func(t *testing.T) {
		offer := listed(t, "dd-1", job.ProviderDoorDash, 12, 4)
		dd := &MockProviderClient{provider: job.ProviderDoorDash}
		dd.On("ListAvailable", mock.Anything).Return([]*job.Job{offer}, nil)

		o := newOrchestrator(t, dd)
		require.NoError(t, o.RefreshAll(ctx))
		driveAt(t, o, 50)

		require.Error(t, o.HandleTranscript(ctx, "yes please accept it", true))
		dd.AssertNotCalled(t, "Accept", mock.Anything, mock.Anything)
		assert.Contains(t, o.UI().LastError, "action not permitted")
	})
}
