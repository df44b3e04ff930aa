// Package orchestrator owns the session state of the driver's worklist:
// the set of known jobs, the focused-job pointer, the latest vehicle
// telemetry snapshot and the UI state. Every action request, whether it
// comes from a rendered control or a classified voice command, dispatches
// through here, so the safety gate and the lifecycle state machine have a
// single enforcement point.
//
// There is exactly one Orchestrator per session, constructed in the
// composition root and passed by reference to its consumers; no ambient
// global exists.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"gigboard/internal/core/application/aggregator"
	"gigboard/internal/core/domain/model/job"
	"gigboard/internal/core/domain/model/vehicle"
	"gigboard/internal/core/domain/services"
	"gigboard/internal/core/ports"
	"gigboard/internal/pkg/errs"
)

// UIState is the transient presentation state the orchestrator maintains
// for its renderers. LastError is cleared at the start of every successful
// action and set on failure; LiveTranscript clears on its own a fixed
// delay after each finalized utterance.
type UIState struct {
	VoiceEnabled   bool
	LastError      string
	LiveTranscript string
}

// Orchestrator is the single owner of the worklist, the focused-job
// pointer, the vehicle snapshot and the UI state.
//
// Mutating actions are optimistic only insofar as the provider call is in
// flight: state is snapshotted, the call is made outside the lock, and the
// result is committed only on success. On failure the worklist is left
// exactly as it was and the error surfaces as UIState.LastError. No error
// is fatal; the orchestrator stays usable after any failure.
//
// Two actions on different job ids may be in flight simultaneously. Two
// concurrent actions on the same id race and the last-resolved call wins;
// the core does not serialize per job.
type Orchestrator struct {
	engine        *aggregator.Engine
	clients       map[job.Provider]ports.ProviderClient
	ranker        services.Ranker
	classifier    services.IntentClassifier
	logger        *slog.Logger
	transcriptTTL time.Duration

	mu         sync.Mutex
	jobs       map[string]*job.Job
	focusedID  string
	vehicle    vehicle.State
	ui         UIState
	clearTimer *time.Timer
}

// New creates the session orchestrator. The initial vehicle snapshot is
// parked with a comfortable cabin outside; telemetry overwrites it as soon
// as the external source reports.
func New(
	engine *aggregator.Engine,
	clients []ports.ProviderClient,
	logger *slog.Logger,
	transcriptTTL time.Duration,
) (*Orchestrator, error) {
	byProvider := make(map[job.Provider]ports.ProviderClient, len(clients))
	for _, c := range clients {
		if err := c.Provider().Validate(); err != nil {
			return nil, err
		}
		byProvider[c.Provider()] = c
	}

	initial, err := vehicle.NewState(0, 78, 22)
	if err != nil {
		return nil, err
	}

	return &Orchestrator{
		engine:        engine,
		clients:       byProvider,
		ranker:        services.NewRanker(),
		classifier:    services.NewIntentClassifier(),
		logger:        logger.With("component", "orchestrator"),
		transcriptTTL: transcriptTTL,
		jobs:          make(map[string]*job.Job),
		vehicle:       initial,
		ui:            UIState{VoiceEnabled: true},
	}, nil
}

// RefreshAll rebuilds the worklist from every provider.
//
// On total failure only LastError changes and the current worklist
// survives untouched. Otherwise the merge result replaces the worklist;
// a partial failure still applies the successful listings but surfaces
// which sources were unreachable.
//
// The merge runs under the lock against the worklist as it stands when
// the fan-out settles, so an accept or decline that resolved while the
// listings were in flight is never demoted by its stale re-listing.
func (o *Orchestrator) RefreshAll(ctx context.Context) error {
	outcome, err := o.engine.Refresh(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.ui.LastError = "Failed to refresh jobs"
		return err
	}

	merged := aggregator.Merge(o.worklistLocked(), outcome.Fetched)
	o.jobs = make(map[string]*job.Job, len(merged))
	for _, j := range merged {
		o.jobs[j.ID()] = j
	}
	if _, ok := o.jobs[o.focusedID]; !ok {
		o.focusedID = ""
	}

	if len(outcome.Failed) > 0 {
		names := make([]string, len(outcome.Failed))
		for i, p := range outcome.Failed {
			names[i] = p.String()
		}
		o.ui.LastError = fmt.Sprintf("Some sources are unavailable: %s", strings.Join(names, ", "))
	} else {
		o.ui.LastError = ""
	}
	return nil
}

// Accept claims the job with the given id.
//
// The safety gate is evaluated fresh against the current telemetry: while
// the vehicle is moving the provider is never contacted and the action
// fails with errs.ErrActionNotPermitted. On provider success the returned
// job replaces the local copy and the focus moves to it.
func (o *Orchestrator) Accept(ctx context.Context, jobID string) error {
	o.mu.Lock()
	if err := o.gateLocked("accept"); err != nil {
		o.ui.LastError = err.Error()
		o.mu.Unlock()
		return err
	}
	client, err := o.clientForLocked(jobID)
	if err != nil {
		o.ui.LastError = err.Error()
		o.mu.Unlock()
		return err
	}
	o.mu.Unlock()

	accepted, err := client.Accept(ctx, jobID)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.ui.LastError = "Failed to accept job"
		o.logger.WarnContext(ctx, "accept failed", "job", jobID, "error", err)
		return err
	}

	o.jobs[accepted.ID()] = accepted
	o.focusedID = accepted.ID()
	o.ui.LastError = ""
	return nil
}

// Decline rejects the job with the given id and removes it from the
// worklist. Gated like Accept: never permitted while driving.
func (o *Orchestrator) Decline(ctx context.Context, jobID string) error {
	o.mu.Lock()
	if err := o.gateLocked("decline"); err != nil {
		o.ui.LastError = err.Error()
		o.mu.Unlock()
		return err
	}
	client, err := o.clientForLocked(jobID)
	if err != nil {
		o.ui.LastError = err.Error()
		o.mu.Unlock()
		return err
	}
	o.mu.Unlock()

	err = client.Decline(ctx, jobID)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.ui.LastError = "Failed to decline job"
		o.logger.WarnContext(ctx, "decline failed", "job", jobID, "error", err)
		return err
	}

	delete(o.jobs, jobID)
	if o.focusedID == jobID {
		o.focusedID = ""
	}
	o.ui.LastError = ""
	return nil
}

// Advance moves the job one step through its lifecycle.
//
// Advance is deliberately not gated on parked state: it is the one
// driving-mode-safe action. Terminal statuses (and Available, which only
// an accept can leave) make the call a successful no-op. A job reaching
// Delivered clears the focused pointer, whichever job it points at: a
// completed delivery always returns the driver to the overview.
func (o *Orchestrator) Advance(ctx context.Context, jobID string) error {
	o.mu.Lock()
	current, ok := o.jobs[jobID]
	if !ok {
		err := errs.NewJobNotFoundError(jobID)
		o.ui.LastError = err.Error()
		o.mu.Unlock()
		return err
	}
	next := current.Status().Next()
	if next == current.Status() {
		o.ui.LastError = ""
		o.mu.Unlock()
		return nil
	}
	client, err := o.clientForLocked(jobID)
	if err != nil {
		o.ui.LastError = err.Error()
		o.mu.Unlock()
		return err
	}
	o.mu.Unlock()

	updated, err := client.AdvanceStatus(ctx, jobID, next)

	o.mu.Lock()
	defer o.mu.Unlock()

	if err != nil {
		o.ui.LastError = "Failed to update job status"
		o.logger.WarnContext(ctx, "advance failed", "job", jobID, "error", err)
		return err
	}

	o.jobs[updated.ID()] = updated
	if updated.Status() == job.Delivered {
		o.focusedID = ""
	}
	o.ui.LastError = ""
	return nil
}

// SetFocused points the job-detail views at the given job.
// The id must reference a job present in the worklist.
func (o *Orchestrator) SetFocused(jobID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, ok := o.jobs[jobID]; !ok {
		err := errs.NewJobNotFoundError(jobID)
		o.ui.LastError = err.Error()
		return err
	}
	o.focusedID = jobID
	return nil
}

// ClearFocused drops the focused pointer and sweeps delivered jobs out of
// the worklist; a delivered job lingers only while something still
// presents it.
func (o *Orchestrator) ClearFocused() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.focusedID = ""
	for id, j := range o.jobs {
		if j.Status() == job.Delivered {
			delete(o.jobs, id)
		}
	}
}

// Focused returns the focused job, if any.
func (o *Orchestrator) Focused() (*job.Job, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	j, ok := o.jobs[o.focusedID]
	return j, ok
}

// Job looks a single job up by id.
func (o *Orchestrator) Job(jobID string) (*job.Job, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	j, ok := o.jobs[jobID]
	return j, ok
}

// Worklist returns every known job ordered by descending score.
func (o *Orchestrator) Worklist() []*job.Job {
	o.mu.Lock()
	jobs := o.worklistLocked()
	o.mu.Unlock()

	return o.ranker.SortByScore(jobs)
}

// WorklistByStatus returns the jobs in the given status, ordered by
// descending score.
func (o *Orchestrator) WorklistByStatus(status job.Status) []*job.Job {
	filtered := make([]*job.Job, 0)
	for _, j := range o.Worklist() {
		if j.Status() == status {
			filtered = append(filtered, j)
		}
	}
	return filtered
}

// Vehicle returns the latest telemetry snapshot.
func (o *Orchestrator) Vehicle() vehicle.State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.vehicle
}

// SetVehicle replaces the telemetry snapshot. Only the external telemetry
// source calls this; the core itself never writes vehicle state.
func (o *Orchestrator) SetVehicle(state vehicle.State) error {
	if err := state.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	o.vehicle = state
	return nil
}

// UI returns a copy of the current UI state.
func (o *Orchestrator) UI() UIState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ui
}

// ToggleVoice flips voice control on or off and reports the new setting.
// While off, transcripts are ignored entirely.
func (o *Orchestrator) ToggleVoice() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.ui.VoiceEnabled = !o.ui.VoiceEnabled
	return o.ui.VoiceEnabled
}

// gateLocked evaluates the safety gate against the current telemetry.
// Must be called with the mutex held.
func (o *Orchestrator) gateLocked(action string) error {
	if o.vehicle.Access() == vehicle.Restricted {
		return errs.NewActionNotPermittedError(action, "vehicle is moving")
	}
	return nil
}

// clientForLocked resolves the provider client for a job id.
// Must be called with the mutex held.
func (o *Orchestrator) clientForLocked(jobID string) (ports.ProviderClient, error) {
	j, ok := o.jobs[jobID]
	if !ok {
		return nil, errs.NewJobNotFoundError(jobID)
	}
	client, ok := o.clients[j.Provider()]
	if !ok {
		return nil, errs.NewSourceUnavailableError(j.Provider().String())
	}
	return client, nil
}

func (o *Orchestrator) worklistLocked() []*job.Job {
	jobs := make([]*job.Job, 0, len(o.jobs))
	for _, j := range o.jobs {
		jobs = append(jobs, j)
	}
	return jobs
}
