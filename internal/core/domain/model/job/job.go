package job

import (
	"errors"
	"fmt"

	"gigboard/internal/pkg/errs"
)

// ErrJobIsNotConstructed is returned when a Job instance was not created
// through the NewJob or RestoreJob factory methods.
var ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob")

// Details holds the descriptive fields of a job. They are opaque to the
// orchestration core: nothing inspects them, they are only carried through
// to rendering. Counterpart is the person on the other end of the delivery
// (the customer), PickupName the business the goods come from.
type Details struct {
	PickupName     string
	Counterpart    string
	PickupAddress  string
	DropoffAddress string
	Notes          string
}

// Job represents a single delivery task offered by a provider. It is the
// aggregate the worklist is built from.
//
// Job maintains these invariants:
//   - id is non-empty and never reused; ids are assumed globally unique
//     across providers
//   - provider is one of the configured sources
//   - distance is strictly positive (it divides payout when scoring)
//   - pickup and dropoff ETAs are non-negative
//   - status is a valid lifecycle state
//
// Jobs are immutable values from the orchestrator's point of view: a status
// change produces a replacement instance (see WithStatus), committed to the
// worklist only after the provider confirmed the transition.
type Job struct {
	id            string
	provider      Provider
	details       Details
	payout        float64
	distance      float64
	pickupEtaMin  int
	dropoffEtaMin int
	status        Status
	isConstructed bool
}

// NewJob creates a freshly listed job in Available status.
// All invariants are validated; any violation returns an error.
func NewJob(
	id string,
	provider Provider,
	details Details,
	payout float64,
	distance float64,
	pickupEtaMin int,
	dropoffEtaMin int,
) (*Job, error) {
	return RestoreJob(id, provider, details, payout, distance, pickupEtaMin, dropoffEtaMin, Available)
}

// RestoreJob rebuilds a job in an explicit lifecycle status, for instance
// from a provider response or a stored representation. Validation is the
// same as NewJob plus a status check.
func RestoreJob(
	id string,
	provider Provider,
	details Details,
	payout float64,
	distance float64,
	pickupEtaMin int,
	dropoffEtaMin int,
	status Status,
) (*Job, error) {
	j := &Job{
		details:       details,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setProvider(provider),
		j.setPayout(payout),
		j.setDistance(distance),
		j.setETAs(pickupEtaMin, dropoffEtaMin),
		j.setStatus(status),
	); err != nil {
		return nil, err
	}

	return j, nil
}

// Validate ensures the Job instance was properly constructed through a
// factory method. Zero-value or hand-assembled jobs fail this check.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}
	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id == other.id
}

// ID returns the job's unique identifier within its provider's namespace.
func (j *Job) ID() string {
	return j.id
}

// Provider returns the source that listed the job.
func (j *Job) Provider() Provider {
	return j.provider
}

// Details returns the descriptive fields carried for rendering.
func (j *Job) Details() Details {
	return j.details
}

// Payout returns the job's payout in currency units.
func (j *Job) Payout() float64 {
	return j.payout
}

// Distance returns the job's total driving distance. Always positive.
func (j *Job) Distance() float64 {
	return j.distance
}

// PickupEtaMin returns the estimated minutes to reach the pickup.
func (j *Job) PickupEtaMin() int {
	return j.pickupEtaMin
}

// DropoffEtaMin returns the estimated minutes to reach the dropoff.
func (j *Job) DropoffEtaMin() int {
	return j.dropoffEtaMin
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// Score is the job's ranking value: payout divided by distance.
// Higher is better. Distance is validated positive at construction,
// so the division is always defined.
func (j *Job) Score() float64 {
	return j.payout / j.distance
}

// IsActive reports whether the job is locally in progress, meaning a
// refresh must preserve it verbatim instead of trusting provider listings.
func (j *Job) IsActive() bool {
	return j.status.IsActive()
}

// WithStatus returns a copy of the job carrying the given status.
// The receiver is left unchanged.
func (j *Job) WithStatus(status Status) (*Job, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	clone := *j
	clone.status = status
	return &clone, nil
}

func (j *Job) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("id")
	}
	j.id = id
	return nil
}

func (j *Job) setProvider(provider Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}
	j.provider = provider
	return nil
}

func (j *Job) setPayout(payout float64) error {
	if payout < 0 {
		return errs.NewValueIsInvalidErrorWithCause("payout", fmt.Errorf("%v is negative", payout))
	}
	j.payout = payout
	return nil
}

func (j *Job) setDistance(distance float64) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance", fmt.Errorf("%v is not greater than 0", distance))
	}
	j.distance = distance
	return nil
}

func (j *Job) setETAs(pickupEtaMin, dropoffEtaMin int) error {
	if pickupEtaMin < 0 {
		return errs.NewValueIsInvalidErrorWithCause("pickupEtaMin", fmt.Errorf("%d is negative", pickupEtaMin))
	}
	if dropoffEtaMin < 0 {
		return errs.NewValueIsInvalidErrorWithCause("dropoffEtaMin", fmt.Errorf("%d is negative", dropoffEtaMin))
	}
	j.pickupEtaMin = pickupEtaMin
	j.dropoffEtaMin = dropoffEtaMin
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}
