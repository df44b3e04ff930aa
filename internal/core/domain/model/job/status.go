package job

import (
	"fmt"

	"gigboard/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery job.
// It implements a state machine with a fixed, total forward sequence:
//
//	Available ──> Accepted ──> EnroutePickup ──> PickedUp ──> EnrouteDropoff ──> Delivered
//	    │
//	    └──> Declined
//
// Delivered and Declined are terminal. The only way out of Available is an
// explicit accept or decline; Next never moves a job past Available on its
// own because acceptance must be confirmed by the job's provider first.
//
// Status is a value object that validates state transitions and provides
// string representations for transport and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status of a freshly listed job.
	// Jobs in this status are offered to the driver but not yet claimed.
	Available

	// Accepted indicates the driver has claimed the job with its provider.
	Accepted

	// EnroutePickup indicates the driver is driving to the pickup location.
	EnroutePickup

	// PickedUp indicates the goods are on board.
	PickedUp

	// EnrouteDropoff indicates the driver is driving to the dropoff location.
	EnrouteDropoff

	// Delivered indicates the job finished successfully. Terminal.
	Delivered

	// Declined indicates the driver rejected the job. Terminal; declined
	// jobs are removed from the worklist rather than kept in this status.
	Declined
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Available:      "available",
		Accepted:       "accepted",
		EnroutePickup:  "enroute_pickup",
		PickedUp:       "picked_up",
		EnrouteDropoff: "enroute_dropoff",
		Delivered:      "delivered",
		Declined:       "declined",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Available:      "available",
		Accepted:       "accepted",
		EnroutePickup:  "enroute_pickup",
		PickedUp:       "picked_up",
		EnrouteDropoff: "enroute_dropoff",
		Delivered:      "delivered",
		Declined:       "declined",
	}
}

// ParseStatus converts a wire representation back into a Status.
// Returns an error for unrecognized values.
func ParseStatus(raw string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == raw {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", raw),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status allows no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Declined
}

// IsActive reports whether a job in this status is locally in progress.
// Active jobs are preserved verbatim across worklist refreshes.
func (s Status) IsActive() bool {
	return s != Available && s != Declined && s != Unknown
}

// Next returns the next status in the fixed lifecycle sequence.
//
// Calling Next on a terminal status returns the status unchanged; that is a
// no-op for callers, not an error. Available also returns itself: a job
// leaves Available only through an accept or decline confirmed by its
// provider, never through plain advancement.
func (s Status) Next() Status {
	switch s {
	case Accepted:
		return EnroutePickup
	case EnroutePickup:
		return PickedUp
	case PickedUp:
		return EnrouteDropoff
	case EnrouteDropoff:
		return Delivered
	default:
		return s
	}
}
