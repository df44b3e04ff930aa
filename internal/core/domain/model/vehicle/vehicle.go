// Package vehicle models the vehicle telemetry the orchestration core
// consumes and the safety gate derived from it. Telemetry is written only
// by an external source (simulated sliders or real sensors); the core
// never mutates it.
package vehicle

import (
	"fmt"

	"gigboard/internal/pkg/errs"
)

// State is a snapshot of vehicle telemetry. It is a value object: a new
// snapshot replaces the old one wholesale, there is no partial mutation.
type State struct {
	speedKph      float64
	batteryPct    int
	outsideTempC  float64
	isConstructed bool
}

// NewState creates a validated telemetry snapshot.
// Speed must be non-negative and battery must be within 0..100.
func NewState(speedKph float64, batteryPct int, outsideTempC float64) (State, error) {
	if speedKph < 0 {
		return State{}, errs.NewValueIsInvalidErrorWithCause(
			"speedKph",
			fmt.Errorf("%v is negative", speedKph),
		)
	}
	if batteryPct < 0 || batteryPct > 100 {
		return State{}, errs.NewValueIsOutOfRangeError("batteryPct", batteryPct, 0, 100)
	}

	return State{
		speedKph:      speedKph,
		batteryPct:    batteryPct,
		outsideTempC:  outsideTempC,
		isConstructed: true,
	}, nil
}

// Validate ensures the State was created through NewState.
func (s State) Validate() error {
	if !s.isConstructed {
		return errs.NewValueIsRequiredError("vehicle state must be created via NewState")
	}
	return nil
}

// SpeedKph returns the current speed in km/h.
func (s State) SpeedKph() float64 {
	return s.speedKph
}

// BatteryPct returns the battery charge percentage.
func (s State) BatteryPct() int {
	return s.batteryPct
}

// OutsideTempC returns the outside temperature in degrees Celsius.
func (s State) OutsideTempC() float64 {
	return s.outsideTempC
}

// IsParked reports whether the vehicle is stationary.
// Parked is defined as exactly zero speed.
func (s State) IsParked() bool {
	return s.speedKph == 0
}

// AccessLevel is the safety gate's verdict over a telemetry snapshot.
type AccessLevel int

const (
	// FullAccess permits every action: accept, decline, advance, free text.
	FullAccess AccessLevel = iota

	// Restricted permits only lifecycle advancement and passive viewing.
	// Accept, decline and free-text entry are disabled.
	Restricted
)

// String returns a human-readable access level name.
func (a AccessLevel) String() string {
	if a == FullAccess {
		return "full-access"
	}
	return "restricted"
}

// Access is the safety gate: a pure function of the telemetry snapshot.
// The verdict is Restricted whenever the vehicle is not parked. Callers
// must evaluate it fresh on every action attempt rather than caching it,
// since telemetry changes between renders.
func (s State) Access() AccessLevel {
	if s.IsParked() {
		return FullAccess
	}
	return Restricted
}
