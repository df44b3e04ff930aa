package providersim

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// Fixtures is the parsed seed dataset the simulated providers serve from.
type Fixtures struct {
	Jobs []FixtureJob `yaml:"jobs"`
}

// FixtureJob is one seeded job row. Status defaults to available and Taken
// marks a job already claimed by another actor, which makes Accept fail
// with the already-taken error.
type FixtureJob struct {
	ID             string  `yaml:"id"`
	Provider       string  `yaml:"provider"`
	PickupName     string  `yaml:"pickupName"`
	Counterpart    string  `yaml:"counterpart"`
	PickupAddress  string  `yaml:"pickupAddress"`
	DropoffAddress string  `yaml:"dropoffAddress"`
	Notes          string  `yaml:"notes"`
	PayoutUsd      float64 `yaml:"payoutUsd"`
	DistanceMi     float64 `yaml:"distanceMi"`
	PickupEtaMin   int     `yaml:"pickupEtaMin"`
	DropoffEtaMin  int     `yaml:"dropoffEtaMin"`
	Status         string  `yaml:"status"`
	Taken          bool    `yaml:"taken"`
}

// DefaultFixtures parses the embedded seed dataset.
func DefaultFixtures() (Fixtures, error) {
	return parseFixtures(defaultFixtures)
}

// LoadFixtures reads a seed dataset from a YAML file, for overriding the
// embedded one in local setups.
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixtures{}, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	return parseFixtures(data)
}

func parseFixtures(data []byte) (Fixtures, error) {
	var f Fixtures
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Fixtures{}, fmt.Errorf("failed to parse fixtures YAML: %w", err)
	}
	return f, nil
}
