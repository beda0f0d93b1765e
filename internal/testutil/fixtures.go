package testutil

import (
	"embed"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
)

//go:embed fixtures/*.toml
var fixturesFS embed.FS

// LoadFixture loads a TOML fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// LoadConfigFixture decodes a config fixture over the built-in defaults,
// the way config.LoadConfig does.
func LoadConfigFixture(name string) (*config.Config, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	cfg := config.Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadPlanFixture decodes a plan fixture.
func LoadPlanFixture(name string) (*config.Plan, error) {
	data, err := LoadFixture(name)
	if err != nil {
		return nil, err
	}
	var plan config.Plan
	if err := toml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// ValidConfig returns a valid config.
func ValidConfig() (*config.Config, error) {
	return LoadConfigFixture("valid_config.toml")
}

// InvalidConfig returns a config that fails validation.
func InvalidConfig() (*config.Config, error) {
	return LoadConfigFixture("invalid_config.toml")
}

// ValidPlan returns a valid plan.
func ValidPlan() (*config.Plan, error) {
	return LoadPlanFixture("valid_plan.toml")
}

// InvalidPlan returns a plan that fails validation.
func InvalidPlan() (*config.Plan, error) {
	return LoadPlanFixture("invalid_plan.toml")
}
