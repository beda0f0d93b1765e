package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
)

// TestEnv is a throwaway config directory.
type TestEnv struct {
	T     *testing.T
	Paths *config.Paths
}

// NewTestEnv creates an empty config directory under t.TempDir.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	paths := config.NewPaths(filepath.Join(t.TempDir(), "config"))
	if err := os.MkdirAll(paths.PlansDir, 0755); err != nil {
		t.Fatalf("Failed to create %s: %v", paths.PlansDir, err)
	}

	return &TestEnv{T: t, Paths: paths}
}

// WriteConfig writes content as config.toml.
func (e *TestEnv) WriteConfig(content string) {
	e.T.Helper()
	if err := os.WriteFile(e.Paths.ConfigFile, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write config: %v", err)
	}
}

// WriteConfigFixture copies a fixture to config.toml.
func (e *TestEnv) WriteConfigFixture(name string) {
	e.T.Helper()
	data, err := LoadFixture(name)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", name, err)
	}
	e.WriteConfig(string(data))
}

// AddPlan saves plan into the plans directory.
func (e *TestEnv) AddPlan(plan *config.Plan) {
	e.T.Helper()
	if err := config.SavePlan(e.Paths.PlansDir, plan); err != nil {
		e.T.Fatalf("Failed to save plan %s: %v", plan.Name, err)
	}
}

// AddPlanFixture copies a plan fixture into the plans directory as
// <name>.toml, without validating it.
func (e *TestEnv) AddPlanFixture(fixture, name string) {
	e.T.Helper()
	data, err := LoadFixture(fixture)
	if err != nil {
		e.T.Fatalf("Failed to load fixture %s: %v", fixture, err)
	}
	path := filepath.Join(e.Paths.PlansDir, name+".toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		e.T.Fatalf("Failed to write plan %s: %v", path, err)
	}
}
