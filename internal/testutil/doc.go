// Package testutil provides test fixtures and utilities.
//
// This package contains embedded TOML fixtures and helper functions for
// loading valid and invalid configurations and plans in unit tests.
//
// # Fixtures
//
// TOML fixtures are embedded using go:embed:
//
//	fixtures/valid_config.toml
//	fixtures/invalid_config.toml
//	fixtures/valid_plan.toml
//	fixtures/invalid_plan.toml
//
// # Loading Fixtures
//
//	cfg, err := testutil.ValidConfig()
//	plan, err := testutil.ValidPlan()
//	data, err := testutil.LoadFixture("valid_plan.toml")
//
// # Test Environments
//
// NewTestEnv creates a throwaway config directory for command tests:
//
//	env := testutil.NewTestEnv(t)
//	env.WriteConfigFixture("valid_config.toml")
//	env.AddPlan(plan)
//	// run commands with --config-dir env.Paths.ConfigDir
package testutil
