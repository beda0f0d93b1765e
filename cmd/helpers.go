package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
)

// isTerminal reports whether f is attached to a terminal. Tests replace it.
var isTerminal = func(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// paths returns the configured paths, honouring --config-dir.
func paths() (*config.Paths, error) {
	if configDir != "" {
		return config.NewPaths(configDir), nil
	}
	p, err := config.DefaultPaths()
	if err != nil {
		return nil, errors.ConfigError("failed to resolve config directory", err)
	}
	return p, nil
}

// loadConfig loads config.toml and warns about keys it does not know.
func loadConfig() (*config.Config, *config.Paths, error) {
	p, err := paths()
	if err != nil {
		return nil, nil, err
	}

	cfg, err := config.LoadConfig(p.ConfigDir)
	if err != nil {
		return nil, nil, errors.ConfigError("failed to load config", err)
	}
	for _, key := range cfg.Undecoded {
		logWarning("Unknown config key %q in %s", key, p.ConfigFile)
	}

	logging.Debug("config loaded", "dir", p.ConfigDir, "network", cfg.DefaultNetwork, "format", cfg.Format)
	return cfg, p, nil
}

// loadPlan loads a saved plan or returns a PlanNotFound error.
func loadPlan(p *config.Paths, name string) (*config.Plan, error) {
	plan, err := config.LoadPlan(p.PlansDir, name)
	if err != nil {
		if errors.Is(err, config.ErrPlanNotFound) {
			return nil, errors.PlanNotFound(name)
		}
		return nil, errors.ConfigError("failed to load plan", err)
	}
	return plan, nil
}

// readHostsFile reads a host list from path, or from the command's stdin
// when path is "-".
func readHostsFile(cmd *cobra.Command, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrap(errors.ExitInvalidInput, "failed to read hosts file", err)
	}
	return string(data), nil
}

// joinHosts turns host arguments into allocator input. Each argument may
// itself hold a comma separated list.
func joinHosts(args []string) string {
	return strings.Join(args, ",")
}

// planSummary is a one-line description of a plan for listings.
func planSummary(plan *config.Plan) string {
	return fmt.Sprintf("%s [%s]", plan.Network, plan.HostsText())
}
