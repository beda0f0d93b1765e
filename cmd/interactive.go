package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/render"
	"github.com/firefly-engineering/vlsm-ctl/internal/tui"
)

var interactivePlan string

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"ui"},
	Short:   "Open the interactive allocation form",
	Long: `Opens a form with a network field and a host list, prefilled from
config.toml or from --plan.

Keys:
  Tab/Shift+Tab  - Move between fields
  Enter/Ctrl+S   - Calculate (Enter on the Generate button)
  Esc/Ctrl+C     - Quit

The last successful table is printed when the form closes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var plan *config.Plan
		if interactivePlan != "" {
			p, err := paths()
			if err != nil {
				return err
			}
			if plan, err = loadPlan(p, interactivePlan); err != nil {
				return err
			}
		}
		return runInteractive(cmd, plan)
	},
}

func init() {
	interactiveCmd.Flags().StringVar(&interactivePlan, "plan", "", "Prefill the form from a saved plan")
	rootCmd.AddCommand(interactiveCmd)
}

func requireTerminal() error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return errors.TerminalRequired()
	}
	return nil
}

// runInteractive opens the form, prefilled from plan when it is not nil.
func runInteractive(cmd *cobra.Command, plan *config.Plan) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	opts := tui.FormOptions{
		Network: cfg.DefaultNetwork,
		Hosts:   cfg.DefaultHostsText(),
	}
	if plan != nil {
		opts.Network = plan.Network
		opts.Hosts = config.HostsText(plan.Hosts, "\n")
	}

	logging.Debug("interactive form started", "network", opts.Network)

	res, err := tui.RunForm(opts)
	if err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	if res == nil {
		return nil
	}

	return render.Write(cmd.OutOrStdout(), res, render.FormatTable)
}
