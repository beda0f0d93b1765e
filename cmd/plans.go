package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/tui"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

var (
	planDescription string
	planForce       bool
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "List saved plans",
	Long: `List the plans saved in the plans directory.

A plan is a named network and host list. Run one with
"vlsm-ctl allocate --plan NAME".`,
	Args: cobra.NoArgs,
	RunE: runPlans,
}

var plansSaveCmd = &cobra.Command{
	Use:   "save NAME NETWORK HOSTS...",
	Short: "Save a network and host list as a plan",
	Example: `  vlsm-ctl plans save office 192.168.1.0/24 100 50 20 --description "Main office"`,
	Args:    cobra.MinimumNArgs(3),
	RunE:    runPlansSave,
}

var plansPickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Choose a plan and open it in the interactive form",
	Long: `Opens an interactive list of saved plans.

Use arrow keys or j/k to navigate, / to filter, Enter to open the plan in
the form, q/Esc to quit.`,
	Args: cobra.NoArgs,
	RunE: runPlansPick,
}

func init() {
	plansSaveCmd.Flags().StringVar(&planDescription, "description", "", "Plan description")
	plansSaveCmd.Flags().BoolVarP(&planForce, "force", "f", false, "Overwrite an existing plan")
	plansCmd.AddCommand(plansSaveCmd)
	plansCmd.AddCommand(plansPickCmd)
	rootCmd.AddCommand(plansCmd)
}

func runPlans(cmd *cobra.Command, args []string) error {
	p, err := paths()
	if err != nil {
		return err
	}

	plans, err := config.ListPlans(p.PlansDir)
	if err != nil {
		return errors.ConfigError("failed to list plans", err)
	}

	if len(plans) == 0 {
		logInfo("No plans found. Save one with: vlsm-ctl plans save <name> <network> <hosts...>")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAN\tNETWORK\tHOSTS\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-------\t-----\t-----------")

	for _, plan := range plans {
		desc := plan.Description
		if desc == "" {
			desc = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", plan.Name, plan.Network, plan.HostsText(), desc)
	}

	return w.Flush()
}

func runPlansSave(cmd *cobra.Command, args []string) error {
	name, network := args[0], args[1]

	reqs, err := vlsm.ParseHostRequirements(joinHosts(args[2:]))
	if err != nil {
		return errors.InvalidInput(err)
	}

	plan := &config.Plan{
		Name:        name,
		Description: planDescription,
		Network:     network,
		Hosts:       reqs.Hosts(),
	}
	if err := plan.Validate(); err != nil {
		return errors.Wrap(errors.ExitInvalidInput, "invalid plan", err)
	}

	p, err := paths()
	if err != nil {
		return err
	}

	if !planForce {
		if _, err := config.LoadPlan(p.PlansDir, name); err == nil {
			return errors.ValidationError(fmt.Sprintf("plan %s already exists (use --force to overwrite)", name))
		}
	}

	if err := config.SavePlan(p.PlansDir, plan); err != nil {
		return errors.ConfigError("failed to save plan", err)
	}

	logging.Debug("plan saved", "name", name, "dir", p.PlansDir)
	logSuccess("Saved plan %s: %s", name, planSummary(plan))
	return nil
}

func runPlansPick(cmd *cobra.Command, args []string) error {
	if err := requireTerminal(); err != nil {
		return err
	}

	p, err := paths()
	if err != nil {
		return err
	}

	plans, err := config.ListPlans(p.PlansDir)
	if err != nil {
		return errors.ConfigError("failed to list plans", err)
	}

	if len(plans) == 0 {
		logInfo("No plans found. Save one with: vlsm-ctl plans save <name> <network> <hosts...>")
		return nil
	}

	plan, err := tui.RunPicker(plans)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}
	if plan == nil {
		logging.Debug("picker cancelled")
		return nil
	}

	logging.Debug("plan picked", "name", plan.Name)
	return runInteractive(cmd, plan)
}
