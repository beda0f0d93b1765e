package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/config"
	"github.com/firefly-engineering/vlsm-ctl/internal/errors"
	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
	"github.com/firefly-engineering/vlsm-ctl/internal/render"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

var (
	allocHostsFile string
	allocPlan      string
	allocFormat    string
)

var allocateCmd = &cobra.Command{
	Use:     "allocate [NETWORK] [HOSTS...]",
	Aliases: []string{"alloc"},
	Short:   "Allocate subnets for a list of host counts",
	Long: `Allocate subnets inside NETWORK for each host count.

NETWORK is an IPv4 network in CIDR form (192.168.1.0/24). Host bits that
are set are cleared, and a bare address is treated as /32. HOSTS may be
separate arguments or comma separated lists.

Missing inputs fall back to default_network and default_hosts from
config.toml.`,
	Example: `  vlsm-ctl allocate 192.168.1.0/24 100 50 20
  vlsm-ctl allocate 10.0.0.0/16 500,200,20 -o json
  printf '100\n50\n' | vlsm-ctl allocate 10.1.0.0/24 --hosts-file -
  vlsm-ctl allocate --plan office`,
	RunE: runAllocate,
}

func init() {
	allocateCmd.Flags().StringVar(&allocHostsFile, "hosts-file", "", "Read host counts from a file, one per line (- for stdin)")
	allocateCmd.Flags().StringVar(&allocPlan, "plan", "", "Use the network and hosts of a saved plan")
	allocateCmd.Flags().StringVarP(&allocFormat, "format", "o", "", "Output format: table, json, or yaml (default from config)")
	rootCmd.AddCommand(allocateCmd)
}

func runAllocate(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadConfig()
	if err != nil {
		return err
	}

	network, hosts, err := allocationInputs(cmd, cfg, p, args)
	if err != nil {
		return err
	}

	format, err := outputFormat(cfg, allocFormat)
	if err != nil {
		return err
	}

	logging.Debug("allocating", "network", network, "hosts", hosts)

	res, err := vlsm.Allocate(network, hosts)
	if err != nil {
		return reportFailure(cmd, err)
	}

	if res.Parent.Normalized() {
		logWarning("Network %s has host bits set; using %s", res.Parent.Input(), res.Parent)
	}
	for _, r := range res.Records {
		logging.Debug("subnet allocated", "requested", r.Requested, "subnet", r.SubnetCIDR, "usable", r.UsableCount)
	}

	return render.Write(cmd.OutOrStdout(), res, format)
}

// allocationInputs resolves the network and host list from --plan, the
// positional arguments, --hosts-file and the config defaults, in that order.
func allocationInputs(cmd *cobra.Command, cfg *config.Config, p *config.Paths, args []string) (string, string, error) {
	if allocPlan != "" {
		if len(args) > 0 || allocHostsFile != "" {
			return "", "", errors.ValidationError("--plan cannot be combined with a network, hosts, or --hosts-file")
		}
		plan, err := loadPlan(p, allocPlan)
		if err != nil {
			return "", "", err
		}
		logging.Debug("using plan", "name", plan.Name)
		return plan.Network, plan.HostsText(), nil
	}

	network := cfg.DefaultNetwork
	if len(args) > 0 {
		network = args[0]
	} else {
		logging.Debug("no network given, using default", "network", network)
	}

	switch {
	case allocHostsFile != "":
		if len(args) > 1 {
			return "", "", errors.ValidationError("--hosts-file cannot be combined with host arguments")
		}
		hosts, err := readHostsFile(cmd, allocHostsFile)
		return network, hosts, err
	case len(args) > 1:
		return network, joinHosts(args[1:]), nil
	}

	logging.Debug("no hosts given, using defaults", "hosts", cfg.DefaultHosts)
	return network, config.HostsText(cfg.DefaultHosts, ","), nil
}

// outputFormat picks the --format flag, falling back to the config.
func outputFormat(cfg *config.Config, flag string) (render.Format, error) {
	name := flag
	if name == "" {
		name = cfg.Format
	}
	format, err := render.ParseFormat(name)
	if err != nil {
		return "", errors.Wrap(errors.ExitInvalidInput, "invalid output format", err)
	}
	return format, nil
}

// reportFailure shows an allocation error to the user and maps it to an
// exit code. The records placed before the failure only reach the debug log.
func reportFailure(cmd *cobra.Command, err error) error {
	cmd.SilenceUsage = true

	var vErr *vlsm.Error
	if errors.As(err, &vErr) {
		for _, r := range vErr.Partial {
			logging.Debug("placed before failure", "requested", r.Requested, "subnet", r.SubnetCIDR)
		}
		logError("%s: %s", vErr.Kind, vErr.Message())
		cmd.SilenceErrors = true
	}

	return errors.FromVLSM(err)
}
