package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configDir  string
)

var rootCmd = &cobra.Command{
	Use:   "vlsm-ctl",
	Short: "VLSM IPv4 subnet allocator",
	Long: `vlsm-ctl divides an IPv4 network into subnets sized for a list of
host counts, using Variable Length Subnet Masking.

Requirements are placed largest first, each in the smallest power-of-two
block that holds the requested hosts plus the network and broadcast
addresses. Allocation is all-or-nothing: if any requirement does not fit,
no subnets are reported.

Run without a subcommand in a terminal to open the interactive form.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, cmd.ErrOrStderr())
		logging.SetUserOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
	RunE: runRoot,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default $VLSM_CTL_CONFIG_DIR or the user config dir)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return cmd.Help()
	}
	return runInteractive(cmd, nil)
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
	logError   = logging.UserError
)
