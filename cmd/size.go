package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/vlsm-ctl/internal/render"
	"github.com/firefly-engineering/vlsm-ctl/internal/vlsm"
)

var sizeFormat string

var sizeCmd = &cobra.Command{
	Use:   "size HOSTS...",
	Short: "Show the block each host count needs",
	Long: `Show the prefix length, mask, block size and usable addresses of the
smallest subnet that holds each host count, largest first.`,
	Example: `  vlsm-ctl size 100 50 20
  vlsm-ctl size 1000,2 -o json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSize,
}

func init() {
	sizeCmd.Flags().StringVarP(&sizeFormat, "format", "o", "", "Output format: table, json, or yaml (default from config)")
	rootCmd.AddCommand(sizeCmd)
}

func runSize(cmd *cobra.Command, args []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	format, err := outputFormat(cfg, sizeFormat)
	if err != nil {
		return err
	}

	reqs, err := vlsm.ParseHostRequirements(joinHosts(args))
	if err != nil {
		return reportFailure(cmd, err)
	}

	return render.WriteSizes(cmd.OutOrStdout(), render.Sizes(reqs.Hosts()), format)
}
