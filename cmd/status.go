package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kontentmcp/kontentmcp/internal/shared/cmdutils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show kontentmcp configuration status",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfgPath := configFile()

	fmt.Fprintf(out, "kontentmcp %s status\n\n", version)

	_, statErr := os.Stat(cfgPath)
	fmt.Fprintf(out, "Config:       %s %s\n", cfgPath, cmdutils.Mark(statErr == nil))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(out, "  (could not load config: %v)\n", err)
		return nil
	}

	k := cfg.Kontent
	if k.EnvironmentID != "" {
		fmt.Fprintf(out, "Environment:  %s %s\n", k.EnvironmentID, cmdutils.Mark(true))
	} else {
		fmt.Fprintln(out, "Environment:  (not set)")
	}
	if k.APIKey != "" {
		fmt.Fprintf(out, "API key:      %s\n", cmdutils.Mark(true))
	} else {
		fmt.Fprintln(out, "API key:      (not set)")
	}
	fmt.Fprintf(out, "Management:   %s\n", k.ManageAPIURL)
	fmt.Fprintf(out, "Delivery:     %s\n\n", k.DeliveryAPIURL)

	s := cfg.Server
	fmt.Fprintf(out, "Transport:    %s\n", s.Transport)
	if s.Transport != "stdio" {
		fmt.Fprintf(out, "Listen:       %s:%d\n", s.Host, s.Port)
	}
	fmt.Fprintf(out, "Validation:   %s\n", cmdutils.Mark(cfg.Tools.ValidateInput))
	if len(cfg.Tools.Disabled) > 0 {
		fmt.Fprintf(out, "Disabled:     %v\n", cfg.Tools.Disabled)
	}
	if len(cfg.Tools.Probe) > 0 {
		fmt.Fprintln(out, "\nProbe targets:")
		for name, t := range cfg.Tools.Probe {
			where := t.URL
			if where == "" {
				where = t.Command
			}
			fmt.Fprintf(out, "  %-20s %s\n", name, where)
		}
	}
	return nil
}
