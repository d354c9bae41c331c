package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kontentmcp/kontentmcp/internal/config"
)

var onboardFromEnv bool

var onboardCmd = &cobra.Command{
	Use:   "onboard",
	Short: "Write a default configuration file",
	Long: `Write the default configuration to --config (or ~/.kontentmcp/config.json).
An existing file is refreshed: unknown keys are dropped and new defaults added.
Use a .yaml path to write YAML.`,
	RunE: runOnboard,
}

func init() {
	onboardCmd.Flags().BoolVar(&onboardFromEnv, "from-env", false, "Store KONTENT_* variables from the environment (and .env) in the file")
}

func runOnboard(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	cfgPath := configFile()

	cfg := config.DefaultConfig()
	verb := "Created"
	if _, err := os.Stat(cfgPath); err == nil {
		existing, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg, verb = *existing, "Refreshed"
	}

	if onboardFromEnv {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		if err := config.ApplyEnv(&cfg); err != nil {
			return err
		}
	}
	if err := config.Save(&cfg, cfgPath); err != nil {
		return err
	}
	fmt.Fprintf(out, "✓ %s config at %s\n", verb, cfgPath)

	if cfg.Kontent.EnvironmentID == "" || cfg.Kontent.APIKey == "" {
		fmt.Fprintln(out, "\nNext steps:")
		fmt.Fprintf(out, "  1. Set kontent.environmentId and kontent.apiKey in %s\n", cfgPath)
		fmt.Fprintln(out, "     or export KONTENT_ENVIRONMENT_ID and KONTENT_API_KEY")
		fmt.Fprintln(out, "  2. Run: kontentmcp serve stdio")
		return nil
	}
	fmt.Fprintln(out, "Run: kontentmcp serve stdio")
	return nil
}
