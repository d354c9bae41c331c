package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kontentmcp/kontentmcp/internal/container"
	"github.com/kontentmcp/kontentmcp/internal/probe"
	"github.com/kontentmcp/kontentmcp/internal/shared/cmdutils"
	"github.com/kontentmcp/kontentmcp/internal/tools"
)

var toolArgs string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the registered tools",
	Args:  cobra.NoArgs,
	RunE:  runToolsList,
}

var toolsShowCmd = &cobra.Command{
	Use:   "show <tool>",
	Short: "Print a tool's input schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolsShow,
}

var toolsCallCmd = &cobra.Command{
	Use:   "call <tool>",
	Short: "Run a tool once against the configured environment",
	Args:  cobra.ExactArgs(1),
	RunE:  runToolsCall,
}

func init() {
	toolsCallCmd.Flags().StringVarP(&toolArgs, "args", "a", "{}", "Tool arguments as a JSON object")
	toolsCmd.AddCommand(toolsShowCmd)
	toolsCmd.AddCommand(toolsCallCmd)
}

func loadRegistry() (*tools.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	c, err := container.New(cfg, version)
	if err != nil {
		return nil, err
	}
	return c.Registry(), nil
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, t := range reg.AllTools().Sorted() {
		fmt.Fprintf(w, "%s\t%s\n", t.Name(), cmdutils.Truncate(t.Description(), 80))
	}
	return w.Flush()
}

func runToolsShow(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	t := reg.GetTool(tools.ToolName(args[0]))
	if t == nil {
		return fmt.Errorf("unknown tool %q", args[0])
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n%s\n\n", t.Name(), t.Description())
	cmdutils.PrintResponse(out, string(t.Parameters()), false)
	return nil
}

func runToolsCall(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	t := reg.GetTool(tools.ToolName(args[0]))
	if t == nil {
		return fmt.Errorf("unknown tool %q", args[0])
	}
	params := map[string]any{}
	if err := json.Unmarshal([]byte(toolArgs), &params); err != nil {
		return fmt.Errorf("--args must be a JSON object: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, err := t.Execute(ctx, params)
	if err != nil {
		return err
	}
	cmdutils.PrintResponse(cmd.OutOrStdout(), probe.Text(res), res.IsError)
	return nil
}
