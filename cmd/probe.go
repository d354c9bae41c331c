package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	toolcfg "github.com/kontentmcp/kontentmcp/internal/config/tool"
	"github.com/kontentmcp/kontentmcp/internal/container"
	"github.com/kontentmcp/kontentmcp/internal/probe"
	"github.com/kontentmcp/kontentmcp/internal/shared/cmdutils"
)

var (
	probeURL     string
	probeCommand string
	probeToken   string
	probeCall    string
	probeArgs    string
	probeTimeout time.Duration
)

var probeCmd = &cobra.Command{
	Use:   "probe [target]",
	Short: "Connect to a running MCP server and list or call its tools",
	Long: `Connect to an MCP server named under tools.probe in the config, or to the
server given by --url or --command, list its tools and optionally call one.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func init() {
	f := probeCmd.Flags()
	f.StringVar(&probeURL, "url", "", "Streamable HTTP endpoint, e.g. http://localhost:3001/mcp")
	f.StringVar(&probeCommand, "command", "", "Command line of a stdio server to spawn")
	f.StringVar(&probeToken, "token", "", "Bearer token sent with HTTP requests")
	f.StringVar(&probeCall, "call", "", "Tool to call after listing")
	f.StringVarP(&probeArgs, "args", "a", "{}", "Arguments for --call as a JSON object")
	f.DurationVar(&probeTimeout, "timeout", 60*time.Second, "Overall timeout")
}

func probeTarget(targets map[string]toolcfg.MCPServerConfig, args []string) (string, toolcfg.MCPServerConfig, error) {
	if len(args) == 1 {
		t, ok := targets[args[0]]
		if !ok {
			return "", t, fmt.Errorf("no probe target %q in config", args[0])
		}
		return args[0], t, nil
	}
	var t toolcfg.MCPServerConfig
	switch {
	case probeURL != "":
		t.URL = probeURL
	case probeCommand != "":
		parts := strings.Fields(probeCommand)
		t.Command, t.Args = parts[0], parts[1:]
	default:
		return "", t, fmt.Errorf("give a target name, --url or --command")
	}
	if probeToken != "" {
		t.Headers = map[string]string{"Authorization": "Bearer " + probeToken}
	}
	return "adhoc", t, nil
}

func runProbe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c, err := container.New(cfg, version)
	if err != nil {
		return err
	}
	mgr := c.ProbeManager()
	defer mgr.Close()

	name, target, err := probeTarget(mgr.Targets(), args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	session, err := mgr.Open(ctx, name, target)
	if err != nil {
		return fmt.Errorf("connect %s: %w", name, err)
	}
	out := cmd.OutOrStdout()
	found := session.Tools.Sorted()
	fmt.Fprintf(out, "%s %s: %d tools (%s)\n", cmdutils.Mark(true), name, len(found), session.Took.Round(time.Millisecond))
	if probeCall == "" {
		for _, t := range found {
			fmt.Fprintf(out, "  %-40s %s\n", t.Name(), cmdutils.Truncate(t.Description(), 70))
		}
		return nil
	}

	t := session.Tool(probeCall)
	if t == nil {
		return fmt.Errorf("%s has no tool %q", name, probeCall)
	}
	params := map[string]any{}
	if err := json.Unmarshal([]byte(probeArgs), &params); err != nil {
		return fmt.Errorf("--args must be a JSON object: %w", err)
	}
	res, err := t.Execute(ctx, params)
	if err != nil {
		return err
	}
	cmdutils.PrintResponse(out, probe.Text(res), res.IsError)
	return nil
}
