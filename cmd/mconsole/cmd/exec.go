package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <command> [args...]",
	Short: "Run a single console command and exit",
	Long: `Runs one console command against the demo console and prints the
result. Quote the whole line when an argument contains quote characters,
so the shell does not strip them.

Examples:
  mconsole exec help
  mconsole exec add 3 5

The command is aborted after exec.timeout (default 30s).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("loading configuration failed", err)
		return err
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		printError("opening log file failed", err)
		return err
	}

	con := buildConsole(logger)

	timeout := cfg.GetDuration("exec.timeout", 30*time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	output, err := con.Execute(ctx, strings.Join(args, " "))
	if err != nil {
		printError("command failed", err)
		return err
	}

	if output != "" {
		fmt.Println(output)
	}
	return nil
}
