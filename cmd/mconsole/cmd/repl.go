package cmd

import (
	"github.com/msto63/mConsole/internal/tui"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive console session",
	Long: `Starts an interactive console session in the terminal.

Besides the builtin help and the demo add method, the session registers
a few targets of its own:

  console.prompt   - prompt text
  console.echo     - echo executed lines into the transcript
  console.history  - number of input lines kept for recall
  console.version  - frontend version (read-only)
  clear            - clears the transcript

Navigation:
  Tab       - complete a target name
  Up/Down   - recall input history
  Ctrl+L    - clear the transcript
  Ctrl+C    - quit`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
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

	return tui.Run(tui.Options{
		Console:      con,
		Logger:       logger,
		Version:      Version,
		Prompt:       cfg.GetString("repl.prompt", "> "),
		HistoryLimit: cfg.GetInt("repl.history", 100),
		Echo:         cfg.GetBool("repl.echo", true),
	})
}
