package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/msto63/mConsole/core/config"
	"github.com/msto63/mConsole/core/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mconsole",
	Short: "mConsole - runtime console for Go applications",
	Long: `mConsole is an embeddable runtime console. Host applications register
typed variables and callable methods under stable names, and a small
command language reads and writes them while the program runs.

This binary is the standalone frontend to the library:

  repl     - interactive console session in the terminal
  exec     - run a single command and exit
  version  - show version information`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (TOML or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads the file named by --config, or builds an empty
// configuration that still resolves MCONSOLE_* environment overrides.
func loadConfig() (*config.Config, error) {
	options := config.LoadOptions{EnvPrefix: "MCONSOLE"}
	if cfgFile == "" {
		return config.New(options), nil
	}
	return config.LoadWithOptions(cfgFile, options)
}

// buildLogger derives the logger from configuration and --verbose.
// Without a configured log file output is discarded so log lines do
// not mix with console output on the terminal; --verbose routes debug
// logging to stderr instead.
func buildLogger(cfg *config.Config) (*log.Logger, error) {
	level := log.LevelInfo
	if parsed, err := log.ParseLevel(cfg.GetString("log.level", "info")); err == nil {
		level = parsed
	}
	if verbose {
		level = log.LevelDebug
	}

	format := log.FormatText
	if parsed, err := log.ParseFormat(cfg.GetString("log.format", "text")); err == nil {
		format = parsed
	}

	var output io.Writer = io.Discard
	if verbose {
		output = os.Stderr
	}
	if path := cfg.GetString("log.file"); path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		output = file
	}

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   "mconsole",
	}), nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
