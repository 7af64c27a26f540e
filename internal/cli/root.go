// Package cli implements the padchain command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/padchain/internal/config"
	"github.com/katalvlaran/padchain/internal/logger"
)

// Version is the padchain release.
const Version = "0.1.0"

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// app carries state resolved once by the root command for its subcommands.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        config.Config
	log        *logger.Logger
}

// NewRootCmd creates the top-level "padchain" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New(), log: logger.Nop()}

	root := &cobra.Command{
		Use:   "padchain",
		Short: "Count human key presses through a chain of keypad robots",
		Long: `padchain computes how many buttons a human must press on a directional
keypad so that a chain of robots, each driving the next robot's keypad,
finally types a code on a numeric door keypad.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: ./padchain.yaml if present)")
	pf.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.Bool("dev", false, "human-readable console logs")
	pf.String("db", "", "run history database (default: ~/.padchain/runs.db)")
	mustBind(a.v, config.KeyLogLevel, pf.Lookup("log-level"))
	mustBind(a.v, config.KeyDevelopment, pf.Lookup("dev"))
	mustBind(a.v, config.KeyDB, pf.Lookup("db"))

	root.AddCommand(newSolveCmd(a))
	root.AddCommand(newPathsCmd(a))
	root.AddCommand(newVerifyCmd(a))
	root.AddCommand(newHistoryCmd(a))
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

func (a *app) init() error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg

	log, err := logger.NewLogger(cfg.LogLevel, cfg.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	a.log = log
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "padchain v"+Version)
		},
	}
}
