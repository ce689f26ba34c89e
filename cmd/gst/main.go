package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/gstcalc/internal/cli"
	"github.com/Veraticus/gstcalc/internal/common"
	"github.com/Veraticus/gstcalc/internal/config"
	"github.com/Veraticus/gstcalc/internal/tui/themes"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app carries the state shared by every command of one invocation.
type app struct {
	v           *viper.Viper
	cfgFile     string
	cfg         config.Config
	noAltScreen bool
	noHelpBar   bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	config.SetDefaults(a.v)

	rootCmd := &cobra.Command{
		Use:   "gst",
		Short: "₹ GST calculator for the terminal",
		Long: `gst: compute Indian Goods and Services Tax breakdowns.

Run without a command to open the interactive calculator, or use
calc and batch for one-off and scripted calculations.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runTUI,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/gst/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")
	flags.String("log-file", "", "write logs to this file while the calculator is open")
	flags.String("theme", "default", fmt.Sprintf("color theme (%s)", strings.Join(themes.Names, ", ")))
	flags.String("backend", config.BackendMemory, "session ledger backend (memory, sqlite)")

	rootCmd.Flags().BoolVar(&a.noAltScreen, "no-alt-screen", false, "draw the calculator inline instead of on the alternate screen")
	rootCmd.Flags().BoolVar(&a.noHelpBar, "no-help-bar", false, "hide the key help bar")

	// Bind flags to viper
	_ = a.v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", flags.Lookup("log-format"))
	_ = a.v.BindPFlag("logging.file", flags.Lookup("log-file"))
	_ = a.v.BindPFlag("ui.theme", flags.Lookup("theme"))
	_ = a.v.BindPFlag("ledger.backend", flags.Lookup("backend"))

	// Add commands
	rootCmd.AddCommand(calcCmd(a))
	rootCmd.AddCommand(batchCmd(a))
	rootCmd.AddCommand(ratesCmd(a))
	rootCmd.AddCommand(versionCmd())

	cc.Init(&cc.Config{
		RootCmd:         rootCmd,
		Headings:        cc.HiCyan + cc.Bold + cc.Underline,
		Commands:        cc.HiYellow + cc.Bold,
		CmdShortDescr:   cc.HiWhite,
		Example:         cc.Italic,
		ExecName:        cc.Bold,
		Flags:           cc.Bold,
		FlagsDataType:   cc.Italic,
		NoExtraNewlines: true,
	})

	return rootCmd
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("Received interrupt signal, shutting down")
		cancel()
	}()

	err := newRootCmd().ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error()))
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 for invalid input or configuration and 1 for anything else.
func exitCode(err error) int {
	if common.IsUserError(err) {
		return 2
	}
	return 1
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	// Set up config file
	if a.cfgFile != "" {
		a.v.SetConfigFile(config.ExpandPath(a.cfgFile))
	} else {
		dir, err := config.Dir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		// Search for config in standard locations
		a.v.AddConfigPath(dir)
		a.v.AddConfigPath(".")
		a.v.SetConfigName("config")
		a.v.SetConfigType("yaml")
	}

	// Environment variables
	a.v.SetEnvPrefix("GST")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	// Read config file
	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return common.NewUserError("failed to read config", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return common.NewUserError("invalid configuration", err)
	}
	a.cfg = cfg

	if err := a.setupLogging(cmd); err != nil {
		return common.NewUserError("failed to setup logging", err)
	}

	slog.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"backend", a.cfg.LedgerBackend,
		"rate", int(a.cfg.DefaultRate))
	return nil
}

func (a *app) setupLogging(cmd *cobra.Command) error {
	level, err := common.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return err
	}
	return common.SetupLogger(cmd.ErrOrStderr(), level, a.cfg.LogFormat)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gst version %s\n", version)
			return err
		},
	}
}
