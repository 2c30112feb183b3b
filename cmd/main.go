package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zinrai/iracing-wheel-config/internal/config"
	"github.com/zinrai/iracing-wheel-config/internal/finder"
	"github.com/zinrai/iracing-wheel-config/internal/logger"
	"github.com/zinrai/iracing-wheel-config/internal/session"
	"github.com/zinrai/iracing-wheel-config/internal/ui"
)

var (
	version = "0.1.0"
)

// Flag names, mapped to configuration keys in flagNames
const (
	flagConfig      = "config"
	flagIRacingDir  = "iracing-dir"
	flagSetupsRoot  = "setups-root"
	flagConfigsRoot = "configs-root"
	flagLogLevel    = "log-level"
)

var flagNames = map[string]string{
	config.KeyIRacingDir:  flagIRacingDir,
	config.KeySetupsRoot:  flagSetupsRoot,
	config.KeyConfigsRoot: flagConfigsRoot,
	config.KeyLogLevel:    flagLogLevel,
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Error("Error occurred", "error", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer, errOut io.Writer) error {
	rootCmd := newRootCommand(afero.NewOsFs(), in, out, errOut)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newRootCommand(fsys afero.Fs, in io.Reader, out io.Writer, errOut io.Writer) *cobra.Command {
	var cfg *config.Config

	rootCmd := &cobra.Command{
		Use:   "wheelcfg",
		Short: "Copy a wheel configuration into iRacing vehicle setups",
		Long: `Copy a controller configuration (controls.cfg and joyCalib.yaml) from one
directory of the configs root into one or more vehicle directories of the
iRacing setups root.

A configuration directory is offered only if it contains both files.
Existing files with the same names in the vehicle directories are
overwritten; vehicle directories are never created.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, _ := cmd.Flags().GetString(flagConfig)

			loaded, err := config.Load(config.LoadOptions{
				ConfigFilePath: configFile,
				Flags:          cmd.Flags(),
				FlagNames:      flagNames,
			})
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}

			setupLogging(loaded.LogLevel, errOut)
			logger.Debug("Configuration loaded",
				"setups_root", loaded.SetupsRoot,
				"configs_root", loaded.ConfigsRoot)
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := session.New(fsys, cfg, in, out).Run()
			return err
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "YAML config file path")
	flags.String(flagIRacingDir, "", "iRacing documents directory (default ~/Documents/iRacing)")
	flags.String(flagSetupsRoot, "", "vehicle setups root (default <iracing-dir>/setups)")
	flags.String(flagConfigsRoot, "", "wheel configurations root (default <iracing-dir>/wheelConfigs)")
	flags.String(flagLogLevel, "", "log level (debug, info, warn, error)")

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetVersionTemplate("wheelcfg version {{.Version}}\n")

	rootCmd.AddCommand(newListCommand(fsys, out, func() *config.Config { return cfg }))
	return rootCmd
}

// Prints what an interactive run would offer, without prompting
func newListCommand(fsys afero.Fs, out io.Writer, getConfig func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List valid configurations and vehicle directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			printer := ui.NewPrinter(out)

			configs, err := finder.DiscoverConfigs(fsys, cfg.ConfigsRoot, out)
			if err != nil {
				return err
			}
			names := make([]string, len(configs))
			for i, c := range configs {
				names[i] = c.Name
			}
			printer.Blank()
			printer.Title(session.ConfigsTitle)
			printer.List(names)

			vehicles, err := finder.ListEntries(fsys, cfg.SetupsRoot)
			if err != nil {
				return err
			}
			printer.Blank()
			printer.Title(session.VehiclesTitle)
			printer.List(vehicles)
			return nil
		},
	}
}

// Configures the logger based on the specified level
func setupLogging(level string, output io.Writer) {
	logLevel := logger.WarnLevel

	switch level {
	case "debug":
		logLevel = logger.DebugLevel
	case "info":
		logLevel = logger.InfoLevel
	case "error":
		logLevel = logger.ErrorLevel
	case "warn":
		logLevel = logger.WarnLevel
	}

	logger.Initialize(logLevel, output)
}
