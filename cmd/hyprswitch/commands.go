package main

import (
	"fmt"
	"os"

	"github.com/lithammer/dedent"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hyprswitch/internal/app"
	"hyprswitch/internal/hyprctl"
	"hyprswitch/pkg/config"
	"hyprswitch/pkg/logger"
)

type options struct {
	configPath string
	debug      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "hyprswitch [label]",
		Short: "Hyprland window switcher for rofi",
		Long: dedent.Dedent(`
			Lists Hyprland windows for rofi and switches to the one picked.

			Without arguments the window list is printed in rofi script mode.
			With one argument, the label of a listed window, that window is
			focused, or restored from the minimized workspace first. Any
			other number of arguments does nothing.

			    rofi -show windows -modi "windows:hyprswitch"
		`),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(h *app.HyprSwitch) error {
				return h.Run(args)
			})
		},
	}

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Show the window list with rofi -dmenu and switch to the pick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, func(h *app.HyprSwitch) error {
				return h.Menu()
			})
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging on stderr")
	rootCmd.AddCommand(menuCmd)

	return rootCmd
}

// withApp sets up logging, config and hyprctl, then runs fn.
func withApp(opts *options, fn func(h *app.HyprSwitch) error) error {
	logLevel := zerolog.InfoLevel
	logOpts := []logger.Option{}
	if opts.debug {
		logLevel = zerolog.DebugLevel
		logOpts = append(logOpts, logger.WithConsole())
	}
	logOpts = append(logOpts, logger.WithLevel(logLevel))

	log, err := logger.NewLogger(logOpts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return err
	}
	defer log.Close()

	cfg, err := config.FindConfig(opts.configPath, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return err
	}

	if logPath, err := cfg.LogPath(); err != nil {
		log.Warn("Logging to file disabled", "error", err.Error())
	} else if err := log.AttachFile(logPath); err != nil {
		log.Warn("Logging to file disabled", "path", logPath, "error", err.Error())
	}

	hypr, err := hyprctl.NewClient(cfg.GetHyprctlPath(), log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}

	if err := fn(app.NewHyprSwitch(cfg, hypr, os.Stdout, log)); err != nil {
		log.Error("Action failed", err)
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
