package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/roomsim/asset"
	"github.com/lixenwraith/roomsim/config"
	"github.com/lixenwraith/roomsim/level"
	"github.com/lixenwraith/roomsim/logger"
)

// options are the flags shared by every subcommand
type options struct {
	configPath string
	levelPath  string
	logPath    string
}

// session is the loaded state a subcommand works on
type session struct {
	cfg   config.Config
	log   *logrus.Logger
	level *level.Level
	close func()
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:          "room-sandbox",
		Short:        "Run and probe room-graph levels",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "YAML config file, compiled-in defaults when empty")
	rootCmd.PersistentFlags().StringVarP(&opts.levelPath, "level", "l", "", "YAML level file, built-in demo when empty")
	rootCmd.PersistentFlags().StringVar(&opts.logPath, "log-file", "", "append logs to this file, discarded when empty")

	rootCmd.AddCommand(runCmd(&opts))
	rootCmd.AddCommand(recordCmd(&opts))
	rootCmd.AddCommand(traceCmd(&opts))
	rootCmd.AddCommand(floorCmd(&opts))
	rootCmd.AddCommand(overlapCmd(&opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// open loads config, logger and level in that order
func open(opts *options) (*session, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	var out io.Writer
	closeLog := func() {}
	if opts.logPath != "" {
		f, err := os.OpenFile(opts.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}
	log, err := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: out})
	if err != nil {
		closeLog()
		return nil, err
	}

	var lvl *level.Level
	if opts.levelPath != "" {
		lvl, err = level.Load(opts.levelPath)
	} else {
		lvl, err = level.Parse([]byte(asset.DemoLevel))
	}
	if err != nil {
		closeLog()
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"level":    opts.levelPath,
		"rooms":    len(lvl.Rooms),
		"entities": len(lvl.Entities),
	}).Info("level loaded")

	return &session{cfg: cfg, log: log, level: lvl, close: closeLog}, nil
}
