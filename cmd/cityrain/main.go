package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"cityrain/internal/config"
)

const seedEnv = "CITYRAIN_SEED"

func init() {
	// GLFW needs the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	seed       uint64
	width      int
	height     int
	frameMS    int
	noAudio    bool
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:           "cityrain",
		Short:         "A procedural city street after rain",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runWindow(cmd.Context(), cfg, seed, !opts.noAudio, logger)
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML config file")
	f.Uint64Var(&opts.seed, "seed", 0, "world seed (default: $"+seedEnv+", config, or clock)")
	f.IntVar(&opts.width, "width", 0, "viewport width in pixels")
	f.IntVar(&opts.height, "height", 0, "viewport height in pixels")
	f.IntVar(&opts.frameMS, "frame-ms", 0, "tick period in milliseconds")
	f.BoolVar(&opts.noAudio, "no-audio", false, "disable the rain ambience")
	f.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")

	rootCmd.AddCommand(ttyCmd(opts))
	rootCmd.AddCommand(headlessCmd(opts))
	return rootCmd
}

func ttyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tty",
		Short: "Render the scene in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runTTY(cmd.Context(), cfg, seed, !opts.noAudio, logger)
		},
	}
}

func headlessCmd(opts *options) *cobra.Command {
	var (
		ticks    int
		snapshot string
	)
	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Step the world without a display",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, seed, logger, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return runHeadless(cfg, seed, ticks, snapshot, logger)
		},
	}
	cmd.Flags().IntVarP(&ticks, "ticks", "n", 600, "number of ticks to simulate")
	cmd.Flags().StringVarP(&snapshot, "snapshot", "o", "", "write the final frame as PNG")
	return cmd
}

// resolve loads the config file, overlays explicitly set flags, validates,
// and builds the logger.
func (o *options) resolve(cmd *cobra.Command) (config.Config, uint64, *log.Logger, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, 0, nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = o.width
	}
	if flags.Changed("height") {
		cfg.Window.Height = o.height
	}
	if flags.Changed("frame-ms") {
		cfg.FrameMS = o.frameMS
	}
	if o.noAudio {
		cfg.Audio.Enabled = false
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, 0, nil, fmt.Errorf("invalid config: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return cfg, 0, nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "cityrain",
		Level:           level,
	})

	seed := resolveSeed(flags.Changed("seed"), o.seed, os.Getenv(seedEnv), cfg.Seed, logger)
	return cfg, seed, logger, nil
}

// resolveSeed picks the flag, then the environment, then the config file,
// then the clock.
func resolveSeed(flagSet bool, flagSeed uint64, env string, cfgSeed uint64, logger *log.Logger) uint64 {
	if flagSet {
		return flagSeed
	}
	if env != "" {
		if v, err := strconv.ParseUint(env, 10, 64); err == nil {
			return v
		}
		logger.Warn("ignoring unparsable seed", "env", seedEnv, "value", env)
	}
	if cfgSeed != 0 {
		return cfgSeed
	}
	return uint64(time.Now().UnixNano())
}
