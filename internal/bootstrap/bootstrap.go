package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lejos-tools/classsweep/internal/buildinfo"
	"github.com/lejos-tools/classsweep/internal/config"
	"github.com/lejos-tools/classsweep/internal/log"
	"github.com/lejos-tools/classsweep/internal/sweep"
	"github.com/lejos-tools/classsweep/internal/utils"
	urfavecli "github.com/urfave/cli/v3"
)

// Run executes the classsweep command and returns the process exit code.
// Deletion failures never change the exit code; only usage and
// configuration errors, or an interrupted sweep, return 1.
func Run(ctx context.Context, args []string) int {
	cmd := newCommand(os.Stdout, os.Stderr)
	if err := cmd.Run(ctx, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}
	return 0
}

func newCommand(stdout, stderr io.Writer) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "classsweep",
		Usage:                 "Delete compiled .class files below a directory",
		ArgsUsage:             "[root]",
		Version:               buildinfo.Version(),
		EnableShellCompletion: true,
		Writer:                stdout,
		ErrWriter:             stderr,

		Flags: globalFlags(),

		Commands: []*urfavecli.Command{
			versionCommand(),
		},

		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			return runSweep(ctx, cmd, stdout, stderr)
		},
	}
}

func versionCommand() *urfavecli.Command {
	return &urfavecli.Command{
		Name:  "version",
		Usage: "Print detailed build information",
		Action: func(_ context.Context, cmd *urfavecli.Command) error {
			buildinfo.Enrich()
			_, err := io.WriteString(cmd.Root().Writer, buildinfo.String())
			return err
		},
	}
}

// runSweep is the default action: load config, resolve the root and sweep it.
func runSweep(ctx context.Context, cmd *urfavecli.Command, stdout, stderr io.Writer) error {
	defer func() {
		if err := log.Close(); err != nil {
			fmt.Fprintf(stderr, "Error closing debug log: %v\n", err)
		}
	}()

	// Set up debug logging before loading config
	debugLogFlag := cmd.String("debug-log")
	if debugLogFlag != "" {
		openDebugLog(stderr, debugLogFlag)
	}

	cfg, err := loadConfig(cmd, stderr)
	if err != nil {
		return err
	}

	if debugLogFlag == "" {
		if cfg.DebugLog != "" {
			openDebugLog(stderr, cfg.DebugLog)
		} else {
			// No debug log configured, discard any buffered logs
			_ = log.SetFile("")
		}
	}

	root, err := sweep.ResolveRoot(cfg.Root)
	if err != nil {
		return err
	}

	log.Printf("sweeping %s for %v (exclude=%v dry-run=%t)", root, cfg.Suffixes, cfg.ExcludeDirs, cfg.DryRun)

	sweeper := sweep.New(sweep.Options{
		Root:        root,
		Suffixes:    cfg.Suffixes,
		ExcludeDirs: cfg.ExcludeDirs,
		DryRun:      cfg.DryRun,
	}, stdout, sweep.WithLogf(log.Printf))

	res, err := sweeper.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("sweep interrupted after %d deletions: %w", res.Deleted, err)
		}
		return err
	}

	log.Printf("sweep finished: deleted=%d failed=%d skipped=%d", res.Deleted, res.Failed, res.Skipped)
	printSummary(stderr, cfg.Summary, res, cfg.DryRun)
	return nil
}

// loadConfig builds the effective configuration. Precedence, lowest first:
// defaults, config file, --config overrides, dedicated flags.
func loadConfig(cmd *urfavecli.Command, stderr io.Writer) (*config.AppConfig, error) {
	configFile := cmd.String("config-file")
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		if configFile != "" {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		fmt.Fprintf(stderr, "Error loading config: %v\n", err)
		cfg = config.DefaultConfig()
	}

	if overrides := cmd.StringSlice("config"); len(overrides) > 0 {
		if err := cfg.ApplyCLIOverrides(overrides); err != nil {
			return nil, fmt.Errorf("error applying config overrides: %w", err)
		}
	}

	if err := applyFlags(cfg, cmd); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cfg *config.AppConfig, cmd *urfavecli.Command) error {
	rootFlag := cmd.String("root")
	if cmd.Args().Len() > 1 {
		return fmt.Errorf("expected at most one root argument, got %d", cmd.Args().Len())
	}
	if arg := cmd.Args().First(); arg != "" {
		if rootFlag != "" {
			return fmt.Errorf("root given both as argument %q and with --root %q", arg, rootFlag)
		}
		rootFlag = arg
	}
	if rootFlag != "" {
		cfg.Root = rootFlag
	}

	if cmd.IsSet("suffix") {
		suffixes := config.NormalizeSuffixes(cmd.StringSlice("suffix"))
		if len(suffixes) == 0 {
			return fmt.Errorf("--suffix needs a non-empty value")
		}
		cfg.Suffixes = suffixes
	}

	if cmd.IsSet("exclude") {
		cfg.ExcludeDirs = cmd.StringSlice("exclude")
	}

	if cmd.IsSet("dry-run") {
		cfg.DryRun = cmd.Bool("dry-run")
	}

	if cmd.IsSet("summary") {
		mode := config.NormalizeSummary(cmd.String("summary"))
		if mode == "" {
			return fmt.Errorf("unknown summary mode %q (expected auto, always or never)", cmd.String("summary"))
		}
		cfg.Summary = mode
	}
	return nil
}

func openDebugLog(stderr io.Writer, path string) {
	if expanded, err := utils.ExpandPath(path); err == nil {
		path = expanded
	}
	if err := log.SetFile(path); err != nil {
		fmt.Fprintf(stderr, "Error opening debug log file %q: %v\n", path, err)
	}
}
