package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/boltwire/exemplars/internal/branding"
	"github.com/boltwire/exemplars/internal/config"
	apperrors "github.com/boltwire/exemplars/internal/errors"
	"github.com/spf13/cobra"
)

// BuildInfo is injected via ldflags at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// app is the state shared by one invocation of the command tree.
type app struct {
	build   BuildInfo
	cfg     *config.Config
	logger  *slog.Logger
	verbose bool
}

// Execute runs the CLI against os.Args and returns the process exit code.
func Execute(version, commit, date string) int {
	return Run(os.Args[1:], os.Stdout, os.Stderr, BuildInfo{Version: version, Commit: commit, Date: date})
}

// Run executes the command tree with args and returns the exit code.
// Errors are reported on stderr.
func Run(args []string, stdout, stderr io.Writer, build BuildInfo) int {
	a := &app{
		build:  build,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	return apperrors.NewCLIErrorAdapter(a.verbose, a.logger).Handle(err, stderr)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName() + " <manifest.json>",
		Short: branding.Description(),
		Long: branding.DisplayName() + ` reads a manifest (a JSON or YAML array of exemplar descriptors) and
scaffolds one folder per exemplar under docs/exemplars/<slug>/ containing
metadata.json, README.md and example.cs. Existing files are overwritten.

A manifest whose path matches a subcommand name (plan, version, config,
help, completion) must be given as ./<name> or carry a .json suffix.`,
		Example: `  exemplars exemplars-manifest.json
  exemplars plan exemplars-manifest.json
  exemplars --output-root site/exemplars exemplars-manifest.yaml`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, args[0])
		},
	}

	flags := root.PersistentFlags()
	flags.String("output-root", "", "Documentation root (default docs/exemplars under the working directory)")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return apperrors.Usage(usageLine(cmd), err)
	})

	root.AddCommand(newPlanCmd(a))
	root.AddCommand(newVersionCmd(a))
	root.AddCommand(newConfigCmd(a))
	return root
}

// setup loads configuration and builds the logger before any command runs.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return apperrors.Wrap(err, apperrors.CategoryInternal, "loading configuration")
	}
	if err := cfg.BindFlags(cmd.Root().PersistentFlags()); err != nil {
		return apperrors.Wrap(err, apperrors.CategoryInternal, "loading configuration")
	}
	a.cfg = cfg

	level := cfg.LogLevel()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return apperrors.Usage(usageLine(cmd), nil)
		}
		return nil
	}
}

func usageLine(cmd *cobra.Command) string {
	return strings.TrimSuffix(cmd.UseLine(), " [flags]")
}
