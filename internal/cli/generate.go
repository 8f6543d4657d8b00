package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/boltwire/exemplars/internal/errors"
	"github.com/boltwire/exemplars/internal/manifest"
	"github.com/boltwire/exemplars/internal/scaffold"
	"github.com/spf13/cobra"
)

// runGenerate loads the manifest and materializes every exemplar in order.
// The first filesystem error stops the run; folders already written stay.
func (a *app) runGenerate(cmd *cobra.Command, manifestPath string) error {
	descriptors, err := manifest.Load(manifestPath)
	if err != nil {
		return apperrors.Manifest(err)
	}
	a.logger.Debug("manifest loaded",
		slog.String("path", manifestPath),
		slog.Int("descriptors", len(descriptors)))

	root, err := a.outputRoot()
	if err != nil {
		return err
	}

	gen := scaffold.NewGenerator(root, scaffold.WithLogger(a.logger))
	if err := gen.EnsureRoot(); err != nil {
		return apperrors.FileSystem(err, "preparing output root")
	}

	out := cmd.OutOrStdout()
	for i, d := range descriptors {
		result, err := gen.Generate(d)
		if err != nil {
			return apperrors.FileSystem(err, "generating exemplar").WithContext("index", i)
		}
		printResult(out, result)
	}

	fmt.Fprintf(out, "Done. Review the generated folders under %s/\n", displayRoot(a.cfg.OutputRoot()))
	return nil
}

// outputRoot resolves the configured documentation root against the working directory.
func (a *app) outputRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.CategoryInternal, "resolving working directory")
	}
	return a.cfg.ResolveOutputRoot(cwd), nil
}

func printResult(w io.Writer, result *scaffold.Result) {
	fmt.Fprintf(w, "Created exemplar: %s\n", result.OutputDir)
	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  warning: %s\n", warning)
	}
}

func displayRoot(root string) string {
	return strings.TrimSuffix(filepath.ToSlash(root), "/")
}
