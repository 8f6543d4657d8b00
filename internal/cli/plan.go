package cli

import (
	"fmt"

	apperrors "github.com/boltwire/exemplars/internal/errors"
	"github.com/boltwire/exemplars/internal/manifest"
	"github.com/boltwire/exemplars/internal/scaffold"
	"github.com/spf13/cobra"
)

func newPlanCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plan <manifest.json>",
		Short: "Show where each exemplar would be written",
		Long: `Resolve the slug and output directory of every manifest entry without
writing anything. Entries that resolve to the same slug as an earlier entry
are marked, since generation would overwrite the earlier folder.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors, err := manifest.Load(args[0])
			if err != nil {
				return apperrors.Manifest(err)
			}
			root, err := a.outputRoot()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, t := range scaffold.Plan(root, descriptors) {
				if t.Overwrites >= 0 {
					fmt.Fprintf(out, "%s\t%s\t(overwrites entry %d)\n", t.Slug, t.OutputDir, t.Overwrites+1)
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", t.Slug, t.OutputDir)
			}
			fmt.Fprintf(out, "%d exemplar(s) under %s\n", len(descriptors), root)
			return nil
		},
	}
}
