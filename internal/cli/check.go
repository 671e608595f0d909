package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jh3/course-sidebar/internal/content"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every sidebar entry has a page",
		Long: `Resolve every sidebar link against the content directory and make sure
autogenerated directories exist. Pages in a linked category that no entry
references are reported as orphans but do not fail the check.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)
			logger := getLogger(ctx)

			tree, err := loadTree(ctx, cfg)
			if err != nil {
				return err
			}

			report, err := content.Check(tree, content.NewScanner(cfg.ContentDir))
			if err != nil {
				return err
			}
			logger.Debug("scanned content", "dir", cfg.ContentDir, "pages", report.Pages)

			out := cmd.OutOrStdout()
			for _, e := range report.Missing {
				_, _ = fmt.Fprintf(out, "missing page: %s (%s)\n", e.Path, e.Title())
			}
			for _, e := range report.MissingDirs {
				_, _ = fmt.Fprintf(out, "missing directory: %s (%s)\n", e.Directory, e.Title())
			}
			for _, slug := range report.Orphans {
				_, _ = fmt.Fprintf(out, "orphan page: %s\n", slug)
			}

			if !report.OK() {
				return fmt.Errorf("%d missing pages, %d missing directories in %s",
					len(report.Missing), len(report.MissingDirs), cfg.ContentDir)
			}
			_, _ = fmt.Fprintf(out, "ok: %d entries, %d pages\n", len(tree.Entries()), report.Pages)
			return nil
		},
	}
}
