package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jh3/course-sidebar/internal/site"
)

func newGenerateCommand() *cobra.Command {
	var siteOpts bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the sidebar for the site config",
		Long: `Build the sidebar tree and write it as JSON or YAML.

With --site the tree is wrapped in the full Starlight options (title, custom
CSS, social links, markdown plugins), ready to spread into starlight({...}).`,
		Example: `  course-sidebar generate --out src/sidebar.json
  course-sidebar generate --site -f yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)
			logger := getLogger(ctx)

			format, err := site.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}

			tree, err := loadTree(ctx, cfg)
			if err != nil {
				return err
			}

			var v any = tree
			if siteOpts {
				opts := site.Default(tree)
				if cfg.Title != "" {
					opts.Title = cfg.Title
				}
				v = opts
			}

			if cfg.Out == "" || cfg.Out == "-" {
				return site.Write(cmd.OutOrStdout(), format, v)
			}

			if err := writeFile(cfg.Out, func(w io.Writer) error {
				return site.Write(w, format, v)
			}); err != nil {
				return err
			}
			logger.Info("wrote sidebar", "path", cfg.Out, "format", string(format), "entries", len(tree.Entries()))
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "", "Output format (json|yaml)")
	cmd.Flags().StringP("out", "o", "", "Output file, - for stdout")
	cmd.Flags().String("title", "", "Site title for --site output")
	cmd.Flags().BoolVar(&siteOpts, "site", false, "Wrap the sidebar in the full Starlight options")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"json", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// writeFile replaces path with the output of write via a temp file in the
// same directory
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
