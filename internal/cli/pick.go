package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/jh3/course-sidebar/internal/config"
	"github.com/jh3/course-sidebar/internal/content"
	"github.com/jh3/course-sidebar/internal/tmux"
	"github.com/jh3/course-sidebar/internal/ui"
)

func newPickCommand() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Fuzzy-find a sidebar entry",
		Long: `Pick a sidebar entry with a fuzzy finder and print its path.

With --open the page is opened in your editor. Inside tmux the editor runs in
the configured window of the current session.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := getConfig(ctx)

			tree, err := loadTree(ctx, cfg)
			if err != nil {
				return err
			}

			scanner := content.NewScanner(cfg.ContentDir)
			entry, err := ui.PickEntry(tree.Entries(), scanner.Resolve)
			if err != nil {
				return err
			}
			if entry == nil {
				return nil
			}

			if !open {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), entry.Target())
				return nil
			}

			if entry.Directory != "" {
				return fmt.Errorf("%s is autogenerated from %s/, pick a page instead", entry.Title(), entry.Directory)
			}
			file, ok := scanner.Resolve(entry.Path)
			if !ok {
				return fmt.Errorf("no page for %s in %s", entry.Path, cfg.ContentDir)
			}

			getLogger(ctx).Debug("opening page", "file", file, "editor", cfg.Editor)
			return openPage(cfg, file)
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the picked page in the editor")
	cmd.Flags().String("editor", "", "Editor command (default: $EDITOR)")
	cmd.Flags().String("tmux-window", "", "tmux window for the editor (default: "+config.DefaultWindow+")")

	return cmd
}

func openPage(cfg *config.Config, file string) error {
	command := tmux.EditorCommand(cfg.Editor, file)

	if tmux.IsInsideTmux() {
		if mgr, err := tmux.New(); err == nil {
			dir, _ := os.Getwd()
			return mgr.OpenInWindow(cfg.Tmux.Window, dir, command)
		}
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
