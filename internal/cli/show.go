package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jh3/course-sidebar/internal/ui"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the sidebar as an outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := loadTree(cmd.Context(), getConfig(cmd.Context()))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), ui.Render(tree))
			return nil
		},
	}
}

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every sidebar entry (for scripting)",
		Long: `Print one line per sidebar entry as "group|target". Autogenerated groups
print their directory with a trailing slash.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tree, err := loadTree(cmd.Context(), getConfig(cmd.Context()))
			if err != nil {
				return err
			}
			for _, e := range tree.Entries() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s|%s\n", e.Title(), e.Target())
			}
			return nil
		},
	}
}
