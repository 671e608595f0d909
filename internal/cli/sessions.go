package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jh3/course-sidebar/internal/session"
)

func newSessionsCommand() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "sessions COUNT",
		Short: "Print the session numbers 1..COUNT",
		Long: `Print the session numbers 1..COUNT, one per line. With --category each
number is printed as a sidebar path, e.g. js-oop/sesi1.`,
		Example: `  course-sidebar sessions 5
  course-sidebar sessions 14 --category js-oop`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := session.ParseCount(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if category != "" {
				for _, p := range session.Paths(category, count) {
					_, _ = fmt.Fprintln(out, p)
				}
				return nil
			}
			for _, n := range count.Sequence() {
				_, _ = fmt.Fprintln(out, n)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Print paths under this category")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "course-sidebar v%s\n", Version)
		},
	}
}
