package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/jh3/course-sidebar/internal/config"
	"github.com/jh3/course-sidebar/internal/sidebar"
)

// loadTree builds the sidebar from the configured definition file, or the
// built-in course when none is set
func loadTree(ctx context.Context, cfg *config.Config) (sidebar.Tree, error) {
	logger := getLogger(ctx)

	if cfg.Definition == "" {
		logger.Debug("using built-in course sidebar")
		return sidebar.Course(), nil
	}

	f, err := os.Open(cfg.Definition)
	if err != nil {
		return nil, fmt.Errorf("opening sidebar definition: %w", err)
	}
	defer f.Close()

	defs, err := sidebar.LoadDefinitions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Definition, err)
	}
	tree, err := sidebar.Build(defs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Definition, err)
	}

	logger.Debug("loaded sidebar definition", "path", cfg.Definition, "groups", len(tree))
	return tree, nil
}
