package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/ctgdx/internal/app"
	"github.com/abhisek/ctgdx/internal/matcher"
)

// runApp resolves configuration, loads the catalog and launches the TUI.
// Logs are discarded unless a log file is set, since anything written to
// the terminal would corrupt the screen.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(cfg, nil)
	if err != nil {
		return err
	}
	defer closeLog()

	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	return app.Run(app.Options{
		Catalog: cat,
		Matcher: matcher.ForCatalog(cat),
	})
}
