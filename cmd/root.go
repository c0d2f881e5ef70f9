package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/ctgdx/internal/catalog"
	"github.com/abhisek/ctgdx/internal/config"
	"github.com/abhisek/ctgdx/internal/logging"
)

// Execute runs the command line.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ctgdx",
		Short: "Fetal CTG assessment assistant",
		Long: "ctgdx asks five questions about a 60-minute admission CTG and names the\n" +
			"most probable diagnosis together with its management plan.",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	f := root.PersistentFlags()
	f.String("catalog", "", "Path to a catalog YAML file (overrides CTGDX_CATALOG)")
	f.String("log-level", "", "Log level: debug, info, warn, error (overrides CTGDX_LOG_LEVEL)")
	f.String("log-format", "", "Log format: text or json (overrides CTGDX_LOG_FORMAT)")
	f.String("log-file", "", "Write logs to this file (overrides CTGDX_LOG_FILE)")

	root.AddCommand(newMatchCmd())
	root.AddCommand(newCatalogCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// resolveConfig layers defaults, .env, CTGDX_* variables and finally the
// persistent flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return config.Config{}, err
	}
	cfg := config.FromEnv()

	flags := cmd.Flags()
	if v, _ := flags.GetString("catalog"); v != "" {
		cfg.CatalogPath = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("log-format"); v != "" {
		cfg.LogFormat = v
	}
	if v, _ := flags.GetString("log-file"); v != "" {
		cfg.LogFile = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// setupLogging installs the global logger. Without a log file, logs go to
// fallback, or nowhere when fallback is nil. The returned func closes the
// log file.
func setupLogging(cfg config.Config, fallback io.Writer) (func(), error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFile == "" {
		if fallback == nil {
			logging.Discard()
		} else {
			logging.Init(level, cfg.LogFormat, fallback)
		}
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.Init(level, cfg.LogFormat, f)
	return func() { _ = f.Close() }, nil
}

// loadCatalog returns the configured catalog, or the built-in one.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	log := logging.New("cli")
	if cfg.CatalogPath == "" {
		log.Debug("using built-in catalog")
		return catalog.Default(), nil
	}
	cat, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Debug("catalog loaded",
		"path", cfg.CatalogPath,
		"questions", cat.Total(),
		"scenarios", len(cat.Scenarios()),
		"exclusions", len(cat.Exclusions()),
	)
	return cat, nil
}

// prepare resolves config, logging and the catalog for a non-interactive
// command. Logs go to stderr unless a log file is configured.
func prepare(cmd *cobra.Command) (*catalog.Catalog, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	closeLog, err := setupLogging(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return cat, closeLog, nil
}
