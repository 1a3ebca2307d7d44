package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/symposcan/symposcan/internal/config"
	"github.com/symposcan/symposcan/internal/database"
	"github.com/symposcan/symposcan/internal/fetch"
	"github.com/symposcan/symposcan/internal/log"
	"github.com/symposcan/symposcan/internal/scraper"
)

// addCrawlFlags registers the flags shared by every crawling command.
func addCrawlFlags(cmd *cobra.Command) {
	cmd.Flags().String("db-dir", config.XDGDataDir(),
		"Directory holding the SQLite database file")
	cmd.Flags().DurationP("timeout", "t", fetch.DefaultAttemptTimeout,
		"Timeout for a single fetch attempt")
	cmd.Flags().IntP("retries", "r", fetch.DefaultMaxAttempts,
		"Total attempts per page fetch")
	cmd.Flags().Duration("retry-window", fetch.DefaultWindow,
		"Total time budget per page fetch including retries (0 disables)")
	cmd.Flags().Duration("retry-interval", fetch.DefaultInterval,
		"Delay between fetch attempts")
	cmd.Flags().DurationP("delay", "d", config.DefaultCrawlDelay,
		"Politeness delay between page requests")
	cmd.Flags().IntP("width", "w", config.DefaultWidth,
		"Display width progress values are truncated to")
	cmd.Flags().String("user-agent", fetch.DefaultUserAgent,
		"User-Agent header sent with requests")
	cmd.Flags().StringP("config", "c", "",
		"Meeting catalog file path (default: .symposcan in current or home directory)")
}

// addSkipNameFlag registers the name-substring skip filter flag.
func addSkipNameFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("skip-name", nil,
		"Skip symposia/talks whose name contains this substring (repeatable)")
}

// addSkipURLFlag registers the URL-substring skip filter flag.
func addSkipURLFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("skip-url", nil,
		"Skip talks whose URL contains this substring (repeatable)")
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.DBDir, err = cmd.Flags().GetString("db-dir")
	if err != nil {
		return nil, err
	}

	cfg.Timeout, err = cmd.Flags().GetDuration("timeout")
	if err != nil {
		return nil, err
	}

	cfg.RetryAttempts, err = cmd.Flags().GetInt("retries")
	if err != nil {
		return nil, err
	}

	cfg.RetryWindow, err = cmd.Flags().GetDuration("retry-window")
	if err != nil {
		return nil, err
	}

	cfg.RetryInterval, err = cmd.Flags().GetDuration("retry-interval")
	if err != nil {
		return nil, err
	}

	cfg.CrawlDelay, err = cmd.Flags().GetDuration("delay")
	if err != nil {
		return nil, err
	}

	cfg.Width, err = cmd.Flags().GetInt("width")
	if err != nil {
		return nil, err
	}

	cfg.UserAgent, err = cmd.Flags().GetString("user-agent")
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Lookup("skip-name") != nil {
		cfg.SkipNames, err = cmd.Flags().GetStringSlice("skip-name")
		if err != nil {
			return nil, err
		}
	}

	if cmd.Flags().Lookup("skip-url") != nil {
		cfg.SkipURLs, err = cmd.Flags().GetStringSlice("skip-url")
		if err != nil {
			return nil, err
		}
	}

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg.Verbose = getVerboseFlag(cmd)

	// Overlay catalog entries from the config file, if one exists.
	// An explicitly specified file must exist; the default search may
	// come up empty without complaint.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		fileCatalog, err := config.LoadCatalogFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Catalog.Merge(fileCatalog)
	} else if explicitConfigPath {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the progress logger described by the config and
// installs it as the slog default.
func setupLogger(cfg *config.Config) *slog.Logger {
	logger := log.NewProgressLogger(os.Stderr, cfg.Verbose, cfg.Width)
	slog.SetDefault(logger)
	return logger
}

// signalContext returns a context cancelled on SIGINT/SIGTERM.
func signalContext(logger *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return ctx, cancel
}

// newScraper builds the fetch client and scraper described by the
// config, bound to an open database.
func newScraper(cfg *config.Config, db *database.ProceedingsDB, logger *slog.Logger) *scraper.Scraper {
	client := fetch.New(
		fetch.WithPolicy(cfg.Policy()),
		fetch.WithTimeout(cfg.Timeout),
		fetch.WithUserAgent(cfg.UserAgent),
		fetch.WithMaxBodySize(cfg.MaxBodySize),
	)

	return scraper.New(client, db,
		scraper.WithLogger(logger),
		scraper.WithSkipNames(cfg.SkipNames),
		scraper.WithSkipURLs(cfg.SkipURLs),
		scraper.WithDelay(cfg.CrawlDelay),
	)
}

// openDB opens the proceedings database under the configured directory.
// Discovery commands create it; later stages refuse to run against a
// store that was never populated.
func openDB(cfg *config.Config, createIfNotExists bool) (*database.ProceedingsDB, error) {
	opts := database.DefaultOptions()
	opts.CreateIfNotExists = createIfNotExists

	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
