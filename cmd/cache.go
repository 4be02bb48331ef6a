package cmd

import (
	"fmt"

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/internal/snapstore"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// Cache commands skip dataset validation; they only need a store handle.
func cacheSetup(_ *cobra.Command, _ []string) error {
	if err := loadConfigFile(); err != nil {
		return err
	}
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}
	if err := contract.ProcessAndValidate(cfg, input); err != nil {
		return err
	}

	s, err := snapstore.New(cfg.CacheBackend, cfg.CacheDBConnect)
	if err != nil {
		return fmt.Errorf("failed to initialize snapshot store: %w", err)
	}
	store = s
	return nil
}

// cacheCmd focused on snapshot cache management.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the metrics snapshot cache",
	Long: `Manage the snapshot cache that memoizes computed metrics across runs.

Snapshots are keyed by a content hash of the cleaned, filtered dataset plus
the quarter window, so an unchanged input never recomputes its metrics.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None

Subcommands:
  status  - Show snapshot count and connection info
  clear   - Remove all cached snapshots
  migrate - Run schema migrations on the cache database

Examples:
  # Check cache status
  stackrank cache status

  # Clear the cache after a key format change
  stackrank cache clear`,
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display snapshot count and connection details",
	Long: `Show the configured backend and how many snapshots are stored.

Examples:
  # Check cache status
  stackrank cache status

  # Check a shared MySQL cache
  STACKRANK_CACHE_BACKEND=mysql STACKRANK_CACHE_DB_CONNECT="..." stackrank cache status`,
	PreRunE: cacheSetup,
	Run: func(_ *cobra.Command, _ []string) {
		count, err := store.Count()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		fmt.Printf("Backend:   %s\n", store.Backend())
		fmt.Printf("Snapshots: %d\n", count)
	},
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached snapshots",
	Long: `Delete all memoized snapshots from the configured backend.

Use this when:
- The dataset format or derivation logic changed
- Testing performance without cache
- The cache may hold snapshots for datasets you no longer analyze

Examples:
  # Clear the default SQLite cache
  stackrank cache clear`,
	PreRunE: cacheSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := store.Clear(); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheMigrateCmd runs schema migrations on the cache database.
var cacheMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations on the cache database",
	Long: `Migrate the snapshot cache schema to a target version.

The store migrates to the latest version automatically on startup; this
command exists for explicit rollbacks and upgrades on shared databases.

Examples:
  # Migrate to the latest version
  stackrank cache migrate

  # Roll back everything
  stackrank cache migrate --target-version 0`,
	PreRunE: cacheSetup,
	Run: func(_ *cobra.Command, _ []string) {
		target := viper.GetInt("target-version")
		if err := store.MigrateTo(target); err != nil {
			contract.LogFatal("Failed to migrate cache", err)
		}
		fmt.Println("Cache migrations applied.")
	},
}
