package main

import (
	"context"
	"fmt"
	"os"

	"github.com/YokoReis/focus-flash-forge-23/config"
	"github.com/YokoReis/focus-flash-forge-23/models"
	"github.com/YokoReis/focus-flash-forge-23/persistence"
	"github.com/YokoReis/focus-flash-forge-23/store"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Focus Flash catalog seeder",
	Long: `Writes the default catalog (or a YAML seed file) into the configured snapshot backend.

Without --reset an existing catalog is left untouched. With --reset the catalog is
overwritten and the cart, favorites and admin session are cleared.`,
	RunE:         runSeed,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("backend", "", "Snapshot backend: memory, redis, postgres, sqlite (default from STORE_BACKEND)")
	rootCmd.Flags().Bool("reset", false, "Overwrite the catalog and clear cart, favorites and admin session")
	rootCmd.Flags().String("file", "", "YAML seed file (default from CATALOG_SEED_FILE, else the built-in catalog)")
}

func initConfig() {
	cfg = config.DefaultConfig()
	cfg.LoadFromEnv()

	// Override from flags
	if v, _ := rootCmd.PersistentFlags().GetString("backend"); v != "" {
		cfg.StoreBackend = v
	}
	if v, _ := rootCmd.Flags().GetString("file"); v != "" {
		cfg.SeedFile = v
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	reset, _ := cmd.Flags().GetBool("reset")

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("FOCUS FLASH - Catalog Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	seed := store.DefaultCatalog()
	if cfg.SeedFile != "" {
		loaded, err := store.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return err
		}
		seed = loaded
		fmt.Printf("✓ Loaded %d products from %s\n", len(seed), cfg.SeedFile)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	backend, err := persistence.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.StoreBackend, err)
	}
	defer backend.Close()

	res, err := seedCatalog(ctx, backend.Store, cfg.StoreKeyPrefix, seed, reset)
	if err != nil {
		return err
	}

	fmt.Println()
	switch {
	case res.Skipped:
		fmt.Printf("• Catalog already present (%d products), nothing written. Use --reset to overwrite.\n", res.Products)
	case reset:
		fmt.Printf("✅ Catalog reset: %d products written, cart/favorites/session cleared\n", res.Products)
	default:
		fmt.Printf("✅ Catalog seeded: %d products written\n", res.Products)
	}
	fmt.Printf("Backend: %s, key prefix %q\n", cfg.StoreBackend, cfg.StoreKeyPrefix)
	return nil
}

type seedResult struct {
	Products int
	Skipped  bool
}

// seedCatalog writes seed under prefix. An existing products snapshot is kept
// unless reset is set.
func seedCatalog(ctx context.Context, kv persistence.KeyValueStore, prefix string, seed []models.Product, reset bool) (seedResult, error) {
	st, err := store.New(ctx, kv, store.WithKeyPrefix(prefix), store.WithSeed(seed))
	if err != nil {
		return seedResult{}, err
	}

	_, exists, err := kv.Get(ctx, st.Key(store.CollectionProducts))
	if err != nil {
		return seedResult{}, fmt.Errorf("read products snapshot: %w", err)
	}
	if exists && !reset {
		return seedResult{Products: len(st.Products()), Skipped: true}, nil
	}

	if err := st.ReplaceProducts(seed); err != nil {
		return seedResult{}, err
	}
	if reset {
		st.ClearCart()
		for _, f := range st.Favorites() {
			st.RemoveFromFavorites(f.ProductID)
		}
		st.AdminLogout()
	}
	return seedResult{Products: len(seed)}, nil
}
