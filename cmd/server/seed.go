package main

import (
	"fmt"
	"os"

	"github.com/h4ks-com/farmstand/internal/database"
	"github.com/h4ks-com/farmstand/internal/repository"
	"github.com/h4ks-com/farmstand/internal/seed"
	"github.com/h4ks-com/farmstand/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	seedFile   string
	seedReset  bool
	seedStrict bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load farms and products from a YAML file",
	Long: `Load farms and products from a YAML file.

Expected YAML format:

  farms:
    - name: Full Belly Farm
      city: Guinda
      email: info@fullbelly.example
      products:
        - {name: Goat Cheese, price: 5, category: dairy}
  products:
    - {name: Fairy Eggplant, price: 1.00, category: vegetable}

Records that fail validation are skipped and reported. Use --strict to stop
at the first failure instead.`,
	Example: `  farmstand seed -f seeds.yaml
  farmstand seed -f seeds.yaml --reset --strict`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd)
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML file to load (required)")
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Delete all farms and products first")
	seedCmd.Flags().BoolVar(&seedStrict, "strict", false, "Fail on the first invalid record")
	seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command) error {
	f, err := os.Open(seedFile)
	if err != nil {
		return fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	file, err := seed.Parse(f)
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.Database.URL)
	if err != nil {
		return err
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		return err
	}

	if seedReset {
		logger.Info("removing existing farms and products")
		if err := database.Reset(db); err != nil {
			return fmt.Errorf("failed to reset database: %w", err)
		}
	}

	farmRepo := repository.NewFarmRepository(db)
	productRepo := repository.NewProductRepository(db)
	farmService := services.NewFarmService(farmRepo, productRepo, db)
	productService := services.NewProductService(productRepo)

	result, err := seed.Apply(cmd.Context(), file, farmService, productService, seedStrict)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	for _, skipped := range result.Skipped {
		logger.Warn("skipped seed record", zap.Error(skipped))
	}
	logger.Info("seed complete",
		zap.Int("farms", result.Farms),
		zap.Int("products", result.Products),
		zap.Int("skipped", len(result.Skipped)),
	)

	return nil
}
