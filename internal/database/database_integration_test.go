//go:build integration
// +build integration

package database

import (
	"context"
	"testing"
	"time"

	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

func setupPostgres(t *testing.T) string {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("farmstand"),
		postgres.WithUsername("farmstand"),
		postgres.WithPassword("farmstand"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, pgContainer)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	return connStr
}

func TestPostgres_MigrateAndRelations(t *testing.T) {
	db, err := Connect(setupPostgres(t))
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))

	farm := &models.Farm{Name: "Full Belly Farm", City: "Guinda"}
	require.NoError(t, db.Create(farm).Error)

	for _, name := range []string{"Goat Cheese", "Raw Milk"} {
		require.NoError(t, db.Create(&models.Product{Name: name, Price: 5, Category: "Dairy", FarmID: &farm.ID}).Error)
	}

	var loaded models.Farm
	require.NoError(t, db.Preload("Products", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).First(&loaded, "id = ?", farm.ID).Error)
	require.Len(t, loaded.Products, 2)
	assert.Equal(t, "Goat Cheese", loaded.Products[0].Name)
	assert.Equal(t, "dairy", loaded.Products[0].Category)

	require.NoError(t, db.Delete(&models.Farm{}, "id = ?", farm.ID).Error)

	var remaining int64
	require.NoError(t, db.Model(&models.Product{}).Where("farm_id = ?", farm.ID).Count(&remaining).Error)
	assert.Equal(t, int64(2), remaining)
}
