package database

import (
	"path/filepath"
	"testing"

	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_InMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	defer Close(db)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.Farm{}))
	assert.True(t, db.Migrator().HasTable(&models.Product{}))
}

func TestConnect_SQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farmstand.db")

	db, err := Connect("sqlite:" + path)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	farm := &models.Farm{Name: "Full Belly Farm"}
	require.NoError(t, db.Create(farm).Error)
	require.NoError(t, Close(db))

	reopened, err := Connect("sqlite:" + path)
	require.NoError(t, err)
	defer Close(reopened)

	var found models.Farm
	require.NoError(t, reopened.First(&found, "id = ?", farm.ID).Error)
	assert.Equal(t, "Full Belly Farm", found.Name)
}

func TestMigrate_NoForeignKeyOnProducts(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))

	farm := &models.Farm{Name: "Soon Gone"}
	require.NoError(t, db.Create(farm).Error)
	product := &models.Product{Name: "Kale", Price: 2, Category: "vegetable", FarmID: &farm.ID}
	require.NoError(t, db.Create(product).Error)

	require.NoError(t, db.Delete(&models.Farm{}, "id = ?", farm.ID).Error)

	var orphan models.Product
	require.NoError(t, db.First(&orphan, "id = ?", product.ID).Error)
	require.NotNil(t, orphan.FarmID)
	assert.Equal(t, farm.ID, *orphan.FarmID)
}

func TestReset(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)
	defer Close(db)
	require.NoError(t, Migrate(db))

	farm := &models.Farm{Name: "Reset Farm"}
	require.NoError(t, db.Create(farm).Error)
	require.NoError(t, db.Create(&models.Product{Name: "Milk", Price: 3, FarmID: &farm.ID}).Error)

	require.NoError(t, Reset(db))

	var farms, products int64
	db.Model(&models.Farm{}).Count(&farms)
	db.Model(&models.Product{}).Count(&products)
	assert.Zero(t, farms)
	assert.Zero(t, products)
}
