package repository

import (
	"context"
	"errors"

	"github.com/h4ks-com/farmstand/internal/models"
	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Farm").Create(product).Error
}

func (r *ProductRepository) CreateInTx(tx *gorm.DB, product *models.Product) error {
	return tx.Omit("Farm").Create(product).Error
}

// FindAll returns every product when category is empty, otherwise only the
// products whose stored category equals it exactly.
func (r *ProductRepository) FindAll(ctx context.Context, category string) ([]models.Product, error) {
	var products []models.Product
	db := r.db.WithContext(ctx)
	if category != "" {
		db = db.Where("category = ?", category)
	}
	err := db.Order("id ASC").Find(&products).Error
	return products, err
}

// FindByID returns nil, nil when no product has the given id. The owning farm
// is preloaded with its id and name only.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Preload("Farm", func(tx *gorm.DB) *gorm.DB {
			return tx.Select("id", "name")
		}).
		Where("id = ?", id).
		First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Omit("Farm").Save(product).Error
}

// Delete removes the product; deleting an unknown id is not an error.
func (r *ProductRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	return result.RowsAffected, result.Error
}
