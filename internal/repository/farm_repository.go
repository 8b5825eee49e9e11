package repository

import (
	"context"
	"errors"

	"github.com/h4ks-com/farmstand/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FarmRepository struct {
	db *gorm.DB
}

func NewFarmRepository(db *gorm.DB) *FarmRepository {
	return &FarmRepository{db: db}
}

func (r *FarmRepository) Create(ctx context.Context, farm *models.Farm) error {
	return r.db.WithContext(ctx).Create(farm).Error
}

func (r *FarmRepository) FindAll(ctx context.Context) ([]models.Farm, error) {
	var farms []models.Farm
	err := r.db.WithContext(ctx).Order("id ASC").Find(&farms).Error
	return farms, err
}

// FindByID returns nil, nil when no farm has the given id.
func (r *FarmRepository) FindByID(ctx context.Context, id string) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&farm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &farm, nil
}

// FindByIDWithProducts loads the farm and its products in insertion order.
func (r *FarmRepository) FindByIDWithProducts(ctx context.Context, id string) (*models.Farm, error) {
	var farm models.Farm
	err := r.db.WithContext(ctx).
		Preload("Products", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id ASC")
		}).
		Where("id = ?", id).
		First(&farm).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &farm, nil
}

func (r *FarmRepository) FindByIDForUpdate(tx *gorm.DB, id string) (*models.Farm, error) {
	var farm models.Farm
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&farm).Error
	if err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *FarmRepository) TouchInTx(tx *gorm.DB, farm *models.Farm) error {
	return tx.Model(farm).Update("updated_at", tx.NowFunc()).Error
}

// Delete removes the farm; deleting an unknown id is not an error.
func (r *FarmRepository) Delete(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Farm{})
	return result.RowsAffected, result.Error
}
