package services

import (
	"context"
	"errors"

	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/h4ks-com/farmstand/internal/repository"
	"gorm.io/gorm"
)

type FarmInput struct {
	Name  string
	City  string
	Email string
}

type FarmService struct {
	farmRepo    *repository.FarmRepository
	productRepo *repository.ProductRepository
	db          *gorm.DB
}

func NewFarmService(farmRepo *repository.FarmRepository, productRepo *repository.ProductRepository, db *gorm.DB) *FarmService {
	return &FarmService{
		farmRepo:    farmRepo,
		productRepo: productRepo,
		db:          db,
	}
}

func (s *FarmService) ListFarms(ctx context.Context) ([]models.Farm, error) {
	return s.farmRepo.FindAll(ctx)
}

func (s *FarmService) CreateFarm(ctx context.Context, in FarmInput) (*models.Farm, error) {
	farm := &models.Farm{
		Name:  in.Name,
		City:  in.City,
		Email: in.Email,
	}

	if err := s.farmRepo.Create(ctx, farm); err != nil {
		return nil, err
	}

	return farm, nil
}

// GetFarm returns the farm with its products resolved.
func (s *FarmService) GetFarm(ctx context.Context, id string) (*models.Farm, error) {
	if !models.ValidID(id) {
		return nil, ErrFarmNotFound
	}

	farm, err := s.farmRepo.FindByIDWithProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}

	return farm, nil
}

// GetFarmSummary returns the farm without loading its products.
func (s *FarmService) GetFarmSummary(ctx context.Context, id string) (*models.Farm, error) {
	if !models.ValidID(id) {
		return nil, ErrFarmNotFound
	}

	farm, err := s.farmRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if farm == nil {
		return nil, ErrFarmNotFound
	}

	return farm, nil
}

// DeleteFarm removes the farm only. Its products stay behind with their
// farm_id pointing at the deleted farm.
func (s *FarmService) DeleteFarm(ctx context.Context, id string) error {
	if !models.ValidID(id) {
		return nil
	}

	_, err := s.farmRepo.Delete(ctx, id)
	return err
}

// AddProduct creates a product owned by the farm. The farm row is locked for
// the duration so the product insert and the farm's updated_at move together.
func (s *FarmService) AddProduct(ctx context.Context, farmID string, in ProductInput) (*models.Product, error) {
	if !models.ValidID(farmID) {
		return nil, ErrFarmNotFound
	}

	var product *models.Product

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		farm, err := s.farmRepo.FindByIDForUpdate(tx, farmID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFarmNotFound
			}
			return err
		}

		product = &models.Product{
			Name:     in.Name,
			Price:    in.Price,
			Category: in.Category,
			FarmID:   &farm.ID,
		}

		if err := s.productRepo.CreateInTx(tx, product); err != nil {
			return err
		}

		return s.farmRepo.TouchInTx(tx, farm)
	})

	if err != nil {
		return nil, err
	}

	return product, nil
}
