package services

import (
	"context"
	"strings"

	"github.com/h4ks-com/farmstand/internal/models"
	"github.com/h4ks-com/farmstand/internal/repository"
)

type ProductInput struct {
	Name     string
	Price    float64
	Category string
	FarmID   string
}

// ProductUpdate holds the fields an update request supplied. Nil fields keep
// their stored value.
type ProductUpdate struct {
	Name     *string
	Price    *float64
	Category *string
}

type ProductService struct {
	productRepo *repository.ProductRepository
}

func NewProductService(productRepo *repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ListProducts filters by exact category when one is given.
func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	return s.productRepo.FindAll(ctx, category)
}

// CreateProduct stores a standalone product. A farm id in the input is stored
// as given without checking that the farm exists.
func (s *ProductService) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	product := &models.Product{
		Name:     in.Name,
		Price:    in.Price,
		Category: in.Category,
	}

	if farmID := strings.TrimSpace(in.FarmID); farmID != "" {
		product.FarmID = &farmID
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	if !models.ValidID(id) {
		return nil, ErrProductNotFound
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	return product, nil
}

// UpdateProduct applies the supplied name, price and category onto the stored
// product and validates the merged record on save. The owning farm cannot be
// reassigned here.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, in ProductUpdate) (*models.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Category != nil {
		product.Category = *in.Category
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if !models.ValidID(id) {
		return nil
	}

	_, err := s.productRepo.Delete(ctx, id)
	return err
}
