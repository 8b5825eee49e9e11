package models

import (
	"strings"

	"gorm.io/gorm"
)

const (
	CategoryFruit     = "fruit"
	CategoryVegetable = "vegetable"
	CategoryDairy     = "dairy"
	CategoryFungi     = "fungi"
)

// Categories is the set accepted by product validation.
var Categories = []string{CategoryFruit, CategoryVegetable, CategoryDairy}

// FormCategories is what the product forms offer. It includes fungi, which
// validation still rejects.
var FormCategories = []string{CategoryFruit, CategoryVegetable, CategoryDairy, CategoryFungi}

type Product struct {
	Model
	Name     string  `gorm:"not null" json:"name" validate:"required"`
	Price    float64 `gorm:"not null" json:"price" validate:"gte=0"`
	Category string  `gorm:"index" json:"category" validate:"omitempty,oneof=fruit vegetable dairy"`
	FarmID   *string `gorm:"size:26;index" json:"farm_id,omitempty"`
	Farm     *Farm   `gorm:"foreignKey:FarmID" json:"farm,omitempty" validate:"-"`
}

func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Category = NormalizeCategory(p.Category)
	return Validate("Product", p)
}

func NormalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}
