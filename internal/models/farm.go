package models

import (
	"strings"

	"gorm.io/gorm"
)

type Farm struct {
	Model
	Name     string    `gorm:"not null" json:"name" validate:"required"`
	City     string    `json:"city"`
	Email    string    `json:"email" validate:"omitempty,email"`
	Products []Product `gorm:"foreignKey:FarmID" json:"products,omitempty" validate:"-"`
}

func (f *Farm) BeforeSave(tx *gorm.DB) error {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.Email = strings.TrimSpace(f.Email)
	return Validate("Farm", f)
}
