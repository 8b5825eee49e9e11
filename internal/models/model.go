package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// Model replaces gorm.Model for farm stand records: string ULID keys that sort
// by creation time and hard deletes.
type Model struct {
	ID        string    `gorm:"primaryKey;size:26" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = NewID()
	}
	return nil
}

func NewID() string {
	return ulid.Make().String()
}

// ValidID reports whether id has the shape of a record key.
func ValidID(id string) bool {
	_, err := ulid.ParseStrict(id)
	return err == nil
}
