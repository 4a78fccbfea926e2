// Package productrepo reads the marketplace product catalog.
// The order engine only consumes the catalog; listing and editing products
// belongs to the catalog service that owns this table.
package productrepo

import (
	"time"

	"github.com/google/uuid"
)

// ProductDTO represents one catalog row as the order engine sees it.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FarmerID     uuid.UUID `gorm:"type:uuid;index"`
	Name         string
	ImageURL     string
	Price        float64 `gorm:"type:decimal(12,2)"`
	Unit         string  `gorm:"type:varchar(16)"`
	QualityGrade string  `gorm:"type:varchar(8)"`
	IsOrganic    bool
	HarvestDate  *time.Time
	IsAvailable  bool
	Stock        int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for catalog products.
func (ProductDTO) TableName() string {
	return "products"
}
