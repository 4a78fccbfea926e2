package productrepo

import (
	"context"
	"errors"

	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogReader implements CatalogReader over the products table.
// A product is considered available when it is flagged available and has
// stock; the engine snapshots the row at order time and never looks back.
type GormCatalogReader struct {
	db *gorm.DB
}

// NewGormCatalogReader creates a catalog reader over the shared database.
func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{db: db}
}

// Snapshot returns the current catalog state of one product.
func (r *GormCatalogReader) Snapshot(ctx context.Context, productID kernel.UUID) (ports.ProductSnapshot, error) {
	if err := productID.Validate(); err != nil {
		return ports.ProductSnapshot{}, err
	}

	var dto ProductDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProductSnapshot{}, errs.NewObjectNotFoundError("product", productID.String())
		}
		return ports.ProductSnapshot{}, err
	}

	farmerID, err := kernel.UUIDFromBytes(dto.FarmerID[:])
	if err != nil {
		return ports.ProductSnapshot{}, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return ports.ProductSnapshot{}, err
	}

	return ports.ProductSnapshot{
		ProductID:    productID,
		Name:         dto.Name,
		ImageURL:     dto.ImageURL,
		UnitPrice:    price,
		Unit:         dto.Unit,
		QualityGrade: dto.QualityGrade,
		IsOrganic:    dto.IsOrganic,
		HarvestDate:  dto.HarvestDate,
		FarmerID:     farmerID,
		Available:    dto.IsAvailable && dto.Stock > 0,
	}, nil
}
