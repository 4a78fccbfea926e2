package ports

import (
	"context"
	"time"

	"farmmarket/internal/core/domain/model/kernel"
)

// ProductSnapshot is the authoritative view of a catalog product at order
// time. The order engine copies these attributes into immutable item
// snapshots; it never reads the catalog again for a placed order.
type ProductSnapshot struct {
	ProductID    kernel.UUID
	Name         string
	ImageURL     string
	UnitPrice    kernel.Money
	Unit         string
	QualityGrade string
	IsOrganic    bool
	HarvestDate  *time.Time
	FarmerID     kernel.UUID
	Available    bool
}

// CatalogReader supplies authoritative product price and availability at
// order-creation time. It is an external collaborator; implementations must
// bound the lookup with a timeout and surface failures as
// UpstreamUnavailableError so creation stays all-or-nothing.
type CatalogReader interface {
	// Snapshot returns the current catalog state of one product.
	// Returns an ObjectNotFoundError kind for unknown products.
	Snapshot(ctx context.Context, productID kernel.UUID) (ProductSnapshot, error)
}
