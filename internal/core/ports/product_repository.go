package ports

import (
	"context"

	"deliverus/internal/core/domain/model/kernel"
	"deliverus/internal/core/domain/model/product"
)

// ProductRepository defines the read-only persistence contract for products.
// Products are owned by the restaurant service; the order core only resolves
// them to validate and price order lines.
type ProductRepository interface {
	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// GetBatch retrieves the products for the given identifiers. Missing
	// identifiers are simply absent from the result; callers detect them by
	// comparing against the requested set.
	GetBatch(ctx context.Context, ids []kernel.ID) (map[kernel.ID]*product.Product, error)
}
