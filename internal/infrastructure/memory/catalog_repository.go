package memory

import (
	"context"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

// MemCatalogRepository keeps the session catalog in memory: an ordered slice
// for index lookups plus a sku index. Single-writer per the session model,
// so no locking.
type MemCatalogRepository struct {
	products []*domain.Product
	bySku    map[string]*domain.Product
}

func NewMemCatalogRepository(products ...*domain.Product) *MemCatalogRepository {
	r := &MemCatalogRepository{
		products: make([]*domain.Product, 0, len(products)),
		bySku:    make(map[string]*domain.Product, len(products)),
	}
	for _, p := range products {
		r.products = append(r.products, p)
		r.bySku[p.Sku] = p
	}
	return r
}

func (r *MemCatalogRepository) List(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemCatalogRepository) GetByIndex(ctx context.Context, index int) (*domain.Product, error) {
	if index < 0 || index >= len(r.products) {
		return nil, domain.ErrInvalidIndex
	}
	return r.products[index], nil
}

func (r *MemCatalogRepository) GetBySku(ctx context.Context, sku string) (*domain.Product, error) {
	p, ok := r.bySku[sku]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func (r *MemCatalogRepository) Save(ctx context.Context, p *domain.Product) error {
	if existing, ok := r.bySku[p.Sku]; ok {
		if existing != p {
			*existing = *p
		}
		return nil
	}
	r.products = append(r.products, p)
	r.bySku[p.Sku] = p
	return nil
}
