package domain

import "context"

// CatalogRepository owns every Product for the session; carts and services
// hold non-owning references (sku or index) into it.
type CatalogRepository interface {
	List(ctx context.Context) ([]*Product, error)
	GetByIndex(ctx context.Context, index int) (*Product, error)
	GetBySku(ctx context.Context, sku string) (*Product, error)
	Save(ctx context.Context, p *Product) error
}

type PurchaseHistoryRepository interface {
	Append(ctx context.Context, userID, productName string) error
	GetByUser(ctx context.Context, userID string) ([]string, error)
	All(ctx context.Context) (PurchaseHistory, error)
}
