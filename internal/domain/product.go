package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductKind string

const (
	ProductStandard   ProductKind = "STANDARD"
	ProductPerishable ProductKind = "PERISHABLE"
)

// Product is a catalog entry. Everything except Stock is immutable after
// construction; Stock moves only through Reserve.
type Product struct {
	ID            uuid.UUID
	Sku           string
	Name          string
	Price         decimal.Decimal
	Stock         int
	Description   string
	Kind          ProductKind
	ShelfLifeDays int // meaningful only when Kind == ProductPerishable
	UpdatedAtUtc  time.Time
}

func NewProduct(sku, name string, price decimal.Decimal, stock int, description string) *Product {
	return &Product{
		ID:           uuid.New(),
		Sku:          sku,
		Name:         name,
		Price:        price,
		Stock:        stock,
		Description:  description,
		Kind:         ProductStandard,
		UpdatedAtUtc: time.Now().UTC(),
	}
}

func NewPerishableProduct(sku, name string, price decimal.Decimal, stock int, description string, shelfLifeDays int) *Product {
	p := NewProduct(sku, name, price, stock, description)
	p.Kind = ProductPerishable
	p.ShelfLifeDays = shelfLifeDays
	return p
}

func (p *Product) CanReserve(qty int) bool {
	return qty > 0 && p.Stock >= qty
}

// Reserve decrements stock for a cart addition. The decrement is
// all-or-nothing: on any validation failure stock is untouched.
func (p *Product) Reserve(qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	if qty > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= qty
	p.UpdatedAtUtc = time.Now().UTC()
	return nil
}

// Summary renders the one-line catalog listing, with the shelf-life overlay
// for perishable entries.
func (p *Product) Summary(currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s, Price: %s %s, Stock: %d", p.Name, currency, p.Price.StringFixed(2), p.Stock)
	if p.Kind == ProductPerishable {
		fmt.Fprintf(&b, "\nShelf Life: %d days", p.ShelfLifeDays)
	}
	return b.String()
}

// Describe renders the detailed view: base summary plus description, plus the
// shelf-life overlay for perishable entries.
func (p *Product) Describe(currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Product: %s, Price: %s %s, Stock: %d", p.Name, currency, p.Price.StringFixed(2), p.Stock)
	fmt.Fprintf(&b, "\nDescription: %s", p.Description)
	if p.Kind == ProductPerishable {
		fmt.Fprintf(&b, "\nShelf Life: %d days", p.ShelfLifeDays)
	}
	return b.String()
}
