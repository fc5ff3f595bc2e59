package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one reserved quantity of one product. The Sku is a non-owning
// reference into the catalog; Name and UnitPrice are copied at add time (both
// are immutable on the product, so the snapshot never drifts).
type CartLine struct {
	ID        uuid.UUID
	Sku       string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func NewCartLine(p *Product, qty int) CartLine {
	return CartLine{
		ID:        uuid.New(),
		Sku:       p.Sku,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  qty,
	}
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the session's reserved lines in insertion order. Repeated adds
// of the same product stay separate lines; the receipt mirrors the order in
// which the shopper added things.
type Cart struct {
	ID           uuid.UUID
	UserID       string
	Lines        []CartLine
	CreatedAtUtc time.Time
}

func NewCart(userID string) *Cart {
	return &Cart{
		ID:           uuid.New(),
		UserID:       userID,
		Lines:        nil,
		CreatedAtUtc: time.Now().UTC(),
	}
}

func (c *Cart) AddLine(l CartLine) {
	c.Lines = append(c.Lines, l)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Render produces the per-line breakdown plus the total, insertion order.
func (c *Cart) Render(currency string) string {
	var b strings.Builder
	b.WriteString("Shopping Cart:")
	for _, l := range c.Lines {
		fmt.Fprintf(&b, "\n%s x %d = %s %s", l.Name, l.Quantity, currency, l.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(&b, "\nTotal: %s %s", currency, c.Total().StringFixed(2))
	return b.String()
}
