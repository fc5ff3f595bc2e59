package application

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

// CheckoutService is the facade the presentation layer talks to: catalog
// listing, cart additions with stock reservation, and checkout totals.
type CheckoutService struct {
	catalog  domain.CatalogRepository
	bus      EventBus
	cart     *domain.Cart
	currency string
}

func NewCheckoutService(
	catalog domain.CatalogRepository,
	bus EventBus,
	userID string,
	currency string,
) *CheckoutService {
	return &CheckoutService{
		catalog:  catalog,
		bus:      bus,
		cart:     domain.NewCart(userID),
		currency: currency,
	}
}

type ProductListing struct {
	Index   int
	Summary string
}

func (s *CheckoutService) ListProducts(ctx context.Context) ([]ProductListing, error) {
	products, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	listings := make([]ProductListing, 0, len(products))
	for i, p := range products {
		listings = append(listings, ProductListing{Index: i, Summary: p.Summary(s.currency)})
	}
	return listings, nil
}

func (s *CheckoutService) ProductDetails(ctx context.Context, index int) (string, error) {
	p, err := s.catalog.GetByIndex(ctx, index)
	if err != nil {
		return "", err
	}
	return p.Describe(s.currency), nil
}

// AddToCart reserves stock and appends a cart line; from the caller's view
// both happen or neither does. Validation order: index, quantity, stock.
// On success it returns the product so the caller can record the purchase
// with the recommendation engine.
func (s *CheckoutService) AddToCart(ctx context.Context, index, quantity int) (*domain.Product, error) {
	product, err := s.catalog.GetByIndex(ctx, index)
	if err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !product.CanReserve(quantity) {
		reason := fmt.Sprintf("Not enough stock for sku %s", product.Sku)
		ev := domain.NewStockReservationFailedEvent(s.cart.ID, s.cart.UserID, product.Sku, quantity, product.Stock, reason)
		if pubErr := s.bus.Publish(ctx, ev); pubErr != nil {
			log.Printf("CheckoutService: failed to publish StockReservationFailed: %v", pubErr)
		}
		return nil, domain.ErrInsufficientStock
	}

	if err := product.Reserve(quantity); err != nil {
		return nil, err
	}
	if err := s.catalog.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product %s: %w", product.Sku, err)
	}

	line := domain.NewCartLine(product, quantity)
	s.cart.AddLine(line)

	ev := domain.NewItemAddedToCartEvent(s.cart.ID, s.cart.UserID, line)
	if pubErr := s.bus.Publish(ctx, ev); pubErr != nil {
		log.Printf("CheckoutService: failed to publish ItemAddedToCart: %v", pubErr)
	}
	return product, nil
}

func (s *CheckoutService) ViewCart() string {
	return s.cart.Render(s.currency)
}

func (s *CheckoutService) CartTotal() decimal.Decimal {
	return s.cart.Total()
}

func (s *CheckoutService) Cart() *domain.Cart {
	return s.cart
}

// Checkout applies the caller-chosen discount to the cart total and returns
// the final amount. Payment itself belongs to the presentation layer; the
// core only hands the number over.
func (s *CheckoutService) Checkout(ctx context.Context, d domain.Discount) (decimal.Decimal, error) {
	subtotal := s.cart.Total()
	total := d.Apply(subtotal)

	ev := domain.NewCheckoutCompletedEvent(s.cart, subtotal, total, d)
	if err := s.bus.Publish(ctx, ev); err != nil {
		log.Printf("CheckoutService: failed to publish CheckoutCompleted: %v", err)
	}
	return total, nil
}
