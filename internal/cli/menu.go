package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/application"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

// Menu drives one interactive shopper session. It only dispatches into the
// application services; every validation failure is reported and re-prompted,
// never fatal.
type Menu struct {
	checkout    *application.CheckoutService
	billing     *application.BillingService
	recommender *application.RecommendationService
	userID      string
	currency    string
	in          *bufio.Scanner
	out         io.Writer
}

func NewMenu(
	checkout *application.CheckoutService,
	billing *application.BillingService,
	recommender *application.RecommendationService,
	userID string,
	currency string,
	in io.Reader,
	out io.Writer,
) *Menu {
	return &Menu{
		checkout:    checkout,
		billing:     billing,
		recommender: recommender,
		userID:      userID,
		currency:    currency,
		in:          bufio.NewScanner(in),
		out:         out,
	}
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, "\n1. View Product List\n2. View Product Details\n3. Add to Cart\n4. View Cart\n5. Checkout\n6. Get Recommendations\n7. Exit\n")
		choice, ok := m.readInt("Enter your choice: ")
		if !ok {
			// stdin cerrado
			return nil
		}

		switch choice {
		case 1:
			m.listProducts(ctx)
		case 2:
			m.productDetails(ctx)
		case 3:
			m.addToCart(ctx)
		case 4:
			fmt.Fprintln(m.out, m.checkout.ViewCart())
		case 5:
			m.doCheckout(ctx)
			return nil
		case 6:
			m.showRecommendations(ctx)
		case 7:
			fmt.Fprintln(m.out, "Thank you for using our system!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) listProducts(ctx context.Context) {
	listings, err := m.checkout.ListProducts(ctx)
	if err != nil {
		log.Printf("Menu: list products: %v", err)
		return
	}
	fmt.Fprintln(m.out, "Product List:")
	for _, l := range listings {
		fmt.Fprintf(m.out, "Index %d: %s\n", l.Index, l.Summary)
	}
}

func (m *Menu) productDetails(ctx context.Context) {
	index, ok := m.readInt("Enter product index to view details: ")
	if !ok {
		return
	}
	details, err := m.checkout.ProductDetails(ctx, index)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid product index. Please try again.")
		return
	}
	fmt.Fprintln(m.out, details)
}

func (m *Menu) addToCart(ctx context.Context) {
	index, ok := m.readInt("Enter product index: ")
	if !ok {
		return
	}
	details, err := m.checkout.ProductDetails(ctx, index)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid product index. Please try again.")
		return
	}
	fmt.Fprintln(m.out, details)

	quantity, ok := m.readInt("Enter quantity: ")
	if !ok {
		return
	}

	product, err := m.checkout.AddToCart(ctx, index, quantity)
	if err != nil {
		fmt.Fprintf(m.out, "Error: %s\n", errorMessage(err))
		return
	}
	fmt.Fprintln(m.out, "Item added to cart.")

	// El historial se alimenta justo despues de la reserva exitosa y nunca
	// se revierte, aunque el checkout se abandone.
	if err := m.recommender.RecordPurchase(ctx, m.userID, product.Name); err != nil {
		log.Printf("Menu: record purchase: %v", err)
	}
}

func (m *Menu) doCheckout(ctx context.Context) {
	fmt.Fprintln(m.out, "Generating bill...")
	fmt.Fprintln(m.out, m.billing.GenerateBill(m.checkout.Cart()))

	tenPercentOff := domain.NewPercentageDiscount(decimal.NewFromInt(10))
	total, err := m.checkout.Checkout(ctx, tenPercentOff)
	if err != nil {
		log.Printf("Menu: checkout: %v", err)
		return
	}
	fmt.Fprintf(m.out, "Discounted Total: %s %s\n", m.currency, total.StringFixed(2))

	choice, ok := m.readInt("1. Bank\n2. M-PESA\nChoose payment method: ")
	if !ok {
		return
	}
	switch choice {
	case 1:
		account, ok := m.readLine("Enter bank account number: ")
		if !ok {
			return
		}
		ProcessBankPayment(m.out, account, m.currency, total)
	case 2:
		phone, ok := m.readLine("Enter M-PESA phone number: ")
		if !ok {
			return
		}
		pin, ok := m.readLine("Enter M-PESA PIN: ")
		if !ok {
			return
		}
		ProcessMpesaPayment(m.out, phone, pin, m.currency, total)
	default:
		fmt.Fprintln(m.out, "Invalid payment method. Transaction cancelled.")
	}
}

func (m *Menu) showRecommendations(ctx context.Context) {
	recommendations, err := m.recommender.GetRecommendations(ctx, m.userID)
	if err != nil {
		log.Printf("Menu: recommendations: %v", err)
		return
	}
	fmt.Fprintln(m.out, "Recommended products for you:")
	for _, name := range recommendations {
		fmt.Fprintf(m.out, "- %s\n", name)
	}
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) readInt(prompt string) (int, bool) {
	for {
		line, ok := m.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(m.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "Quantity must be positive"
	case errors.Is(err, domain.ErrInsufficientStock):
		return "Not enough stock"
	case errors.Is(err, domain.ErrInvalidIndex):
		return "Invalid product index"
	default:
		return err.Error()
	}
}
