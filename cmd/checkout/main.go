package main

import (
	"context"
	"log"
	"os"

	"github.com/shopspring/decimal"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/application"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/cli"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/config"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/journal"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/memory"
	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/infrastructure/messaging"
)

func main() {
	cfg := config.Load()
	log.Printf("Starting checkout session for user %s", cfg.DefaultUser)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.SelfCheck {
		if err := cli.SelfCheck(ctx); err != nil {
			log.Fatalf("self-check failed: %v", err)
		}
		log.Printf("All tests passed!")
	}

	// Repos
	catalogRepo := memory.NewMemCatalogRepository(defaultCatalog()...)
	historyRepo := memory.NewMemPurchaseHistoryRepository()

	// Event bus + journal de sesion
	bus := messaging.NewInProcEventBus()
	recorder := journal.NewRecorder()
	bus.Subscribe("ItemAddedToCart", recorder)
	bus.Subscribe("StockReservationFailed", recorder)
	bus.Subscribe("CheckoutCompleted", recorder)

	// Application services
	checkoutSvc := application.NewCheckoutService(catalogRepo, bus, cfg.DefaultUser, cfg.CurrencyCode)
	billingSvc := application.NewBillingService(cfg.CurrencyCode)
	recommenderSvc := application.NewRecommendationService(historyRepo, cfg.MaxRecommendations)

	menu := cli.NewMenu(
		checkoutSvc,
		billingSvc,
		recommenderSvc,
		cfg.DefaultUser,
		cfg.CurrencyCode,
		os.Stdin,
		os.Stdout,
	)

	if err := menu.Run(ctx); err != nil {
		log.Fatalf("session error: %v", err)
	}

	log.Printf("Session finished, %d events journaled", recorder.Len())
}

func defaultCatalog() []*domain.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []*domain.Product{
		domain.NewProduct("APPLE", "Apple", price("50.00"), 100, "Fresh"),
		domain.NewProduct("BREAD", "Bread", price("65.00"), 50, "Broadways"),
		domain.NewPerishableProduct("MILK", "Milk", price("120.00"), 30, "Pasteurized whole milk from Brookside dairy", 7),
		domain.NewProduct("MAIZE-FLOUR", "Maize Flour", price("200.00"), 100, "tupike"),
		domain.NewProduct("BASMATI-RICE", "Basmati Rice", price("180.00"), 80, "Premium long-grain basmati rice from mwea millers"),
		domain.NewProduct("COOKING-OIL", "Cooking Oil", price("170.00"), 50, "1 liter of pure vegetable cooking oil"),
		domain.NewProduct("RINGOS", "Ringos", price("10.00"), 200, "Crunchy potato chips"),
		domain.NewPerishableProduct("YOGHURT", "Yoghurt", price("110.00"), 40, "Creamy vanilla, probiotic-rich yoghurt", 14),
		domain.NewProduct("KETEPA-COFFEE", "Ketepa Coffee", price("36.00"), 100, "Rich Kenyan coffee blend"),
		domain.NewPerishableProduct("NYANYA", "Nyanya (Tomatoes)", price("10.00"), 150, "Fresh, ripe tomatoes", 5),
		domain.NewPerishableProduct("MACHUNGWA", "Machungwa (Oranges)", price("20.00"), 120, "from uasingishu", 7),
	}
}
