package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cardsposters/storefront/internal/config"
	"github.com/cardsposters/storefront/internal/logger"
	"github.com/cardsposters/storefront/internal/modules/cart"
	"github.com/cardsposters/storefront/internal/modules/catalog"
	"github.com/cardsposters/storefront/internal/modules/contact"
	"github.com/cardsposters/storefront/internal/modules/order"
	"github.com/cardsposters/storefront/internal/modules/profile"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if err := logger.Init(cfg.LogLevel, cfg.LogAsJSON); err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalogue & Filtering ───────────────────────────────
	catalogService := catalog.NewService(catalog.NewIndex())
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Cart ────────────────────────────────────────────────
	cartStore := cart.NewStore()
	cartService := cart.NewService(cartStore, catalogService)
	cart.NewHandler(cartService).RegisterRoutes(router)

	// ── Profile ─────────────────────────────────────────────
	profileStore := profile.NewStore(profile.NewFileRepository(cfg.ProfileStorePath))
	profileStore.Load()
	profile.NewHandler(profileStore).RegisterRoutes(router)

	// ── Order Hand-off ──────────────────────────────────────
	orderService := order.NewService(cartStore, profileStore, cfg.WhatsAppNumber, cfg.PricePerPhoto)
	order.NewHandler(orderService).RegisterRoutes(router)

	// ── Contact ─────────────────────────────────────────────
	contactService := contact.NewService(cfg.ContactSentReset)
	contact.NewHandler(contactService).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	logger.Info("storefront API starting", logger.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("server stopped", logger.ErrorF(err))
	}
}
