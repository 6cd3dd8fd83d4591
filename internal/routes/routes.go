// Package routes wires repositories, services and handlers and registers
// all HTTP routes. Construction is explicit; no package-level store or auth
// handles exist anywhere in the tree.
package routes

import (
	"bankee/internal/handlers"
	"bankee/internal/middleware"
	"bankee/internal/repositories"
	"bankee/internal/repositories/cache"
	"bankee/internal/services/auth"
	"bankee/internal/services/contact"
	"bankee/internal/services/history"
	"bankee/internal/services/ledger"
	"bankee/internal/services/notification"
	"bankee/internal/services/qrpay"
	"bankee/internal/services/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Deps carries everything the route tree needs from the entry point.
type Deps struct {
	DB             *gorm.DB
	Cache          *cache.Service
	JWTSecret      string
	OpeningBalance decimal.Decimal
	Metrics        ledger.MetricsCollector
	Feed           *history.Feed
}

// Setup builds the full dependency graph and registers all routes.
func Setup(app *fiber.App, deps Deps) {
	userRepo := repositories.NewUserRepository(deps.DB)
	ledgerRepo := repositories.NewLedgerRepository(deps.DB)
	txnRepo := repositories.NewTransactionRepository(deps.DB)
	contactRepo := repositories.NewContactRepository(deps.DB)
	notificationRepo := repositories.NewNotificationRepository(deps.DB)
	subscriptionRepo := repositories.NewSubscriptionRepository(deps.DB)

	notificationService := notification.NewService(notificationRepo)
	userService := user.NewService(deps.DB, userRepo, notificationService, deps.OpeningBalance)
	authService := auth.NewService(userRepo, notificationService, deps.JWTSecret)

	var invalidator ledger.CacheInvalidator
	if deps.Cache != nil {
		invalidator = deps.Cache
	}
	var feed ledger.FeedPublisher
	if deps.Feed != nil {
		feed = deps.Feed
	}
	ledgerService := ledger.NewService(ledgerRepo, invalidator, feed, deps.Metrics)
	historyService := history.NewService(ledgerRepo, txnRepo, deps.Cache)
	contactService := contact.NewService(userRepo, contactRepo)
	qrService := qrpay.NewService(ledgerService)

	authHandler := handlers.NewAuthHandler(authService, userService)
	walletHandler := handlers.NewWalletHandler(historyService)
	transferHandler := handlers.NewTransferHandler(ledgerService, userRepo)
	paymentHandler := handlers.NewPaymentHandler(ledgerService, subscriptionRepo)
	qrHandler := handlers.NewQRHandler(qrService)
	contactHandler := handlers.NewContactHandler(contactService)
	transactionHandler := handlers.NewTransactionHandler(historyService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	profileHandler := handlers.NewProfileHandler(userService)

	api := app.Group("/api")

	// Public endpoints
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Protected endpoints
	authMiddleware := middleware.NewAuthMiddleware(authService, deps.JWTSecret)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/logout", authHandler.Logout)

	protected.Get("/wallet", walletHandler.GetBalance)
	protected.Post("/transfer", transferHandler.Transfer)

	protected.Get("/transactions", transactionHandler.History)
	protected.Get("/transactions/:id", transactionHandler.Detail)

	if deps.Feed != nil {
		watchHandler := handlers.NewWatchHandler(deps.Feed)
		protected.Get("/watch", watchHandler.Stream)
	}

	protected.Get("/contacts", contactHandler.List)
	protected.Post("/contacts", contactHandler.Add)
	protected.Delete("/contacts/:id", contactHandler.Remove)

	protected.Post("/qr/generate", qrHandler.Generate)
	protected.Post("/qr/pay", qrHandler.Pay)

	protected.Post("/bills/pay", paymentHandler.PayBill)
	protected.Get("/subscriptions", paymentHandler.ListSubscriptions)
	protected.Post("/subscriptions", paymentHandler.Subscribe)

	protected.Get("/notifications", notificationHandler.List)
	protected.Post("/notifications/:id/read", notificationHandler.MarkRead)

	protected.Get("/profile", profileHandler.Get)
	protected.Patch("/profile", profileHandler.Update)
}
