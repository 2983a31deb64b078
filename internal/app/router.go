package app

import (
	"github.com/avc/plantstore/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(handlers.MetricsMiddleware(deps.metrics))
	r.Use(middleware.Compress(5))

	setupRoutes(r, deps, logger)

	return r
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies, logger *zap.Logger) {
	h := deps.handlers

	// Служебные эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)
	r.Handle("/metrics", promhttp.HandlerFor(deps.registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		// Публичные эндпоинты
		r.Post("/auth/register", h.auth.Register)
		r.Post("/auth/register/confirm", h.auth.ConfirmRegistration)
		r.Post("/auth/login", h.auth.Login)
		r.Get("/products", h.catalog.ListProducts)
		r.Get("/products/{id}", h.catalog.GetProduct)
		r.Get("/products/{id}/reviews", h.catalog.ListProductReviews)
		r.Post("/promo/validate", h.promos.Validate)
		r.Post("/payments/ozon/webhook", h.payments.Webhook)

		// Эндпоинты покупателя
		r.Group(func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(deps.jwtManager, logger))

			r.Get("/me", h.auth.Me)
			r.Post("/checkout/quote", h.orders.Quote)
			r.Post("/orders", h.orders.PlaceOrder)
			r.Get("/orders", h.orders.ListMyOrders)
			r.Get("/orders/{id}", h.orders.GetMyOrder)
			r.Post("/orders/{id}/proof", h.orders.UploadProof)
			r.Post("/products/{id}/reviews", h.catalog.CreateReview)
			r.Post("/balance/topups", h.balance.RequestTopup)
			r.Get("/balance/topups", h.balance.ListMyTopups)
			r.Post("/balance/topups/{id}/proof", h.balance.UploadProof)
		})

		// Эндпоинты администратора
		r.Route("/admin", func(r chi.Router) {
			r.Use(handlers.AuthMiddleware(deps.jwtManager, logger))
			r.Use(handlers.AdminMiddleware(logger))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", h.catalog.ListAllProducts)
				r.Post("/", h.catalog.CreateProduct)
				r.Put("/{id}", h.catalog.UpdateProduct)
				r.Delete("/{id}", h.catalog.DeleteProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", h.orders.ListOrders)
				r.Get("/{id}", h.orders.GetOrder)
				r.Put("/{id}", h.orders.EditOrder)
				r.Delete("/{id}", h.orders.DeleteOrder)
				r.Post("/{id}/status", h.orders.ChangeStatus)
				r.Post("/{id}/payment/approve", h.payments.ApproveManual)
				r.Post("/{id}/payment/reject", h.payments.RejectManual)
			})

			r.Route("/users", func(r chi.Router) {
				r.Get("/", h.users.List)
				r.Post("/", h.users.Create)
				r.Get("/{id}", h.users.Get)
				r.Put("/{id}", h.users.Update)
				r.Post("/{id}/balance", h.users.CreditBalance)
			})

			r.Route("/promos", func(r chi.Router) {
				r.Get("/", h.promos.List)
				r.Post("/", h.promos.Create)
				r.Get("/{id}", h.promos.Get)
				r.Put("/{id}", h.promos.Update)
				r.Delete("/{id}", h.promos.Delete)
			})

			r.Route("/reviews", func(r chi.Router) {
				r.Get("/", h.catalog.ListReviews)
				r.Delete("/{id}", h.catalog.DeleteReview)
			})

			r.Route("/topups", func(r chi.Router) {
				r.Get("/", h.balance.ListTopups)
				r.Post("/{id}/approve", h.balance.ApproveTopup)
				r.Post("/{id}/reject", h.balance.RejectTopup)
			})
		})
	})
}
