package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/restroboost-backend/api/controllers"
	analyticscontrollers "github.com/angelmondragon/restroboost-backend/api/controllers/analytics"
	democontrollers "github.com/angelmondragon/restroboost-backend/api/controllers/demo"
	feedbackcontrollers "github.com/angelmondragon/restroboost-backend/api/controllers/feedback"
	inventorycontrollers "github.com/angelmondragon/restroboost-backend/api/controllers/inventory"
	menucontrollers "github.com/angelmondragon/restroboost-backend/api/controllers/menu"
	ordercontrollers "github.com/angelmondragon/restroboost-backend/api/controllers/orders"
	"github.com/angelmondragon/restroboost-backend/api/middleware"
	"github.com/angelmondragon/restroboost-backend/internal/analytics"
	"github.com/angelmondragon/restroboost-backend/internal/auth"
	"github.com/angelmondragon/restroboost-backend/internal/feedback"
	"github.com/angelmondragon/restroboost-backend/internal/inventory"
	"github.com/angelmondragon/restroboost-backend/internal/menu"
	"github.com/angelmondragon/restroboost-backend/internal/orders"
	"github.com/angelmondragon/restroboost-backend/pkg/config"
	"github.com/angelmondragon/restroboost-backend/pkg/logger"
	"github.com/angelmondragon/restroboost-backend/pkg/metrics"
)

// Services groups the domain services the router exposes.
type Services struct {
	Auth      auth.Service
	Inventory inventory.Service
	Menu      menu.Service
	Feedback  feedback.Service
	Orders    orders.Service
	Analytics analytics.Service
	Demo      democontrollers.Seeder
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	backend controllers.Pinger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	svc Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, backend))
	})
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	var sessions middleware.SessionChecker
	if svc.Auth != nil {
		sessions = svc.Auth
	}
	requireAuth := middleware.Auth(cfg.JWT, sessions, logg)

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", controllers.AuthRegister(svc.Auth, logg))
		r.Post("/login", controllers.AuthLogin(svc.Auth, logg))
		r.Post("/logout", controllers.AuthLogout(svc.Auth, logg))
		r.With(requireAuth).Get("/me", controllers.AuthMe(svc.Auth, logg))
		r.With(requireAuth).Patch("/me", controllers.AuthUpdateProfile(svc.Auth, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireAuth)

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", inventorycontrollers.List(svc.Inventory, logg))
			r.Post("/", inventorycontrollers.Create(svc.Inventory, logg))
			r.Get("/alerts", analyticscontrollers.InventoryAlerts(svc.Analytics, logg))
			r.Patch("/{id}", inventorycontrollers.Update(svc.Inventory, logg))
			r.Delete("/{id}", inventorycontrollers.Delete(svc.Inventory, logg))
			r.Post("/{id}/stock", inventorycontrollers.AdjustStock(svc.Inventory, logg))
		})

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menucontrollers.List(svc.Menu, logg))
			r.Post("/", menucontrollers.Create(svc.Menu, logg))
			r.Get("/categories", menucontrollers.Categories(svc.Analytics, logg))
			r.Patch("/{id}", menucontrollers.Update(svc.Menu, logg))
			r.Delete("/{id}", menucontrollers.Delete(svc.Menu, logg))
			r.Post("/{id}/toggle", menucontrollers.Toggle(svc.Menu, logg))
		})

		r.Route("/feedback", func(r chi.Router) {
			r.Get("/", feedbackcontrollers.List(svc.Feedback, logg))
			r.Post("/", feedbackcontrollers.Create(svc.Feedback, logg))
			r.Get("/sentiment", feedbackcontrollers.Sentiment(svc.Analytics, logg))
			r.Patch("/{id}", feedbackcontrollers.Update(svc.Feedback, logg))
			r.Delete("/{id}", feedbackcontrollers.Delete(svc.Feedback, logg))
			r.Post("/{id}/responded", feedbackcontrollers.MarkResponded(svc.Feedback, logg))
			r.Post("/{id}/helpful", feedbackcontrollers.MarkHelpful(svc.Feedback, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordercontrollers.List(svc.Orders, logg))
			r.Post("/", ordercontrollers.Create(svc.Orders, logg))
			r.Post("/simulate", ordercontrollers.Simulate(svc.Orders, logg))
			r.Patch("/{id}", ordercontrollers.Update(svc.Orders, logg))
			r.Delete("/{id}", ordercontrollers.Delete(svc.Orders, logg))
			r.Post("/{id}/status", ordercontrollers.Transition(svc.Orders, logg))
		})

		r.Get("/dashboard", analyticscontrollers.Dashboard(svc.Analytics, logg))

		r.Route("/demo", func(r chi.Router) {
			r.Post("/seed", democontrollers.Seed(svc.Demo, logg))
			r.Post("/reset", democontrollers.Reset(svc.Demo, logg))
		})
	})

	return r
}
