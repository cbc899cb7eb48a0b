package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/customer-portal/internal/application/analytics"
	"github.com/jhoicas/customer-portal/internal/application/auth"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CustomerUC   *usecase.CustomerUseCase
	ReportUC     *usecase.ReportUseCase
	DashboardUC  *analytics.DashboardUseCase
	Auth         AuthConfig
	SecureCookie bool
}

// OpsDeps dependencias de las rutas operativas.
type OpsDeps struct {
	AppName  string
	Gatherer prometheus.Gatherer // nil = sin /metrics
}

// Ops registra /health y /metrics.
func Ops(app *fiber.App, deps OpsDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})
	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.Auth.CookieName, deps.SecureCookie)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)

	// Rutas protegidas (Bearer Token o cookie de sesión). Sin claim role en
	// el token, el rol se toma de /me.
	authCfg := deps.Auth
	if authCfg.Roles == nil && deps.UserUC != nil {
		authCfg.Roles = deps.UserUC
	}
	protected := api.Group("/", AuthMiddleware(authCfg))

	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/me", userHandler.Me)
	protected.Get("/users", RequireRole(entity.RoleAdmin), userHandler.List)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Get)

	// Customers: las rutas fijas van antes que /:id
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	reportHandler := NewReportHandler(deps.ReportUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/search", customerHandler.Search)
	customers.Get("/filter", customerHandler.Filter)
	customers.Get("/filter/pdf", reportHandler.FilterPDF)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Patch("/:id", customerHandler.Update)
	customers.Get("/:id/pdf", reportHandler.CustomerPDF)
}
