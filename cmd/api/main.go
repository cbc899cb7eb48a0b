package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/customer-portal/assets"
	"github.com/jhoicas/customer-portal/docs"
	appanalytics "github.com/jhoicas/customer-portal/internal/application/analytics"
	"github.com/jhoicas/customer-portal/internal/application/auth"
	"github.com/jhoicas/customer-portal/internal/application/report"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/infrastructure/backend"
	"github.com/jhoicas/customer-portal/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/customer-portal/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/customer-portal/internal/interfaces/http"
	"github.com/jhoicas/customer-portal/pkg/config"
	"github.com/jhoicas/customer-portal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Backend.URL).
		Msg("iniciando aplicación")

	logo, err := assets.LoadLogo(cfg.Report.LogoPath)
	if err != nil {
		log.Fatal().Err(err).Msg("logo de reportes")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, log.Component("backend"))

	customerUC := usecase.NewCustomerUseCase(client)
	userUC := usecase.NewUserUseCase(client)
	dashboardUC := appanalytics.NewDashboardUseCase(client)
	authUC := auth.NewAuthUseCase(client, cfg.Auth.Secret)

	// PDF: un renderer por petición, con la respuesta HTTP como destino
	reportOpts := report.DefaultOptions(logo)
	reportOpts.Offset = cfg.Report.UTCOffset
	reportUC := usecase.NewReportUseCase(customerUC, func(out report.Output) report.DocumentRenderer {
		return infrapdf.NewRenderer(out, cfg.App.Name)
	}, reportOpts, m, log.Component("report"))

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http"), m))

	// Swagger UI en local: http://localhost:<port>/docs
	specPath, err := docs.WriteFile(filepath.Join(os.TempDir(), cfg.App.Name))
	if err != nil {
		log.Error().Err(err).Msg("especificación OpenAPI no disponible")
	} else {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "Customer Portal API",
		}))
	}

	httpRouter.Ops(app, httpRouter.OpsDeps{AppName: cfg.App.Name, Gatherer: registry})
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		CustomerUC:  customerUC,
		ReportUC:    reportUC,
		DashboardUC: dashboardUC,
		Auth: httpRouter.AuthConfig{
			Secret:     cfg.Auth.Secret,
			CookieName: cfg.Auth.CookieName,
		},
		SecureCookie: cfg.App.Env == "production",
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
