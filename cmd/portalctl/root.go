package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jhoicas/customer-portal/assets"
	"github.com/jhoicas/customer-portal/internal/application/report"
	"github.com/jhoicas/customer-portal/internal/application/session"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/infrastructure/backend"
	"github.com/jhoicas/customer-portal/internal/infrastructure/output"
	"github.com/jhoicas/customer-portal/internal/infrastructure/pdf"
	"github.com/jhoicas/customer-portal/internal/infrastructure/tokenstore"
	"github.com/jhoicas/customer-portal/pkg/config"
	"github.com/jhoicas/customer-portal/pkg/logger"
)

// errNoSession no hay token guardado o ya expiró.
var errNoSession = errors.New("no hay sesión activa: ejecute 'portalctl login'")

// globalOptions flags persistentes del CLI.
type globalOptions struct {
	backendURL string
	tokenFile  string
	verbose    bool
}

// app dependencias resueltas en PersistentPreRunE.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	store  *tokenstore.File
	client *backend.Client
}

// NewRootCmd crea el comando raíz de portalctl.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}
	rt := &app{}

	cmd := &cobra.Command{
		Use:   "portalctl",
		Short: "Customer portal CLI",
		Long: `portalctl inicia sesión contra la API de clientes y genera los reportes PDF
(ficha individual o listado filtrado) en la carpeta de descargas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return rt.setup(cmd.ErrOrStderr(), opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.backendURL, "backend", "", "URL base de la API (por defecto BACKEND_URL)")
	cmd.PersistentFlags().StringVar(&opts.tokenFile, "token-file", "", "archivo del token (por defecto $XDG_STATE_HOME/customer-portal/token)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "logging detallado")

	cmd.AddCommand(newLoginCmd(rt))
	cmd.AddCommand(newLogoutCmd(rt))
	cmd.AddCommand(newPrintCmd(rt))

	return cmd
}

// Execute corre el comando raíz.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (rt *app) setup(stderr io.Writer, opts *globalOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.backendURL != "" {
		cfg.Backend.URL = opts.backendURL
	}
	level := cfg.App.LogLevel
	if opts.verbose {
		level = "debug"
	}
	rt.cfg = cfg
	rt.log = logger.New(logger.Config{Env: "development", Level: level, Output: stderr})
	rt.store = tokenstore.NewFile(opts.tokenFile)
	rt.client = backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout, rt.log.Component("backend"))
	return nil
}

// sessionContext contexto autenticado con el token guardado. Se cancela si
// el token expira mientras el comando corre.
func (rt *app) sessionContext(parent context.Context) (context.Context, func(), error) {
	ctx, cancel := context.WithCancelCause(parent)
	w := session.NewWatcher(rt.store, rt.cfg.Auth.Secret, func() {
		cancel(errNoSession)
	}, session.WithLogger(rt.log.Component("session")))

	exp, err := w.Schedule()
	if err != nil {
		cancel(err)
		return nil, nil, err
	}
	token, err := rt.store.Load()
	if err != nil {
		w.Stop()
		cancel(err)
		return nil, nil, err
	}
	if token == "" || exp.IsZero() {
		w.Stop()
		cancel(errNoSession)
		return nil, nil, errNoSession
	}
	rt.log.Debug().Time("expires_at", exp).Msg("sesión vigente")

	stop := func() {
		w.Stop()
		cancel(nil)
	}
	return backend.WithToken(ctx, token), stop, nil
}

// reportUseCase arma el caso de uso de reportes con salida a disco.
func (rt *app) reportUseCase() (*usecase.ReportUseCase, error) {
	logo, err := assets.LoadLogo(rt.cfg.Report.LogoPath)
	if err != nil {
		return nil, err
	}
	opts := report.DefaultOptions(logo)
	opts.Offset = rt.cfg.Report.UTCOffset

	factory := func(o report.Output) report.DocumentRenderer {
		return pdf.NewRenderer(o, rt.cfg.App.Name)
	}
	return usecase.NewReportUseCase(usecase.NewCustomerUseCase(rt.client), factory, opts, nil, rt.log.Component("report")), nil
}

func (rt *app) files(outDir string) *output.Files {
	dir := outDir
	if dir == "" {
		dir = rt.cfg.Report.OutputDir
	}
	return &output.Files{
		Dir:    dir,
		Viewer: rt.cfg.Report.Viewer,
		Log:    rt.log.Component("output"),
	}
}

// expiredCause traduce la cancelación por expiración al error de sesión.
func expiredCause(ctx context.Context, err error) error {
	if err != nil && errors.Is(context.Cause(ctx), errNoSession) {
		return errNoSession
	}
	return err
}

func formatExpiry(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05")
}
