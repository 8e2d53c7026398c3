package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/locvowork/gestao_rh/internal/config"
	"github.com/locvowork/gestao_rh/internal/database"
	"github.com/locvowork/gestao_rh/internal/domain"
	"github.com/locvowork/gestao_rh/internal/handler"
	"github.com/locvowork/gestao_rh/internal/logger"
	"github.com/locvowork/gestao_rh/internal/observability"
	"github.com/locvowork/gestao_rh/internal/repository"
	"github.com/locvowork/gestao_rh/internal/repository/memory"
	"github.com/locvowork/gestao_rh/internal/service"
	"github.com/locvowork/gestao_rh/internal/service/serviceutils"
)

type App struct {
	Echo  *echo.Echo
	DB    *sql.DB
	Repos domain.Repositories
	Index domain.ColaboradorIndex

	shutdownTracer observability.ShutdownFunc
}

// Handlers groups every HTTP handler the router needs.
type Handlers struct {
	Colaborador *handler.ColaboradorHandler
	Ferias      *handler.FeriasHandler
	Documento   *handler.DocumentoHandler
	Cadastro    *handler.CadastroHandler
	Dashboard   *handler.DashboardHandler
	Relatorio   *handler.RelatorioHandler
}

func NewApp() *App {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = httpErrorHandler
	return &App{Echo: e}
}

// Initialize loads the configuration and wires every layer.
func (a *App) Initialize(ctx context.Context) error {
	if err := config.LoadEnvConfig(); err != nil {
		return fmt.Errorf("failed to load env config: %w", err)
	}
	cfg := config.DefaultEnvConfig

	logger.InitLogging(cfg.LOG_FILE_PATH, cfg.LOG_LEVEL)
	logger.InfoLog(ctx, "Environment variables loaded successfully")

	shutdown, err := observability.InitTracer(ctx, cfg.TRACING_ENABLED, cfg.TRACING_ENDPOINT)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	a.shutdownTracer = shutdown

	if err := a.initStore(ctx); err != nil {
		return err
	}
	a.initIndex(ctx)

	a.RegisterMiddlewares(cfg.CORS_ALLOWED_ORIGINS)
	a.RegisterRoutes(NewHandlers(a.Repos, a.Index))
	return nil
}

func (a *App) initStore(ctx context.Context) error {
	cfg := config.DefaultEnvConfig

	switch cfg.STORE_DRIVER {
	case config.StoreDriverMemory:
		logger.WarnLog(ctx, "Using in-memory store, data is lost on restart")
		a.Repos = memory.NewStore().Repositories()
		return nil
	case config.StoreDriverPostgres:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", cfg.STORE_DRIVER)
	}

	db, err := database.NewPostgresDB(ctx, DatabaseConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	a.DB = db

	if cfg.DB_AUTO_MIGRATE {
		if err := database.Migrate(ctx, db); err != nil {
			return err
		}
		logger.InfoLog(ctx, "Database schema is up to date")
	}

	a.Repos = repository.NewRepositories(db)
	return nil
}

// initIndex connects the search index. Search keeps working without it.
func (a *App) initIndex(ctx context.Context) {
	cfg := config.DefaultEnvConfig
	if cfg.ELASTIC_URL == "" {
		return
	}

	es, err := database.NewElasticSearchClient(cfg.ELASTIC_URL, cfg.ELASTIC_INDEX)
	if err != nil {
		logger.WarnLog(ctx, "Search index disabled: %v", err)
		return
	}
	if err := es.EnsureIndex(ctx); err != nil {
		logger.WarnLog(ctx, "Search index disabled: %v", err)
		return
	}
	a.Index = es
}

// DatabaseConfig maps the environment onto the PostgreSQL settings.
func DatabaseConfig() database.Config {
	cfg := config.DefaultEnvConfig
	return database.Config{
		Host:            cfg.DB_HOST,
		Port:            cfg.DB_PORT,
		User:            cfg.DB_USER,
		Password:        cfg.DB_PASSWORD,
		DBName:          cfg.DB_NAME,
		SSLMode:         cfg.DB_SSL_MODE,
		MaxOpenConns:    cfg.DB_MAX_OPEN_CONNS,
		MaxIdleConns:    cfg.DB_MAX_IDLE_CONNS,
		ConnMaxLifetime: cfg.DB_CONN_MAX_LIFETIME,
	}
}

// NewHandlers builds services and handlers over one store. index may be nil.
func NewHandlers(repos domain.Repositories, index domain.ColaboradorIndex) *Handlers {
	return &Handlers{
		Colaborador: handler.NewColaboradorHandler(service.NewColaboradorService(repos.Colaboradores, index)),
		Ferias:      handler.NewFeriasHandler(service.NewFeriasService(repos.Ferias, repos.Colaboradores)),
		Documento:   handler.NewDocumentoHandler(service.NewDocumentoService(repos.Documentos, repos.Colaboradores)),
		Cadastro:    handler.NewCadastroHandler(service.NewCadastroService(repos.Departamentos, repos.Cargos)),
		Dashboard:   handler.NewDashboardHandler(service.NewDashboardService(repos.Colaboradores, repos.Ferias, repos.Documentos)),
		Relatorio:   handler.NewRelatorioHandler(service.NewRelatorioService(repos.Colaboradores, repos.Ferias, repos.Documentos)),
	}
}

func (a *App) RegisterMiddlewares(allowedOrigins []string) {
	a.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	a.Echo.Use(contextLogger)
	a.Echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l := logger.FromContext(c.Request().Context())
			evt := l.Info()
			if v.Status >= http.StatusInternalServerError {
				evt = l.Error().Err(v.Error)
			}
			evt.
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	a.Echo.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.FromContext(c.Request().Context()).Error().
				Err(err).
				Bytes("stack", stack).
				Msg("panic recovered")
			return err
		},
	}))
	a.Echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	a.Echo.Use(observability.Middleware())
}

// contextLogger attaches a request-scoped logger to the request context.
func contextLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := logger.WithLogger(req.Context(), map[string]interface{}{
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			"method":     req.Method,
			"path":       req.URL.Path,
		})
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

func (a *App) RegisterRoutes(h *Handlers) {
	a.Echo.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := a.Echo.Group("/api")

	colaboradores := api.Group("/colaboradores")
	colaboradores.GET("", h.Colaborador.ListHandler)
	colaboradores.POST("", h.Colaborador.CreateHandler)
	colaboradores.GET("/busca", h.Colaborador.SearchHandler)
	colaboradores.GET("/:id", h.Colaborador.GetHandler)
	colaboradores.PUT("/:id", h.Colaborador.UpdateHandler)
	colaboradores.DELETE("/:id", h.Colaborador.DeleteHandler)

	ferias := api.Group("/ferias")
	ferias.GET("", h.Ferias.ListHandler)
	ferias.POST("", h.Ferias.CreateHandler)
	ferias.GET("/:id", h.Ferias.GetHandler)
	ferias.PUT("/:id/aprovar", h.Ferias.ApproveHandler)
	ferias.PUT("/:id/reprovar", h.Ferias.RejectHandler)
	ferias.DELETE("/:id", h.Ferias.DeleteHandler)

	documentos := api.Group("/documentos")
	documentos.GET("", h.Documento.ListHandler)
	documentos.POST("", h.Documento.CreateHandler)
	documentos.GET("/:id", h.Documento.GetHandler)
	documentos.PUT("/:id", h.Documento.UpdateHandler)
	documentos.POST("/:id/renovar", h.Documento.RenewHandler)
	documentos.DELETE("/:id", h.Documento.DeleteHandler)

	departamentos := api.Group("/departamentos")
	departamentos.GET("", h.Cadastro.ListDepartamentosHandler)
	departamentos.POST("", h.Cadastro.CreateDepartamentoHandler)
	departamentos.GET("/:id", h.Cadastro.GetDepartamentoHandler)
	departamentos.PUT("/:id", h.Cadastro.UpdateDepartamentoHandler)
	departamentos.DELETE("/:id", h.Cadastro.DeleteDepartamentoHandler)

	cargos := api.Group("/cargos")
	cargos.GET("", h.Cadastro.ListCargosHandler)
	cargos.POST("", h.Cadastro.CreateCargoHandler)
	cargos.GET("/:id", h.Cadastro.GetCargoHandler)
	cargos.PUT("/:id", h.Cadastro.UpdateCargoHandler)
	cargos.DELETE("/:id", h.Cadastro.DeleteCargoHandler)

	api.GET("/dashboard", h.Dashboard.SummaryHandler)

	relatorios := api.Group("/relatorios")
	relatorios.GET("/colaboradores", h.Relatorio.ColaboradoresHandler)
	relatorios.GET("/ferias", h.Relatorio.FeriasHandler)
	relatorios.GET("/documentos", h.Relatorio.DocumentosHandler)
}

// httpErrorHandler keeps the {error} body for errors raised by Echo itself,
// such as unknown routes or panics caught by Recover.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := serviceutils.MsgErroInterno

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			message = "Rota não encontrada"
		case http.StatusMethodNotAllowed:
			message = "Método não permitido"
		default:
			if status < http.StatusInternalServerError {
				message = fmt.Sprint(he.Message)
			}
		}
	}

	if status >= http.StatusInternalServerError {
		logger.ErrorLog(c.Request().Context(), err, "unhandled error")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, serviceutils.ErrorResponse{Error: message})
	}
	if err != nil {
		logger.ErrorLog(c.Request().Context(), err, "failed to write error response")
	}
}

func (a *App) Run() error {
	addr := ":" + config.DefaultEnvConfig.APP_PORT
	logger.InfoLog(context.Background(), "Listening on %s", addr)
	if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests, then flushes traces and closes the database.
func (a *App) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := a.Echo.Shutdown(ctx)
	if a.shutdownTracer != nil {
		err = errors.Join(err, a.shutdownTracer(ctx))
	}
	if a.DB != nil {
		err = errors.Join(err, a.DB.Close())
	}
	return err
}
