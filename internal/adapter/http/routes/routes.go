package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "mecanica_oficina/docs"
	"mecanica_oficina/internal/adapter/http/handlers"
	"mecanica_oficina/internal/adapter/persistence/repository"
	"mecanica_oficina/internal/clock"
	"mecanica_oficina/internal/domain/entities"
	"mecanica_oficina/internal/infrastructure/payments"
	"mecanica_oficina/internal/usecase"
	"mecanica_oficina/internal/usecase/interfaces"
	"mecanica_oficina/pkg/config"
	"mecanica_oficina/pkg/logger"
	"mecanica_oficina/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies is everything the router needs. Tests build it directly.
type Dependencies struct {
	Config   *config.Config
	Session  usecase.ISessionManager
	Invoices usecase.IInvoiceUseCase
	Registry *prometheus.Registry
	Logger   *logger.Logger
}

// Run wires the application, starts the server and blocks until a shutdown
// signal arrives.
func Run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := repository.ValidateFieldMaps(); err != nil {
		return err
	}

	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	clk := clock.NewSystem()
	session := newSessionManager(cfg, clk, log, metrics.NewSyncMetrics(reg))
	bootstrapSession(ctx, session, cfg, log)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments, clk, log)
	if err != nil {
		log.Warn(ctx, "[billing][routes] Mercado Pago gateway not configured: "+err.Error())
	} else {
		gateway = mpGateway
	}
	invoices := usecase.NewInvoiceUseCase(gateway, cfg.Payments, cfg.Shop.HourlyRate, clk, log)

	router := NewRouter(Dependencies{
		Config:   cfg,
		Session:  session,
		Invoices: invoices,
		Registry: reg,
		Logger:   log,
	})

	server := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "[app][routes] listening on :"+cfg.App.Port)
		srvErr <- server.ListenAndServe()
	}()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info(context.Background(), "[app][routes] shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(shutdownCtx, "[app][routes] server shutdown failed", err)
	}
	if err := session.Close(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "[sync][routes] session close failed", err)
		return err
	}
	log.Info(shutdownCtx, "[app][routes] server stopped")
	return nil
}

// NewRouter builds the gin engine with every route group.
func NewRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, d.Logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if d.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	shop := entities.AppConfig{
		CompanyName:  d.Config.Shop.CompanyName,
		LogoURL:      d.Config.Shop.LogoURL,
		PrimaryColor: d.Config.Shop.PrimaryColor,
		HourlyRate:   d.Config.Shop.HourlyRate,
	}
	exportHandler := handlers.NewExportHandler(shop)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, handlers.NewSessionHandler(d.Session, d.Logger))
	v1.GET("/config", exportHandler.GetConfig)

	// Everything below needs a running session.
	live := v1.Group("", handlers.RequireSession(d.Session))
	live.GET("/export", exportHandler.Export)
	addServiceRoutes(live.Group("", handlers.WithRole(d.Logger, entities.RoleServiceManager)), handlers.NewServiceManagerHandler(d.Logger))
	addTechnicianRoutes(live.Group("", handlers.WithRole(d.Logger, entities.RoleTechnician)), handlers.NewTechnicianHandler(d.Logger))
	addPartsRoutes(live.Group("", handlers.WithRole(d.Logger, entities.RolePartsManager)), handlers.NewPartsHandler())
	addInventoryRoutes(live.Group("", handlers.WithRole(d.Logger, entities.RoleInventoryManager)), handlers.NewInventoryHandler(d.Logger))
	addBillingRoutes(live.Group("", handlers.WithRole(d.Logger, entities.RoleBilling)), handlers.NewBillingHandler(d.Invoices, d.Config.Payments, d.Logger))

	return router
}

func setMiddlewares(router *gin.Engine, log *logger.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error(c.Request.Context(), "[app][routes] recovered from panic", fmt.Errorf("panic: %v", recovered))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		ctx := log.WithFields(c.Request.Context(), map[string]any{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
		log.Debug(ctx, "[app][http] request")
	}
}
