package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogapp "github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/application/catalog"
	financeapp "github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/application/finance"
	procurementapp "github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/application/procurement"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/infrastructure/config"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/infrastructure/logger"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/infrastructure/persistence"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/interfaces/http/handler"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/interfaces/http/middleware"
	"github.com/Hrishikeshchauhan09/hrishi-main-pro/internal/interfaces/http/router"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting purchase order service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, cfg.Log.Level)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	vendorRepo := persistence.NewGormVendorRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	orderRepo := persistence.NewGormPurchaseOrderRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)

	// Application services
	vendorService := catalogapp.NewVendorService(vendorRepo)
	productService := catalogapp.NewProductService(productRepo)
	orderService := procurementapp.NewPurchaseOrderService(orderRepo, vendorRepo, productRepo)
	paymentService := financeapp.NewPaymentService(paymentRepo, orderRepo)

	// HTTP handlers
	systemHandler := handler.NewSystemHandler(db, version)
	vendorHandler := handler.NewVendorHandler(vendorService)
	productHandler := handler.NewProductHandler(productService)
	orderHandler := handler.NewPurchaseOrderHandler(orderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware stack, in order: request ID, panic recovery, request
	// logging, CORS, body size limit
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	// Health check endpoint outside API versioning
	engine.GET("/health", systemHandler.Health)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Catalog domain (vendors, products)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/vendors", vendorHandler.Create)
	catalogRoutes.GET("/vendors", vendorHandler.List)
	catalogRoutes.GET("/vendors/:id", vendorHandler.Get)
	catalogRoutes.PUT("/vendors/:id", vendorHandler.Update)
	catalogRoutes.DELETE("/vendors/:id", vendorHandler.Delete)
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.Get)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.PATCH("/products/:id/stock", productHandler.AdjustStock)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	// Procurement domain (purchase orders)
	procurementRoutes := router.NewDomainGroup("procurement", "/procurement")
	procurementRoutes.POST("/purchase-orders", orderHandler.Create)
	procurementRoutes.GET("/purchase-orders", orderHandler.List)
	procurementRoutes.GET("/purchase-orders/summary", orderHandler.StatusSummary)
	procurementRoutes.GET("/purchase-orders/number/:orderNumber", orderHandler.GetByNumber)
	procurementRoutes.GET("/purchase-orders/:id", orderHandler.Get)
	procurementRoutes.POST("/purchase-orders/:id/approve", orderHandler.Approve)
	procurementRoutes.POST("/purchase-orders/:id/cancel", orderHandler.Cancel)
	procurementRoutes.POST("/purchase-orders/:id/receive", orderHandler.Receive)
	procurementRoutes.POST("/purchase-orders/:id/receive-partial", orderHandler.ReceivePartial)

	// Finance domain (payments)
	financeRoutes := router.NewDomainGroup("finance", "/finance")
	financeRoutes.POST("/payments", paymentHandler.Create)
	financeRoutes.GET("/payments", paymentHandler.List)
	financeRoutes.GET("/payments/:id", paymentHandler.Get)
	financeRoutes.PATCH("/payments/:id/status", paymentHandler.UpdateStatus)
	financeRoutes.GET("/payments/order/:orderId", paymentHandler.ListByOrder)
	financeRoutes.GET("/payments/order/:orderId/summary", paymentHandler.OrderSummary)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.Info)
	systemRoutes.GET("/ping", systemHandler.Ping)
	systemRoutes.GET("/health", systemHandler.Health)

	r.Register(catalogRoutes).
		Register(procurementRoutes).
		Register(financeRoutes).
		Register(systemRoutes)

	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
