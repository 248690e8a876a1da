package router

import (
	"time"

	"fabricpos/internal/config"
	"fabricpos/internal/handler"
	"fabricpos/internal/middleware"
	"fabricpos/internal/repository"
	"fabricpos/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	inventoryRepo := repository.NewInventoryRepository(db)
	salesRepo := repository.NewSalesRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	stockSvc := service.NewStockService(inventoryRepo, salesRepo)
	billingSvc := service.NewBillingService(inventoryRepo, salesRepo)
	reportSvc := service.NewReportService(inventoryRepo, salesRepo)

	// ── Handlers ─────────────────────────────────────────────────────────────
	stockH := handler.NewStockHandler(stockSvc)
	billingH := handler.NewBillingHandler(billingSvc)
	reportsH := handler.NewReportsHandler(reportSvc)
	staticH := handler.NewStaticHandler(cfg.StaticDir)

	// ── Routes ───────────────────────────────────────────────────────────────

	r.GET("/api", handler.Liveness())
	r.GET("/health", handler.Health(db))

	// Stock management
	r.POST("/add-stock", stockH.AddStock)
	r.PUT("/update-stock/:id", stockH.UpdateStock)
	r.DELETE("/delete-stock/:id", stockH.DeleteStock)
	r.GET("/get-inventory", stockH.GetInventory)
	r.GET("/get-inventory-simple", stockH.GetInventorySimple)

	// Billing
	r.POST("/create-bill", billingH.CreateBill)

	// Reports
	r.GET("/get-profit-loss", reportsH.GetProfitLoss)

	// Static frontend
	r.GET("/", staticH.Index)
	r.GET("/index.html", staticH.Index)
	r.GET("/admin", staticH.Admin)
	r.GET("/config.js", staticH.ConfigJS)

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
