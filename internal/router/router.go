package router

import (
	"time"

	"github.com/demianRod/alexshop-tienda/internal/config"
	"github.com/demianRod/alexshop-tienda/internal/handler"
	"github.com/demianRod/alexshop-tienda/internal/infra"
	"github.com/demianRod/alexshop-tienda/internal/middleware"
	"github.com/demianRod/alexshop-tienda/internal/repository"
	"github.com/demianRod/alexshop-tienda/internal/service"
	"github.com/demianRod/alexshop-tienda/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, imageStore *infra.ImageStore, dispatcher *worker.Dispatcher) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	catalogSvc := service.NewCatalogService(productRepo, rdb, time.Duration(cfg.CatalogCacheTTLMins)*time.Minute)
	productSvc := service.NewProductService(productRepo, catalogSvc, dispatcher, cfg.SellerEmail)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	productsH := handler.NewProductsHandler(productSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc, cfg.SellerWhatsApp)
	uploadsH := handler.NewUploadsHandler(imageStore, cfg.MaxUploadMB)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.Static("/uploads", imageStore.BaseDir())

	// Storefront — no auth, read only
	r.GET("/v1/catalog", catalogH.List)
	r.GET("/v1/catalog/categories", catalogH.Categories)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes — admin panel
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW, middleware.RequireRole("admin"))
	{
		v1.GET("/auth/me", authH.Me)

		v1.GET("/products", productsH.List)
		v1.GET("/products/stats", productsH.Stats)
		v1.GET("/products/:id", productsH.GetByID)
		v1.POST("/products", productsH.Create)
		v1.PUT("/products/:id", productsH.Update)
		v1.PATCH("/products/:id/status", productsH.ChangeStatus)
		v1.DELETE("/products/:id", productsH.Delete)

		v1.POST("/uploads/images", uploadsH.UploadImage)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
