package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/api/handlers"
	"github.com/vetipro/quoteapi/internal/api/middleware"
	"github.com/vetipro/quoteapi/internal/catalog"
	"github.com/vetipro/quoteapi/internal/config"
	"github.com/vetipro/quoteapi/internal/repository"
)

// NewRouter creates and configures the Gin router
func NewRouter(
	cfg *config.Config,
	cat *catalog.Catalog,
	basketSvc handlers.BasketService,
	quoteSvc handlers.QuoteService,
	repos *repository.Repositories,
	logger *zap.Logger,
) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		// Catalog routes (public, no session needed)
		v1.GET("/packs", handlers.HandleListPacks(cat, logger))
		v1.GET("/packs/:id", handlers.HandleGetPack(cat, logger))

		// Session-scoped routes (basket and quote wizard)
		sessionRoutes := v1.Group("")
		sessionRoutes.Use(middleware.Session())
		{
			sessionRoutes.POST("/basket/drop", handlers.HandleBasketDrop(basketSvc, logger))
			sessionRoutes.GET("/basket", handlers.HandleGetBasket(basketSvc, logger))
			sessionRoutes.PUT("/basket/note", handlers.HandleBasketNote(basketSvc, logger))
			sessionRoutes.DELETE("/basket", handlers.HandleClearBasket(basketSvc, logger))
			sessionRoutes.POST("/basket/assemble", handlers.HandleBasketAssemble(basketSvc, logger))

			sessionRoutes.POST("/quote/enter", handlers.HandleQuoteEnter(quoteSvc, logger))
			sessionRoutes.GET("/quote", handlers.HandleGetQuote(quoteSvc, logger))
			sessionRoutes.POST("/quote/steps/contact", handlers.HandleContactStep(quoteSvc, logger))
			sessionRoutes.POST("/quote/steps/product", handlers.HandleProductStep(quoteSvc, logger))
			sessionRoutes.POST("/quote/back", handlers.HandleQuoteBack(quoteSvc, logger))
			sessionRoutes.POST("/quote/attachments", handlers.HandleAddAttachments(quoteSvc, logger))
			sessionRoutes.DELETE("/quote/attachments/:index", handlers.HandleRemoveAttachment(quoteSvc, logger))
			sessionRoutes.POST("/quote/submit", handlers.HandleQuoteSubmit(quoteSvc, logger))
			sessionRoutes.POST("/quote/reset", handlers.HandleQuoteReset(quoteSvc, logger))
		}

		// Admin routes (API key auth)
		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AuthMiddleware(repos, logger))
		{
			adminRoutes.GET("/quotes", handlers.HandleListQuotes(repos, logger))
			adminRoutes.GET("/quotes/:id", handlers.HandleGetQuoteRequest(repos, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
