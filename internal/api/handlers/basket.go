package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/api/middleware"
	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/internal/service"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// dropPayloadLimit bounds the serialized drag payload. Item references are
// small; anything bigger is not a legitimate drop.
const dropPayloadLimit = 64 * 1024

// BasketService is the basket surface the handlers depend on.
type BasketService interface {
	Drop(sessionID string, payload []byte) (*domain.Basket, error)
	Basket(sessionID string) *domain.Basket
	SetNote(sessionID, note string) *domain.Basket
	Clear(sessionID string)
	Assemble(sessionID string, input service.AssembleInput) (*domain.Design, error)
}

func basketResponse(basket *domain.Basket) gin.H {
	return gin.H{
		"items":      basket.Items,
		"note":       basket.Note,
		"item_count": len(basket.Items),
		"total":      basket.TotalPrice(),
	}
}

// HandleBasketDrop handles POST /v1/basket/drop. The body is the raw
// serialized payload carried by the drag, not a structured request.
func HandleBasketDrop(svc BasketService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := middleware.GetSessionID(c)

		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, dropPayloadLimit))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read payload"})
			return
		}

		basket, err := svc.Drop(sessionID, payload)
		if err != nil {
			if _, ok := err.(*errors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to handle drop", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, basketResponse(basket))
	}
}

// HandleGetBasket handles GET /v1/basket
func HandleGetBasket(svc BasketService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		basket := svc.Basket(middleware.GetSessionID(c))
		c.JSON(http.StatusOK, basketResponse(basket))
	}
}

// HandleBasketNote handles PUT /v1/basket/note
func HandleBasketNote(svc BasketService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.NoteInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		basket := svc.SetNote(middleware.GetSessionID(c), req.Note)
		c.JSON(http.StatusOK, basketResponse(basket))
	}
}

// HandleClearBasket handles DELETE /v1/basket
func HandleClearBasket(svc BasketService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Clear(middleware.GetSessionID(c))
		c.Status(http.StatusNoContent)
	}
}

// HandleBasketAssemble handles POST /v1/basket/assemble. The returned design
// is what the client hands to the quote entry flow.
func HandleBasketAssemble(svc BasketService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.AssembleInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		design, err := svc.Assemble(middleware.GetSessionID(c), req)
		if err != nil {
			if _, ok := err.(*errors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to assemble pack", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"design": design})
	}
}
