package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/catalog"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// HandleListPacks handles GET /v1/packs
func HandleListPacks(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"packs": cat.Packs()})
	}
}

// HandleGetPack handles GET /v1/packs/:id
func HandleGetPack(cat *catalog.Catalog, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pack, err := cat.PackByID(c.Param("id"))
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "pack not found"})
				return
			}
			logger.Error("Failed to look up pack", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, pack)
	}
}
