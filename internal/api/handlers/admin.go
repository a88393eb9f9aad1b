package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/api/middleware"
	"github.com/vetipro/quoteapi/internal/repository"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// HandleListQuotes handles GET /v1/admin/quotes
func HandleListQuotes(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetClientFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		limitStr := c.DefaultQuery("limit", "50")
		offsetStr := c.DefaultQuery("offset", "0")

		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			limit = 50
		}

		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			offset = 0
		}

		quotes, err := repos.QuoteRequest.List(c.Request.Context(), limit, offset)
		if err != nil {
			logger.Error("Failed to list quote requests", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		quoteResponses := make([]gin.H, len(quotes))
		for i, quote := range quotes {
			quoteResponses[i] = gin.H{
				"id":             quote.ID.String(),
				"customer_name":  quote.CustomerName,
				"email":          quote.Email,
				"product_name":   quote.ProductName,
				"design_count":   quote.DesignCount,
				"total_quantity": quote.TotalQuantity,
				"created_at":     quote.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"quotes": quoteResponses,
			"limit":  limit,
			"offset": offset,
		})
	}
}

// HandleGetQuoteRequest handles GET /v1/admin/quotes/:id
func HandleGetQuoteRequest(repos *repository.Repositories, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok := middleware.GetClientFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		quoteIDStr := c.Param("id")
		quoteID, err := uuid.Parse(quoteIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quote ID"})
			return
		}

		quote, err := repos.QuoteRequest.GetByID(c.Request.Context(), quoteID)
		if err != nil {
			if _, ok := err.(*errors.ErrNotFound); ok {
				c.JSON(http.StatusNotFound, gin.H{"error": "quote not found"})
				return
			}
			logger.Error("Failed to get quote request", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		designs, err := repos.QuoteDesign.GetByQuoteID(c.Request.Context(), quoteID)
		if err != nil {
			logger.Error("Failed to get quote designs", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		designResponses := make([]gin.H, len(designs))
		for i, design := range designs {
			designResponses[i] = gin.H{
				"design_number": design.DesignNumber,
				"product_name":  design.ProductName,
				"quantity":      design.Quantity,
				"selected_size": design.SelectedSize,
				"item_names":    design.ItemNames,
			}
		}

		response := gin.H{
			"id":               quote.ID.String(),
			"customer_name":    quote.CustomerName,
			"email":            quote.Email,
			"phone":            quote.Phone,
			"product_name":     quote.ProductName,
			"quantity":         quote.Quantity,
			"size":             quote.Size,
			"description":      quote.Description,
			"design_count":     quote.DesignCount,
			"total_quantity":   quote.TotalQuantity,
			"attachment_count": quote.AttachmentCount,
			"designs":          designResponses,
			"created_at":       quote.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}

		if quote.Company != nil {
			response["company"] = *quote.Company
		}
		if quote.Deadline != nil {
			response["deadline"] = *quote.Deadline
		}
		if quote.AdditionalNotes != nil {
			response["additional_notes"] = *quote.AdditionalNotes
		}

		c.JSON(http.StatusOK, response)
	}
}
