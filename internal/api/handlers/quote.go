package handlers

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vetipro/quoteapi/internal/api/middleware"
	"github.com/vetipro/quoteapi/internal/domain"
	"github.com/vetipro/quoteapi/internal/service"
	"github.com/vetipro/quoteapi/pkg/errors"
)

// QuoteService is the wizard surface the handlers depend on.
type QuoteService interface {
	Enter(sessionID string, design *domain.Design) *domain.QuoteDraft
	Draft(sessionID string) *domain.QuoteDraft
	AdvanceContact(sessionID string, input service.ContactInput) (*domain.QuoteDraft, error)
	AdvanceProduct(sessionID string, input service.ProductInput) (*domain.QuoteDraft, error)
	Back(sessionID string) *domain.QuoteDraft
	AddAttachments(sessionID string, uploads []service.AttachmentUpload) ([]domain.Attachment, []service.RejectedFile)
	RemoveAttachment(sessionID string, index int) error
	Submit(ctx context.Context, sessionID string, input service.SubmitInput) (*domain.QuoteDraft, error)
	Reset(sessionID string)
}

func draftResponse(d *domain.QuoteDraft) gin.H {
	return gin.H{
		"step":           d.Step,
		"designs":        d.Designs,
		"design_count":   len(d.Designs),
		"total_quantity": d.TotalQuantity(),
		"submit_enabled": d.SubmitEnabled(),
		"contact":        d.Contact,
		"product":        d.Product,
		"attachments":    d.Attachments,
	}
}

// HandleQuoteEnter handles POST /v1/quote/enter. The body is optional: it
// carries a design only when an upstream flow handed one off.
func HandleQuoteEnter(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.EnterInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "validation failed",
					"details": err.Error(),
				})
				return
			}
		}

		if req.Design != nil && req.Design.DesignNumber == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "design number is required"})
			return
		}

		draft := svc.Enter(middleware.GetSessionID(c), req.Design)
		c.JSON(http.StatusOK, draftResponse(draft))
	}
}

// HandleGetQuote handles GET /v1/quote
func HandleGetQuote(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft := svc.Draft(middleware.GetSessionID(c))
		c.JSON(http.StatusOK, draftResponse(draft))
	}
}

// HandleContactStep handles POST /v1/quote/steps/contact. Binding validates
// only the contact field subset; failures leave the step unchanged.
func HandleContactStep(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ContactInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		draft, err := svc.AdvanceContact(middleware.GetSessionID(c), req)
		if err != nil {
			if _, ok := err.(*errors.ErrInvalidStateTransition); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to advance contact step", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, draftResponse(draft))
	}
}

// HandleProductStep handles POST /v1/quote/steps/product
func HandleProductStep(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ProductInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		draft, err := svc.AdvanceProduct(middleware.GetSessionID(c), req)
		if err != nil {
			if _, ok := err.(*errors.ErrInvalidStateTransition); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to advance product step", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.JSON(http.StatusOK, draftResponse(draft))
	}
}

// HandleQuoteBack handles POST /v1/quote/back
func HandleQuoteBack(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		draft := svc.Back(middleware.GetSessionID(c))
		c.JSON(http.StatusOK, draftResponse(draft))
	}
}

// HandleAddAttachments handles POST /v1/quote/attachments. Files failing the
// size or type check are rejected one by one; valid files from the same
// batch are still accepted.
func HandleAddAttachments(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "expected multipart form"})
			return
		}

		var uploads []service.AttachmentUpload
		for _, headers := range form.File {
			for _, header := range headers {
				file, err := header.Open()
				if err != nil {
					logger.Warn("Failed to open uploaded file", zap.String("filename", header.Filename), zap.Error(err))
					continue
				}
				data, err := io.ReadAll(file)
				file.Close()
				if err != nil {
					logger.Warn("Failed to read uploaded file", zap.String("filename", header.Filename), zap.Error(err))
					continue
				}

				uploads = append(uploads, service.AttachmentUpload{
					Filename:    header.Filename,
					ContentType: header.Header.Get("Content-Type"),
					Size:        header.Size,
					Data:        data,
				})
			}
		}

		accepted, rejected := svc.AddAttachments(middleware.GetSessionID(c), uploads)

		c.JSON(http.StatusOK, gin.H{
			"accepted": accepted,
			"rejected": rejected,
		})
	}
}

// HandleRemoveAttachment handles DELETE /v1/quote/attachments/:index
func HandleRemoveAttachment(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid attachment index"})
			return
		}

		if err := svc.RemoveAttachment(middleware.GetSessionID(c), index); err != nil {
			if _, ok := err.(*errors.ErrValidation); ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to remove attachment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// HandleQuoteSubmit handles POST /v1/quote/submit. A delivery failure leaves
// the draft untouched at the review step; resubmission is a fresh user
// action, never automatic.
func HandleQuoteSubmit(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.SubmitInput
		if c.Request.ContentLength > 0 {
			if err := c.ShouldBindJSON(&req); err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{
					"error":   "validation failed",
					"details": err.Error(),
				})
				return
			}
		}

		draft, err := svc.Submit(c.Request.Context(), middleware.GetSessionID(c), req)
		if err != nil {
			switch err.(type) {
			case *errors.ErrInvalidStateTransition, *errors.ErrValidation:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": "submission failed, please try again"})
			}
			return
		}

		c.JSON(http.StatusOK, draftResponse(draft))
	}
}

// HandleQuoteReset handles POST /v1/quote/reset, the return-to-home action.
func HandleQuoteReset(svc QuoteService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Reset(middleware.GetSessionID(c))
		c.Status(http.StatusNoContent)
	}
}
