package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
	"github.com/zapfwerk/deckelkasse/internal/middleware"
)

// receiptHandler handles HTTP requests for the receipt pipeline.
type receiptHandler struct {
	receiptService portssvc.ReceiptSvcFacade
}

func newReceiptHandler(rs portssvc.ReceiptSvcFacade) *receiptHandler {
	return &receiptHandler{receiptService: rs}
}

// registerReceiptRoutes registers the receipt pipeline routes.
func registerReceiptRoutes(rg *gin.RouterGroup, receiptService portssvc.ReceiptSvcFacade) {
	h := newReceiptHandler(receiptService)

	receipts := rg.Group("/receipts")
	{
		receipts.POST("", h.generateReceipt)
		receipts.GET("", h.listReceipts)
		receipts.GET("/:receiptNumber", h.getReceipt)
		receipts.POST("/:receiptNumber/verify", h.verifyReceipt)
	}
	rg.POST("/tabs/:tabID/receipt", h.settleTab)
}

// generateReceipt runs the pipeline over explicitly supplied transactions
// and returns the issued, signed receipt.
func (h *receiptHandler) generateReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for GenerateReceipt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	issuerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Issuer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	signed, err := h.receiptService.GenerateReceipt(c.Request.Context(), req, issuerUserID)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}

	logger.Info("Receipt issued", slog.String("receipt_number", signed.ReceiptNumber))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(signed))
}

// settleTab runs the pipeline over a stored tab's ledger and closes the tab.
func (h *receiptHandler) settleTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID := c.Param("tabID")

	var req dto.SettleTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SettleTab", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	issuerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Issuer user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	signed, err := h.receiptService.SettleTab(c.Request.Context(), tabID, req, issuerUserID)
	if err != nil {
		h.respondPipelineError(c, err)
		return
	}

	logger.Info("Tab settled", slog.String("tab_id", tabID), slog.String("receipt_number", signed.ReceiptNumber))
	c.JSON(http.StatusCreated, dto.ToReceiptResponse(signed))
}

func (h *receiptHandler) getReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptNumber := c.Param("receiptNumber")

	signed, err := h.receiptService.GetReceiptByNumber(c.Request.Context(), receiptNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
			return
		}
		logger.Error("Failed to get receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve receipt"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReceiptResponse(signed))
}

// listReceipts returns the most recently archived receipts, newest first.
func (h *receiptHandler) listReceipts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	receipts, err := h.receiptService.ListReceipts(c.Request.Context(), limit)
	if err != nil {
		logger.Error("Failed to list receipts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list receipts"})
		return
	}

	responses := make([]dto.ReceiptResponse, 0, len(receipts))
	for i := range receipts {
		responses = append(responses, dto.ToReceiptResponse(&receipts[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// verifyReceipt recomputes the hash over a stored receipt's current fields
// and revalidates every invariant, reporting tampering without blocking.
func (h *receiptHandler) verifyReceipt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	receiptNumber := c.Param("receiptNumber")

	result, err := h.receiptService.VerifyReceipt(c.Request.Context(), receiptNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
			return
		}
		logger.Error("Failed to verify receipt", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify receipt"})
		return
	}

	if !result.HashValid {
		logger.Warn("Receipt hash mismatch detected", slog.String("receipt_number", receiptNumber))
	}
	c.JSON(http.StatusOK, result)
}

// respondPipelineError maps pipeline failures onto HTTP statuses.
func (h *receiptHandler) respondPipelineError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var vf *apperrors.ValidationFailure
	switch {
	case errors.Is(err, apperrors.ErrNoSales):
		logger.Warn("Receipt generation rejected: no sales")
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No qualifying sale transactions; a receipt without items cannot be issued"})
	case errors.As(err, &vf):
		logger.Error("Receipt failed validation", slog.Any("findings", vf.Findings))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": vf.Error(), "findings": vf.Findings})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Tab not found"})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Receipt generation rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.Error("Receipt generation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate receipt"})
	}
}
