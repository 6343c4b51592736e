package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zapfwerk/deckelkasse/internal/apperrors"
	portssvc "github.com/zapfwerk/deckelkasse/internal/core/ports/services"
	"github.com/zapfwerk/deckelkasse/internal/dto"
	"github.com/zapfwerk/deckelkasse/internal/middleware"
)

// deckelHandler handles HTTP requests for guest tabs.
type deckelHandler struct {
	deckelService portssvc.DeckelSvcFacade
}

func newDeckelHandler(ds portssvc.DeckelSvcFacade) *deckelHandler {
	return &deckelHandler{deckelService: ds}
}

// registerDeckelRoutes registers routes related to guest tabs.
func registerDeckelRoutes(rg *gin.RouterGroup, deckelService portssvc.DeckelSvcFacade) {
	h := newDeckelHandler(deckelService)

	tabs := rg.Group("/tabs")
	{
		tabs.POST("", h.openTab)
		tabs.GET("", h.listOpenTabs)
		tabs.GET("/:tabID", h.getTab)
		tabs.POST("/:tabID/transactions", h.appendTransaction)
		tabs.GET("/:tabID/transactions", h.listTransactions)
	}
}

func (h *deckelHandler) openTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.OpenTabRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for OpenTab", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	tab, err := h.deckelService.OpenTab(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to open tab", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open tab"})
		return
	}

	logger.Info("Tab opened", slog.String("tab_id", tab.TabID), slog.String("guest", tab.GuestName))
	c.JSON(http.StatusCreated, dto.ToTabResponse(tab))
}

func (h *deckelHandler) listOpenTabs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabs, err := h.deckelService.ListOpenTabs(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list open tabs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tabs"})
		return
	}

	responses := make([]dto.TabResponse, len(tabs))
	for i := range tabs {
		responses[i] = dto.ToTabResponse(&tabs[i])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *deckelHandler) getTab(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tab, err := h.deckelService.GetTab(c.Request.Context(), c.Param("tabID"))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tab not found"})
			return
		}
		logger.Error("Failed to get tab", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tab"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTabResponse(tab))
}

func (h *deckelHandler) appendTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	tabID := c.Param("tabID")

	var req dto.LedgerTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AppendTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.deckelService.AppendTransaction(c.Request.Context(), tabID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Tab not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to append transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to append transaction"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

func (h *deckelHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	txns, err := h.deckelService.ListTransactions(c.Request.Context(), c.Param("tabID"))
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponses(txns))
}
