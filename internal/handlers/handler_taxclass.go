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

// taxClassHandler handles HTTP requests for the product tax classification.
type taxClassHandler struct {
	taxClassService portssvc.TaxClassSvcFacade
}

func newTaxClassHandler(ts portssvc.TaxClassSvcFacade) *taxClassHandler {
	return &taxClassHandler{taxClassService: ts}
}

// registerTaxClassRoutes registers the tax classification routes.
func registerTaxClassRoutes(rg *gin.RouterGroup, taxClassService portssvc.TaxClassSvcFacade) {
	h := newTaxClassHandler(taxClassService)

	taxClasses := rg.Group("/tax-classes")
	{
		taxClasses.GET("", h.getTaxRates)
		taxClasses.PUT("", h.setTaxRate)
	}
}

func (h *taxClassHandler) getTaxRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rates, err := h.taxClassService.GetTaxRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to get tax rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve tax classification"})
		return
	}
	c.JSON(http.StatusOK, dto.TaxClassesResponse{Rates: rates})
}

func (h *taxClassHandler) setTaxRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetTaxRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.taxClassService.SetTaxRate(c.Request.Context(), req, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to set tax rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tax classification"})
		return
	}

	logger.Info("Tax rate updated", slog.String("description", req.Description), slog.Int("rate", req.Rate))
	c.JSON(http.StatusNoContent, nil)
}
