package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	"payment-analytics-service/internal/model"
	"payment-analytics-service/internal/service"
)

type AnalyticsController interface {
	GetPaymentAnalytics(c *fiber.Ctx) error
	GetConversionMetrics(c *fiber.Ctx) error
	GetPaymentInsights(c *fiber.Ctx) error
}

// analyticsController exposes HTTP handlers for the analytics endpoints.
type analyticsController struct {
	analyticsService service.AnalyticsService
	logger           *zap.Logger
}

// NewAnalyticsController builds an AnalyticsController.
func NewAnalyticsController(svc service.AnalyticsService, logger *zap.Logger) AnalyticsController {
	return &analyticsController{analyticsService: svc, logger: logger}
}

// GetPaymentAnalytics returns aggregate payment metrics for a vendor and
// date range.
func (h *analyticsController) GetPaymentAnalytics(c *fiber.Ctx) error {
	filter, err := buildRecordFilter(c)
	if err != nil {
		return err
	}

	resp, svcErr := h.analyticsService.GetPaymentAnalytics(c.Context(), filter)
	if svcErr != nil {
		return h.mapServiceError(svcErr, "payment analytics")
	}
	return c.JSON(resp)
}

// GetConversionMetrics returns per-campaign conversion metrics sorted by
// ROAS.
func (h *analyticsController) GetConversionMetrics(c *fiber.Ctx) error {
	filter, err := buildRecordFilter(c)
	if err != nil {
		return err
	}

	resp, svcErr := h.analyticsService.GetConversionMetrics(c.Context(), filter)
	if svcErr != nil {
		return h.mapServiceError(svcErr, "conversion metrics")
	}
	return c.JSON(resp)
}

// GetPaymentInsights returns trends, recommendations, and risk factors.
func (h *analyticsController) GetPaymentInsights(c *fiber.Ctx) error {
	filter, err := buildRecordFilter(c)
	if err != nil {
		return err
	}

	resp, svcErr := h.analyticsService.GetPaymentInsights(c.Context(), filter)
	if svcErr != nil {
		return h.mapServiceError(svcErr, "payment insights")
	}
	return c.JSON(resp)
}

func (h *analyticsController) mapServiceError(err error, op string) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return fiber.NewError(fiber.StatusBadRequest, validationErr.Error())
	}
	h.logger.Error("analytics computation failed", zap.String("op", op), zap.Error(err))
	return fiber.NewError(fiber.StatusInternalServerError, "failed to compute "+op)
}

func buildRecordFilter(c *fiber.Ctx) (model.RecordFilter, error) {
	var filter model.RecordFilter

	if raw := utils.Trim(c.Query("vendor_id"), ' '); raw != "" {
		filter.VendorID = &raw
	}

	if raw := utils.Trim(c.Query("from"), ' '); raw != "" {
		sec, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return model.RecordFilter{}, fiber.NewError(fiber.StatusBadRequest, "invalid from timestamp")
		}
		filter.From = time.Unix(sec, 0).UTC()
	}

	if raw := utils.Trim(c.Query("to"), ' '); raw != "" {
		sec, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return model.RecordFilter{}, fiber.NewError(fiber.StatusBadRequest, "invalid to timestamp")
		}
		filter.To = time.Unix(sec, 0).UTC()
	}

	return filter, nil
}
