package handlers

import (
	"net/http"
	"time"

	"lana-api/internal/errors"
	"lana-api/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultTrendMonths     = 6
	maxMonthlyTrendMonths  = 24
	maxCategoryTrendMonths = 12
)

// AnalyticsHandler handles aggregate read endpoints
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetDashboard returns the composite dashboard for a period
// @Summary Get dashboard
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} dto.DashboardData "Dashboard"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid period"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/dashboard [get]
func (h *AnalyticsHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	now := time.Now()
	period, err := resolvePeriod(c, now)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	dashboard, err := h.analyticsService.Dashboard(userID, period, now)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dashboard)
}

// GetMonthlyAnalysis returns one month's totals
// @Summary Get monthly analysis
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {object} dto.MonthlyAnalysis "Monthly totals"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid period"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/monthly [get]
func (h *AnalyticsHandler) GetMonthlyAnalysis(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := resolvePeriod(c, time.Now())
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	analysis, err := h.analyticsService.MonthlyAnalysis(userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, analysis)
}

// GetCategoryBreakdown returns one month's expense split by category
// @Summary Get category breakdown
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param month query int false "Month (defaults to current)"
// @Param year query int false "Year (defaults to current)"
// @Success 200 {array} dto.CategoryAnalysis "Expense breakdown, largest first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Invalid period"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/categories [get]
func (h *AnalyticsHandler) GetCategoryBreakdown(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	period, err := resolvePeriod(c, time.Now())
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}

	breakdown, err := h.analyticsService.CategoryBreakdown(userID, period)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, breakdown)
}

// GetMonthlyTrend returns per-month totals over a lookback window
// @Summary Get monthly trend
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param months query int false "Window length in months (max 24)" default(6)
// @Success 200 {object} map[string]dto.TrendPoint "Sparse YYYY-MM keyed totals"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_007 - Malformed months parameter"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/monthly-trend [get]
func (h *AnalyticsHandler) GetMonthlyTrend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	months, err := getIntParam(c, "months", defaultTrendMonths)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}
	months = clampMonths(months, maxMonthlyTrendMonths)

	trend, err := h.analyticsService.MonthlyTrend(userID, months, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, trend)
}

// GetCategoryTrend returns per-month totals for one category
// @Summary Get category trend
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param category path string true "Category name"
// @Param months query int false "Window length in months (max 12)" default(6)
// @Success 200 {object} map[string]dto.TrendPoint "Sparse YYYY-MM keyed totals"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing category"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analytics/category-trend/{category} [get]
func (h *AnalyticsHandler) GetCategoryTrend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	category := c.Param("category")
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category is required"))
	}

	months, err := getIntParam(c, "months", defaultTrendMonths)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}
	months = clampMonths(months, maxCategoryTrendMonths)

	trend, err := h.analyticsService.CategoryTrend(userID, category, months, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, trend)
}

func clampMonths(months, max int) int {
	if months < 1 {
		return defaultTrendMonths
	}
	if months > max {
		return max
	}
	return months
}
