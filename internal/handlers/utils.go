package handlers

import (
	"fmt"
	"strconv"
	"time"

	"lana-api/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// Helper function to extract user ID from context
// Returns ErrUnauthorized if user ID is missing or invalid
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return uuid.UUID{}, ErrUnauthorized
	}

	userID, ok := userIDValue.(uuid.UUID)
	if !ok {
		return uuid.UUID{}, ErrUnauthorized
	}

	return userID, nil
}

// resolvePeriod builds the evaluation period from optional month and year
// query parameters, defaulting each missing part to the current month
func resolvePeriod(c echo.Context, now time.Time) (models.Period, error) {
	period := models.PeriodOf(now)

	month, err := getIntParam(c, "month", 0)
	if err != nil {
		return models.Period{}, err
	}
	if month != 0 {
		period.Month = month
	}

	year, err := getIntParam(c, "year", 0)
	if err != nil {
		return models.Period{}, err
	}
	if year != 0 {
		period.Year = year
	}

	if err := period.Validate(); err != nil {
		return models.Period{}, err
	}

	return period, nil
}

// getIntParam parses an optional integer query parameter. A missing
// parameter yields the default; a malformed one is an error, never a
// silent fallback.
func getIntParam(c echo.Context, name string, defaultValue int) (int, error) {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}

	return value, nil
}

func getBoolParam(c echo.Context, name string) bool {
	return c.QueryParam(name) == "true"
}
