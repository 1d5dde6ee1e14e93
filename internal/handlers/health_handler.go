package handlers

import (
	"context"
	"net/http"
	"time"

	"ledger-analytics/internal/errors"

	"gorm.io/gorm"

	"github.com/labstack/echo/v4"
)

// StoreStatus is the part of the aggregation store the health check reports on
type StoreStatus interface {
	Version() uint64
	LastUpdated() time.Time
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    *gorm.DB
	store StoreStatus
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, store StoreStatus) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, store: store}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check database connectivity and the aggregate version being served
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,aggregates_version=int} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
	}

	body := map[string]interface{}{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}
	if h.store != nil {
		body["aggregates_version"] = h.store.Version()
		if updated := h.store.LastUpdated(); !updated.IsZero() {
			body["aggregates_updated_at"] = updated.UTC().Format(time.RFC3339)
		}
	}

	return c.JSON(http.StatusOK, body)
}
