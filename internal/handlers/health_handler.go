package handlers

import (
	"net/http"
	"time"

	"opsintel/internal/dataset"
	"opsintel/internal/errors"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       *gorm.DB
	snapshot *dataset.Snapshot
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, snapshot *dataset.Snapshot) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, snapshot: snapshot}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and query store connectivity and report the loaded dataset
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string,records=int,latest_day=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (query store connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Query store connection failed"))
	}

	response := map[string]interface{}{
		"status":  "healthy",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"records": h.snapshot.Len(),
	}
	if latest, ok := h.snapshot.LatestDay(); ok {
		response["latest_day"] = latest.String()
	}

	return c.JSON(http.StatusOK, response)
}
