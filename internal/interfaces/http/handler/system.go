package handler

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pim/backend/internal/interfaces/http/dto"
)

// HealthChecker reports whether a backing dependency is reachable
type HealthChecker func() error

// SystemHandler handles system level API endpoints
type SystemHandler struct {
	BaseHandler
	startTime time.Time
	checkDB   HealthChecker
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(checkDB HealthChecker) *SystemHandler {
	return &SystemHandler{
		startTime: time.Now(),
		checkDB:   checkDB,
	}
}

// RegisterRoutes registers system routes on the given group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", h.Ping)
	rg.GET("/health", h.Health)
	rg.GET("/info", h.Info)
}

// PingResponse is the reply to a connectivity probe
type PingResponse struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// SystemInfoResponse describes the running service
type SystemInfoResponse struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// Ping answers a liveness probe
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, PingResponse{
		Message:   "pong",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Health answers a readiness probe, checking the database connection
func (h *SystemHandler) Health(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if h.checkDB != nil {
		if err := h.checkDB(); err != nil {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse(
				dto.ErrCodeInternal, "database unreachable"))
			return
		}
		status["database"] = "ok"
	}

	h.Success(c, status)
}

// Info returns service metadata
func (h *SystemHandler) Info(c *gin.Context) {
	h.Success(c, SystemInfoResponse{
		Name:      "PIM Backend API",
		Version:   "1.0.0",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
	})
}
