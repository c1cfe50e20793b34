package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) HealthCheck(ctx *gin.Context) {
	if err := h.ping(ctx.Request.Context()); err != nil {
		h.log.Warn("Health check failed", zap.Error(err))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"error":  "Database unreachable",
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "Instinctive is running",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
