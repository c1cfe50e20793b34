package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) ListCameras(ctx *gin.Context) {
	cameras, err := h.cameras.ListCameras(ctx.Request.Context())

	if err != nil {
		h.log.Error("Failed to fetch cameras", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cameras"})
		return
	}

	ctx.JSON(http.StatusOK, cameras)
}
