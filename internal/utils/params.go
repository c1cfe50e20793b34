package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
)

func GetIncidentID(ctx *gin.Context) (string, error) {
	incidentID := ctx.Param("id")

	if incidentID == "" {
		return "", errors.New("Incident ID not found")
	}

	return incidentID, nil
}

// ParseResolved maps the resolved query value onto the filter. Only the exact
// string "true" selects resolved incidents.
func ParseResolved(raw string) bool {
	return raw == "true"
}

// GetResolvedFilter reads ?resolved= from the request.
func GetResolvedFilter(ctx *gin.Context) bool {
	return ParseResolved(ctx.Query("resolved"))
}
