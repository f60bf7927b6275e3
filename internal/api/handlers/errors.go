package handlers

import (
	"net/http"
	"strconv"

	apperrors "voice-sales-backend/internal/errors"
	"voice-sales-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto its HTTP status. Unknown errors are logged and
// answered with a generic message so storage details never reach the client.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsCollaboratorUnavailable(err):
		logger.WithContext(c.Request.Context()).WithField("error", err.Error()).Warn("collaborator unavailable")
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithFields(map[string]interface{}{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// parseID reads a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// queryInt reads an optional integer query parameter, falling back to def
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return v, true
}
