package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"blog-api/internal/middleware"
	"blog-api/internal/response"
)

// currentUserID returns the resolved caller or uuid.Nil for anonymous requests.
// Services reject uuid.Nil with the status their operation calls for.
func currentUserID(c *gin.Context) uuid.UUID {
	userID, _ := middleware.UserID(c)
	return userID
}

// viewerID returns the caller as an optional viewer
func viewerID(c *gin.Context) *uuid.UUID {
	if userID, ok := middleware.UserID(c); ok {
		return &userID
	}
	return nil
}

// parseUUIDParam parses a path parameter and writes a 400 when it is malformed
func parseUUIDParam(c *gin.Context, name, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.SendError(c, http.StatusBadRequest, response.ErrCodeValidation, message)
		return uuid.Nil, false
	}
	return id, true
}
