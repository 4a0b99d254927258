package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ecom-admin-backend/internal/database"
	"ecom-admin-backend/internal/middleware"
	"ecom-admin-backend/internal/models"
	"ecom-admin-backend/internal/services"
)

// respondError translates service-layer failures into HTTP responses.
// Validation messages are safe to expose; everything else gets a generic
// body and a server-side log line.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationErr.Msg})
		return
	}

	if errors.Is(err, services.ErrStoreAccessDenied) {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "store access denied"})
		return
	}

	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "resource not found"})
		return
	}

	log.Printf("request failed: %v", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal server error"})
}

// currentUserID returns the authenticated user's id set by the auth
// middleware.
func currentUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}
	userID, ok := v.(string)
	if !ok || userID == "" {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return "", false
	}
	return userID, true
}

// pathUUID parses a uuid path parameter, answering 400 on malformed input.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
