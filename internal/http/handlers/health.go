package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/castellano-app/castellano-backend/internal/data/db"
)

type HealthHandler struct {
	db *db.Service
}

func NewHealthHandler(dbService *db.Service) *HealthHandler {
	return &HealthHandler{db: dbService}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "error"
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": dbStatus})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": dbStatus})
}
