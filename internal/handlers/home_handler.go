package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	dbpkg "github.com/BruksfildServices01/rental-booking/internal/db"
	"github.com/BruksfildServices01/rental-booking/internal/httperr"
	"github.com/BruksfildServices01/rental-booking/internal/httpresp"
)

type HomeHandler struct {
	db *gorm.DB
}

func NewHomeHandler(db *gorm.DB) *HomeHandler {
	return &HomeHandler{db: db}
}

func (h *HomeHandler) Home(c *gin.Context) {
	httpresp.Message(c, "API Go + PostgreSQL conectada!")
}

func (h *HomeHandler) Health(c *gin.Context) {
	if err := dbpkg.Ping(c.Request.Context(), h.db); err != nil {
		httperr.Unavailable(c, "database_unavailable", err)
		return
	}
	httpresp.OK(c, gin.H{"status": "ok"})
}
