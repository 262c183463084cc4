package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Listagens saem como array puro, nunca null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, data)
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Message responde {"mensagem": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"mensagem": msg})
}

// Created responde 201 com {"mensagem": msg, key: entity}.
func Created(c *gin.Context, msg, key string, entity any) {
	c.JSON(http.StatusCreated, gin.H{"mensagem": msg, key: entity})
}

// Updated responde 200 com {"mensagem": msg, key: entity}.
func Updated(c *gin.Context, msg, key string, entity any) {
	c.JSON(http.StatusOK, gin.H{"mensagem": msg, key: entity})
}
