package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-console/internal/httpresp"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Login checks nothing and only tells the client where to go next.
func (h *AuthHandler) Login(c *gin.Context) {
	httpresp.OK(c, gin.H{"redirect": "/dashboard"})
}
