package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/schema"
)

func handlePanic(c *gin.Context, route string) {
	if r := recover(); r != nil {
		log.Printf("[%s] panic recovered: %v", route, r)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
	}
}

func requestTimeout(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 5*time.Second)
}

func respondError(c *gin.Context, status int, route string, detail string) {
	log.Printf("[%s] returning error %d: %s", route, status, detail)
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func respondViolations(c *gin.Context, route string, violations schema.Violations) {
	log.Printf("[%s] returning error %d: %s", route, http.StatusBadRequest, violations.Error())
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"detail": violations.Error(),
		"fields": violations,
	})
}
