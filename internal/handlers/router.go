package handlers

import (
	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/store"
)

// RegisterRoutes wires every endpoint onto the engine. Handlers receive the
// persistence gateway explicitly; there is no process-wide store handle.
func RegisterRoutes(r *gin.Engine, s store.Store, cfg config.Config) {
	r.GET("/", Home())

	r.GET("/api/products", ListProducts(s))
	r.GET("/api/products/:slug", GetProduct(s))
	r.POST("/api/products", CreateProduct(s))

	r.POST("/api/orders", CreateOrder(s))
	r.POST("/api/contact", CreateContact(s))

	r.GET("/test", Diagnostics(s, cfg))
}

// Home reports that the backend is up.
func Home() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Upcycled Shop Backend Running"})
	}
}
