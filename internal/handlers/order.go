package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
	"backend/internal/schema"
	"backend/internal/store"
)

// CreateOrder validates the payload and stores it as an immutable snapshot.
// No stock is decremented and item slugs are not checked against the product
// collection.
func CreateOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		body, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		order, err := schema.DecodeOrder(body)
		if err != nil {
			var violations schema.Violations
			if errors.As(err, &violations) {
				respondViolations(c, route, violations)
				return
			}
			respondError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		ctx, cancel := requestTimeout(c)
		defer cancel()

		id, err := s.Insert(ctx, models.OrderCollection, order)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] order received id=%s items=%d", route, id, len(order.Items))
		c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
	}
}
