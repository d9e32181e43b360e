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

// CreateContact validates and stores a contact form submission.
func CreateContact(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/contact"
		defer handlePanic(c, route)

		body, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		message, err := schema.DecodeContactMessage(body)
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

		id, err := s.Insert(ctx, models.ContactMessageCollection, message)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] contact message received id=%s", route, id)
		c.JSON(http.StatusOK, gin.H{"id": id, "status": "received"})
	}
}
