package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/models"
	"backend/internal/schema"
	"backend/internal/store"
)

/*
GET /api/products
- featured query param OPTIONAL
- featured YOKSA → TÜM ÜRÜNLER
*/
func ListProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		log.Printf("[%s] hit featured=%s", route, c.Query("featured"))

		filter := bson.M{}
		if raw := c.Query("featured"); raw != "" {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, route, "featured must be a boolean")
				return
			}
			filter["featured"] = featured
		}

		ctx, cancel := requestTimeout(c)
		defer cancel()

		docs, err := s.Query(ctx, models.ProductCollection, filter, 0)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		products := make([]models.Product, 0, len(docs))
		for _, doc := range docs {
			product, err := schema.ProductFromDoc(doc)
			if err != nil {
				respondError(c, http.StatusInternalServerError, route, "stored product is malformed: "+err.Error())
				return
			}
			products = append(products, product)
		}

		log.Printf("[%s] returning %d products", route, len(products))
		c.JSON(http.StatusOK, products)
	}
}

// GetProduct returns a single product by its slug.
func GetProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products/:slug"
		defer handlePanic(c, route)

		slug := c.Param("slug")

		ctx, cancel := requestTimeout(c)
		defer cancel()

		docs, err := s.Query(ctx, models.ProductCollection, bson.M{"slug": slug}, 1)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, err.Error())
			return
		}
		if len(docs) == 0 {
			respondError(c, http.StatusNotFound, route, "Product not found")
			return
		}

		product, err := schema.ProductFromDoc(docs[0])
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, "stored product is malformed: "+err.Error())
			return
		}

		c.JSON(http.StatusOK, product)
	}
}

// CreateProduct validates the payload and inserts it, rejecting duplicate
// slugs. The existence check and the insert are not atomic; the unique slug
// index created at startup backstops the race when the store supports it.
func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		body, err := c.GetRawData()
		if err != nil {
			respondError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		product, err := schema.DecodeProduct(body)
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

		existing, err := s.Query(ctx, models.ProductCollection, bson.M{"slug": product.Slug}, 1)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, err.Error())
			return
		}
		if len(existing) > 0 {
			respondError(c, http.StatusBadRequest, route, "Slug already exists")
			return
		}

		id, err := s.Insert(ctx, models.ProductCollection, product)
		if err != nil {
			respondError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] created product slug=%s id=%s", route, product.Slug, id)
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
