// Package schema turns untyped request payloads and stored documents into
// validated entities. All violations for a payload are accumulated and
// reported together, keyed by JSON field name.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"

	"backend/internal/models"
	"backend/internal/store"
)

// Violation describes a single failed constraint on a payload field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Violations is the error returned for invalid payloads.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		parts = append(parts, violation.Field+": "+violation.Message)
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report violations under JSON field names, not Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeProduct parses and validates a product payload, applying defaults
// for omitted optional fields.
func DecodeProduct(data []byte) (models.Product, error) {
	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return models.Product{}, invalidBody(err)
	}
	product.ApplyDefaults()
	if violations := check(product); violations != nil {
		return models.Product{}, violations
	}
	return product, nil
}

// DecodeOrder parses and validates an order payload. The items list must be
// present; an empty list is accepted.
func DecodeOrder(data []byte) (models.Order, error) {
	var order models.Order
	if err := json.Unmarshal(data, &order); err != nil {
		return models.Order{}, invalidBody(err)
	}

	var violations Violations
	if order.Items == nil {
		violations = append(violations, Violation{Field: "items", Message: "this field is required"})
	}

	order.ApplyDefaults()
	violations = append(violations, check(order)...)
	if violations != nil {
		return models.Order{}, violations
	}
	return order, nil
}

// DecodeContactMessage parses and validates a contact form payload.
func DecodeContactMessage(data []byte) (models.ContactMessage, error) {
	var message models.ContactMessage
	if err := json.Unmarshal(data, &message); err != nil {
		return models.ContactMessage{}, invalidBody(err)
	}
	if violations := check(message); violations != nil {
		return models.ContactMessage{}, violations
	}
	return message, nil
}

// ProductFromDoc maps a stored document onto a Product, re-applying defaults
// and constraints so callers always see a complete entity.
func ProductFromDoc(doc bson.M) (models.Product, error) {
	var product models.Product
	if err := store.Decode(doc, &product); err != nil {
		return models.Product{}, err
	}
	product.ApplyDefaults()
	if violations := check(product); violations != nil {
		return models.Product{}, violations
	}
	return product, nil
}

func invalidBody(err error) Violations {
	return Violations{{Field: "body", Message: "invalid JSON: " + err.Error()}}
}

func check(entity any) Violations {
	err := validate.Struct(entity)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return Violations{{Field: "body", Message: err.Error()}}
	}

	violations := make(Violations, 0, len(fieldErrors))
	for _, fieldError := range fieldErrors {
		violations = append(violations, Violation{
			Field:   fieldPath(fieldError),
			Message: messageFor(fieldError),
		})
	}
	return violations
}

// fieldPath strips the leading struct name from the error namespace, leaving
// a JSON path like "items[0].quantity".
func fieldPath(fieldError validator.FieldError) string {
	path := fieldError.Namespace()
	if i := strings.Index(path, "."); i >= 0 {
		path = path[i+1:]
	}
	return path
}

func messageFor(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return "this field is required"
	case "gte":
		return "must be " + fieldError.Param() + " or greater"
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed constraint %q", fieldError.Tag())
	}
}
