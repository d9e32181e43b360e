package models

import "time"

// OrderItem is a snapshot of a product at order time. No referential
// integrity is kept against the product collection; orders are immutable.
type OrderItem struct {
	Slug     string   `bson:"slug" json:"slug" validate:"required"`
	Title    string   `bson:"title" json:"title" validate:"required"`
	Price    *float64 `bson:"price" json:"price" validate:"required"`
	Quantity *int     `bson:"quantity" json:"quantity" validate:"omitempty,gte=1"`
}

// Order defines the persisted order document.
type Order struct {
	Items           []OrderItem `bson:"items" json:"items" validate:"dive"`
	Subtotal        *float64    `bson:"subtotal" json:"subtotal" validate:"required,gte=0"`
	CustomerName    string      `bson:"customer_name" json:"customer_name" validate:"required"`
	CustomerEmail   string      `bson:"customer_email" json:"customer_email" validate:"required"`
	CustomerPhone   *string     `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`
	ShippingAddress string      `bson:"shipping_address" json:"shipping_address" validate:"required"`
	Notes           *string     `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       *time.Time  `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// ApplyDefaults sets the per-item quantity default of 1.
func (o *Order) ApplyDefaults() {
	for i := range o.Items {
		if o.Items[i].Quantity == nil {
			quantity := 1
			o.Items[i].Quantity = &quantity
		}
	}
}
