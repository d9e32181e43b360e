package models

// Collection names in the document store. One collection per entity,
// lowercase entity name.
const (
	ProductCollection        = "product"
	OrderCollection          = "order"
	ContactMessageCollection = "contactmessage"
)

type Product struct {
	Title           string   `bson:"title" json:"title" validate:"required"`
	Slug            string   `bson:"slug" json:"slug" validate:"required"`
	Description     *string  `bson:"description,omitempty" json:"description,omitempty"`
	Price           *float64 `bson:"price" json:"price" validate:"required,gte=0"`
	Category        string   `bson:"category" json:"category" validate:"required"`
	Images          []string `bson:"images" json:"images" validate:"omitempty,dive,url"`
	Materials       []string `bson:"materials,omitempty" json:"materials,omitempty"`
	Dimensions      *string  `bson:"dimensions,omitempty" json:"dimensions,omitempty"`
	InStock         *bool    `bson:"in_stock" json:"in_stock"`
	StockQty        *int     `bson:"stock_qty,omitempty" json:"stock_qty,omitempty" validate:"omitempty,gte=0"`
	Featured        *bool    `bson:"featured" json:"featured"`
	SustainableTags []string `bson:"sustainable_tags,omitempty" json:"sustainable_tags,omitempty"`
}

// ApplyDefaults fills the optional fields that carry defaults: products are
// in stock and not featured unless the payload says otherwise.
func (p *Product) ApplyDefaults() {
	if p.Images == nil {
		p.Images = []string{}
	}
	if p.InStock == nil {
		inStock := true
		p.InStock = &inStock
	}
	if p.Featured == nil {
		featured := false
		p.Featured = &featured
	}
}
