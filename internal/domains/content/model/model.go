package model

import gModel "lemon/shared/model"

const (
	MenuItemTableName    = "menu_items"
	MenuItemEntityName   = "menu_item"
	SpecialTableName     = "specials"
	SpecialEntityName    = "special"
	TestimonialTableName = "testimonials"
	TestimonialEntity    = "testimonial"

	FieldID = "id"
)

// MenuItem is a dish on the regular menu. Content holds the per-locale name
// and description.
type MenuItem struct {
	ID      int64                `db:"id"`
	Price   float64              `db:"price"`
	Image   string               `db:"image"`
	Content gModel.LocalizedText `db:"content"`
	gModel.Metadata
}

// Special is a limited-time offer shown on the landing page.
type Special struct {
	ID      int64                `db:"id"`
	Price   float64              `db:"price"`
	Image   string               `db:"image"`
	Content gModel.LocalizedText `db:"content"`
	gModel.Metadata
}

// Testimonial is a customer quote. Content carries the customer name and the
// quote text per locale.
type Testimonial struct {
	ID      int64                `db:"id"`
	Rating  int                  `db:"rating"`
	Avatar  string               `db:"avatar"`
	Content gModel.LocalizedText `db:"content"`
	gModel.Metadata
}
