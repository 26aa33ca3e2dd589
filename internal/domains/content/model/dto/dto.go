package dto

import (
	"lemon/internal/domains/content/model"
)

// MenuItemResponse is a menu entry with its text resolved for one locale.
// Missing translations fall back to English, then to the literal fallbacks.
type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

func (r *MenuItemResponse) FromModel(mod model.MenuItem, locale string) {
	r.ID = mod.ID
	r.Name = mod.Content.ResolveName(locale)
	r.Description = mod.Content.ResolveDescription(locale)
	r.Price = mod.Price
	r.Image = mod.Image
}

type SpecialResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
}

func (r *SpecialResponse) FromModel(mod model.Special, locale string) {
	r.ID = mod.ID
	r.Name = mod.Content.ResolveName(locale)
	r.Description = mod.Content.ResolveDescription(locale)
	r.Price = mod.Price
	r.Image = mod.Image
}

// TestimonialResponse resolves the customer name into Name and the quote into
// Text.
type TestimonialResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Text   string `json:"text,omitempty"`
	Rating int    `json:"rating"`
	Avatar string `json:"avatar,omitempty"`
}

func (r *TestimonialResponse) FromModel(mod model.Testimonial, locale string) {
	r.ID = mod.ID
	r.Name = mod.Content.ResolveName(locale)
	r.Text = mod.Content.ResolveDescription(locale)
	r.Rating = mod.Rating
	r.Avatar = mod.Avatar
}
