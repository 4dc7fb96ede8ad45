package dto

import "github.com/google/uuid"

type ClientOptionDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type ProcedureOptionDTO struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	PriceLabel string    `json:"price_label"`
}

// BookingOptionsDTO feeds the new-appointment form.
type BookingOptionsDTO struct {
	Clients     []ClientOptionDTO    `json:"clients"`
	Procedures  []ProcedureOptionDTO `json:"procedures"`
	DefaultDate string               `json:"default_date"`
	DefaultTime string               `json:"default_time"`
}
