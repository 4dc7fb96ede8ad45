package dto

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentListDTO struct {
	ID              uuid.UUID `json:"id"`
	AppointmentDate time.Time `json:"appointment_date"`
	Time            string    `json:"time"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	Paid            bool      `json:"paid"`
	Notes           string    `json:"notes,omitempty"`

	ClientID    *uuid.UUID `json:"client_id"`
	ClientName  string     `json:"client_name"`
	ClientEmail string     `json:"client_email"`

	ProcedureID   *uuid.UUID `json:"procedure_id"`
	ProcedureName string     `json:"procedure_name"`
	Price         float64    `json:"price"`
	PriceLabel    string     `json:"price_label"`

	IsPast      bool `json:"is_past"`
	CanComplete bool `json:"can_complete"`
	CanCancel   bool `json:"can_cancel"`
	CanMarkPaid bool `json:"can_mark_paid"`
}

type AppointmentDayDTO struct {
	Date         string               `json:"date"`
	Label        string               `json:"label"`
	IsToday      bool                 `json:"is_today"`
	IsPast       bool                 `json:"is_past"`
	Appointments []AppointmentListDTO `json:"appointments"`
}
