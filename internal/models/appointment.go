package models

import "time"

// Appointment is a booked slot. Service is a free-text label and not a
// reference into the price list.
type Appointment struct {
	ID         uint      `json:"id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	ClientName string    `json:"clientName"`
	Service    string    `json:"service"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewAppointment struct {
	Date       string `json:"date"`
	Time       string `json:"time"`
	ClientName string `json:"clientName"`
	Service    string `json:"service"`
}
