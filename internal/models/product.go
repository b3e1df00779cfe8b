package models

import "time"

// Product represents a product row in the catalog.
// CreatedAt and UpdatedAt are maintained by the database; the list query
// does not select them, so they stay zero and are omitted from list output.
type Product struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Price        float64   `json:"price"`
	Availability bool      `json:"availability"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}
