package handlers

import "github.com/rogerio-castellano/products-api/internal/models"

// ProductResponse wraps a single product in the data envelope.
type ProductResponse struct {
	Data models.Product `json:"data"`
}

// ProductListResponse wraps the product listing in the data envelope.
type ProductListResponse struct {
	Data []models.Product `json:"data"`
}

// MessageResponse wraps a plain confirmation message in the data envelope.
type MessageResponse struct {
	Data string `json:"data"`
}

// ErrorResponse carries a single error message, used for not-found replies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorsResponse carries the ordered list of field failures.
type ValidationErrorsResponse struct {
	Errors []FieldError `json:"errors"`
}
