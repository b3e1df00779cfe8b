package handlers

import (
	repo "github.com/rogerio-castellano/products-api/internal/repo"
)

var productRepo repo.ProductRepository

// SetProductRepo injects the repository the handlers operate on. Tests swap
// in the in-memory implementation here.
func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}
