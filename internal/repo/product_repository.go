package repo

import (
	"errors"

	models "github.com/rogerio-castellano/products-api/internal/models"
)

// ErrProductNotFound is returned when no product row matches the given id.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id int) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	ToggleAvailability(id int) (models.Product, error)
	Delete(id int) error
}
