package repo

import (
	"sort"
	"time"

	"github.com/rogerio-castellano/products-api/internal/models"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
	nextID   int
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
		nextID:   1,
	}
}

// Create adds a new product to the repository.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = r.nextID
	r.nextID++
	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, product)
	return product, nil
}

// GetAll retrieves all products ordered by id, without timestamps.
func (r *InMemoryProductRepository) GetAll() ([]models.Product, error) {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	for i := range out {
		out[i].CreatedAt = time.Time{}
		out[i].UpdatedAt = time.Time{}
	}
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update modifies an existing product in the repository.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			product.UpdatedAt = time.Now().UTC()
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// ToggleAvailability flips the availability flag of a product.
func (r *InMemoryProductRepository) ToggleAvailability(id int) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == id {
			p.Availability = !p.Availability
			p.UpdatedAt = time.Now().UTC()
			r.products[i] = p
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id int) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
