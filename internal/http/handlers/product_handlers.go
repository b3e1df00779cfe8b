package handlers

import (
	"errors"
	"net/http"

	models "github.com/rogerio-castellano/products-api/internal/models"
	repo "github.com/rogerio-castellano/products-api/internal/repo"
)

// GetProductsHandler godoc
// @Summary List all products
// @Description Returns every product ordered by id, without timestamps
// @Tags products
// @Produce json
// @Success 200 {object} ProductListResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch products", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ProductListResponse{Data: products})
}

// GetProductByIDHandler godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id := Validated(r).Int("id")

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Producto No Encontrado"})
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ProductResponse{Data: product})
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog; availability defaults to true
// @Tags products
// @Accept json
// @Produce json
// @Param product body object{name=string,price=number} true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	v := Validated(r)

	product := models.Product{
		Name:         v.String("name"),
		Price:        v.Float("price"),
		Availability: true,
	}
	created, err := productRepo.Create(product)
	if err != nil {
		http.Error(w, "could not create product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, ProductResponse{Data: created})
}

// UpdateProductHandler godoc
// @Summary Update a product with user input
// @Description Full replace: name, price and availability are all required
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body object{name=string,price=number,availability=boolean} true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	v := Validated(r)

	product := models.Product{
		ID:           v.Int("id"),
		Name:         v.String("name"),
		Price:        v.Float("price"),
		Availability: v.Bool("availability"),
	}
	updated, err := productRepo.Update(product)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Producto No Encontrado"})
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ProductResponse{Data: updated})
}

// UpdateAvailabilityHandler godoc
// @Summary Toggle product availability
// @Description Flips the availability flag; no body is consumed
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [patch]
func UpdateAvailabilityHandler(w http.ResponseWriter, r *http.Request) {
	id := Validated(r).Int("id")

	updated, err := productRepo.ToggleAvailability(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "No existe"})
			return
		}
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, ProductResponse{Data: updated})
}

// DeleteProductHandler godoc
// @Summary Delete a product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ValidationErrorsResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {string} string "Internal error"
// @Router /api/products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id := Validated(r).Int("id")

	if err := productRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "No existe"})
			return
		}
		http.Error(w, "could not delete product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Data: "Producto Eliminado"})
}
