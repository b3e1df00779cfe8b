package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/rogerio-castellano/products-api/internal/http/handlers"
)

// NewRouter binds method+path+validation-chain+handler for the product API
// and mounts the swagger UI. Cross-origin requests are accepted only from
// allowedOrigin; there is no wildcard and no allow-list.
func NewRouter(allowedOrigin string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", handlers.GetProductsHandler)

		r.With(handlers.Validate(
			handlers.ParamInt("id", "ID no valido"),
		)).Get("/{id}", handlers.GetProductByIDHandler)

		r.With(handlers.Validate(
			handlers.BodyNotEmpty("name", "El nombre de producto no puede ir vacio"),
			handlers.BodyNotEmpty("price", "El precio no debe estar vacio"),
			handlers.BodyNumeric("price", "Valor no valido"),
			handlers.BodyPositive("price", "Precio no valido"),
		)).Post("/", handlers.CreateProductHandler)

		r.With(handlers.Validate(
			handlers.ParamInt("id", "ID no valido"),
			handlers.BodyNotEmpty("name", "El nombre no debe estar vacio"),
			handlers.BodyNotEmpty("price", "El precio del producto no debe estar vacio"),
			handlers.BodyNumeric("price", "Valor no valido"),
			handlers.BodyPositive("price", "Precio no valido"),
			handlers.BodyNotEmpty("availability", "no debe estar vacio"),
			handlers.BodyBoolean("availability", "Valor para disponibilidad no valido"),
		)).Put("/{id}", handlers.UpdateProductHandler)

		r.With(handlers.Validate(
			handlers.ParamInt("id", "ID no valido"),
		)).Patch("/{id}", handlers.UpdateAvailabilityHandler)

		r.With(handlers.Validate(
			handlers.ParamInt("id", "ID no valido"),
		)).Delete("/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	return r
}
