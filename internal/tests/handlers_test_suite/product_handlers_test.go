package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	api "github.com/rogerio-castellano/products-api/internal/http"
	handler "github.com/rogerio-castellano/products-api/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{"name":"Monitor curvo","price":400}`)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Data.ID == 0 {
		t.Error("expected a store-assigned id, got 0")
	}
	if resp.Data.Name != "Monitor curvo" {
		t.Errorf("expected name 'Monitor curvo', got %v", resp.Data.Name)
	}
	if resp.Data.Price != 400.0 {
		t.Errorf("expected price 400.0, got %v", resp.Data.Price)
	}
	if !resp.Data.Availability {
		t.Error("expected availability to default to true")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	tests := []struct {
		name           string
		payload        string
		expectedFields []string
	}{
		{
			name:           "Empty name",
			payload:        `{"name":"","price":400}`,
			expectedFields: []string{"name"},
		},
		{
			name:           "Whitespace-only name",
			payload:        `{"name":"   ","price":400}`,
			expectedFields: []string{"name"},
		},
		{
			name:           "Zero price",
			payload:        `{"name":"Monitor curvo","price":0}`,
			expectedFields: []string{"price"},
		},
		{
			name:           "Negative price",
			payload:        `{"name":"Monitor curvo","price":-5}`,
			expectedFields: []string{"price"},
		},
		{
			name:           "Non-numeric price",
			payload:        `{"name":"Monitor curvo","price":"hola"}`,
			expectedFields: []string{"price", "price"},
		},
		{
			name:           "Empty body",
			payload:        `{}`,
			expectedFields: []string{"name", "price", "price", "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", w.Code)
			}

			var resp handler.ValidationErrorsResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedFields {
				count := 0
				for _, e := range resp.Errors {
					if e.Field == field {
						count++
					}
				}
				if count == 0 {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
			if len(resp.Errors) < len(tt.expectedFields) {
				t.Errorf("expected at least %d errors, got %d: %v", len(tt.expectedFields), len(resp.Errors), resp.Errors)
			}
		})
	}
}

func TestCreateProductHandler_ErrorsAccumulateInDeclarationOrder(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{"name":""}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var resp handler.ValidationErrorsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	wantFields := []string{"name", "price", "price", "price"}
	if len(resp.Errors) != len(wantFields) {
		t.Fatalf("expected %d errors, got %d: %v", len(wantFields), len(resp.Errors), resp.Errors)
	}
	for i, field := range wantFields {
		if resp.Errors[i].Field != field {
			t.Errorf("error %d: expected field %q, got %q", i, field, resp.Errors[i].Field)
		}
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{name: "Invalid" price: 400 "}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	expectedBody := "invalid input\n"
	if w.Body.String() != expectedBody {
		t.Errorf("expected response body %q, got %q", expectedBody, w.Body.String())
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	if w := createProduct(r, `{"name":"Monitor curvo","price":400}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for first product, got %d", w.Code)
	}
	if w := createProduct(r, `{"name":"Teclado","price":75}`); w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created for second product, got %d", w.Code)
	}

	w := doRequest(r, http.MethodGet, "/api/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 products, got %d", len(resp.Data))
	}

	var prevID float64
	for _, p := range resp.Data {
		if _, ok := p["createdAt"]; ok {
			t.Error("list output must not include createdAt")
		}
		if _, ok := p["updatedAt"]; ok {
			t.Error("list output must not include updatedAt")
		}
		id := p["id"].(float64)
		if id <= prevID {
			t.Errorf("expected ids in ascending order, got %v after %v", id, prevID)
		}
		prevID = id
	}
}

func TestGetProductsHandler_Empty(t *testing.T) {
	t.Cleanup(clearAllProducts)
	clearAllProducts()
	r := api.NewRouter(allowedOrigin)

	w := doRequest(r, http.MethodGet, "/api/products", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp struct {
		Data []any `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Data == nil {
		t.Error("expected an empty list, got null")
	}
	if len(resp.Data) != 0 {
		t.Errorf("expected 0 products, got %d", len(resp.Data))
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{"name":"Monitor curvo","price":400}`)
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, fmt.Sprintf("/api/products/%d", created.Data.ID), "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Data.ID != created.Data.ID || resp.Data.Name != "Monitor curvo" {
			t.Errorf("unexpected product: %+v", resp.Data)
		}
	})

	t.Run("non-integer id", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/products/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp handler.ValidationErrorsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(resp.Errors) != 1 || resp.Errors[0].Field != "id" {
			t.Errorf("expected a single error for field id, got %v", resp.Errors)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, "/api/products/999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp handler.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Error != "Producto No Encontrado" {
			t.Errorf("expected error 'Producto No Encontrado', got %q", resp.Error)
		}
	})
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{"name":"Monitor curvo","price":400}`)
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	id := created.Data.ID

	t.Run("full replace", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/products/%d", id),
			`{"name":"Monitor plano","price":250,"availability":false}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Data.Name != "Monitor plano" || resp.Data.Price != 250 || resp.Data.Availability {
			t.Errorf("unexpected product after update: %+v", resp.Data)
		}
	})

	t.Run("missing availability", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, fmt.Sprintf("/api/products/%d", id),
			`{"name":"Monitor plano","price":250}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp handler.ValidationErrorsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		for _, e := range resp.Errors {
			if e.Field == "availability" {
				return
			}
		}
		t.Errorf("expected an error for field availability, got %v", resp.Errors)
	})

	t.Run("non-integer id accumulates with body errors", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/api/products/abc", `{"price":-1,"availability":false}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var resp handler.ValidationErrorsResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if len(resp.Errors) == 0 || resp.Errors[0].Field != "id" {
			t.Fatalf("expected id to be the first accumulated error, got %v", resp.Errors)
		}
		fields := map[string]bool{}
		for _, e := range resp.Errors {
			fields[e.Field] = true
		}
		if !fields["name"] || !fields["price"] {
			t.Errorf("expected errors for name and price as well, got %v", resp.Errors)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(r, http.MethodPut, "/api/products/999",
			`{"name":"Monitor plano","price":250,"availability":true}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp handler.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Error != "Producto No Encontrado" {
			t.Errorf("expected error 'Producto No Encontrado', got %q", resp.Error)
		}
	})
}

func TestUpdateAvailabilityHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{"name":"Monitor curvo","price":400}`)
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	id := created.Data.ID
	path := fmt.Sprintf("/api/products/%d", id)

	t.Run("toggle flips the flag", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Data.Availability {
			t.Error("expected availability false after first toggle")
		}
	})

	t.Run("toggling twice restores the original value", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.ProductResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if !resp.Data.Availability {
			t.Error("expected availability true after second toggle")
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, "/api/products/999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp handler.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Error != "No existe" {
			t.Errorf("expected error 'No existe', got %q", resp.Error)
		}
	})

	t.Run("non-integer id", func(t *testing.T) {
		w := doRequest(r, http.MethodPatch, "/api/products/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	w := createProduct(r, `{"name":"Monitor curvo","price":400}`)
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	path := fmt.Sprintf("/api/products/%d", created.Data.ID)

	t.Run("delete returns confirmation message", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, path, "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200 OK, got %d", w.Code)
		}
		var resp handler.MessageResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Data != "Producto Eliminado" {
			t.Errorf("expected data 'Producto Eliminado', got %q", resp.Data)
		}
	})

	t.Run("deleted product is gone", func(t *testing.T) {
		w := doRequest(r, http.MethodGet, path, "")
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404 after delete, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/api/products/999", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var resp handler.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if resp.Error != "No existe" {
			t.Errorf("expected error 'No existe', got %q", resp.Error)
		}
	})

	t.Run("non-integer id", func(t *testing.T) {
		w := doRequest(r, http.MethodDelete, "/api/products/abc", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestRouter_CORSAllowsSingleOrigin(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := api.NewRouter(allowedOrigin)

	tests := []struct {
		name       string
		origin     string
		wantHeader string
	}{
		{name: "configured origin", origin: allowedOrigin, wantHeader: allowedOrigin},
		{name: "other origin", origin: "http://evil.example.com", wantHeader: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.wantHeader {
				t.Errorf("expected Access-Control-Allow-Origin %q, got %q", tt.wantHeader, got)
			}
		})
	}
}
