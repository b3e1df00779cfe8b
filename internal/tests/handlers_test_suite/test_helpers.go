package handlers_test_suite

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	handler "github.com/rogerio-castellano/products-api/internal/http/handlers"
	"github.com/rogerio-castellano/products-api/internal/repo"
)

const allowedOrigin = "http://localhost:5173"

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
}

func clearAllProducts() {
	productRepo.Clear()
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createProduct(r http.Handler, body string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/api/products", body)
}
