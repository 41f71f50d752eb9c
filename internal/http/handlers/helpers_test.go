package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	api "github.com/devapi/product-catalog/internal/http"
	handler "github.com/devapi/product-catalog/internal/http/handlers"
	"github.com/devapi/product-catalog/internal/repo"
	"github.com/devapi/product-catalog/internal/storage"
)

type testEnv struct {
	router http.Handler
	repo   *repo.InMemoryProductRepository
	files  *storage.Dir
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()

	productRepo := repo.NewInMemoryProductRepository()
	files, err := storage.NewDir(filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("error creating storage dir: %v", err)
	}

	h := handler.NewProductHandler(productRepo, files)
	return testEnv{router: api.NewRouter(h), repo: productRepo, files: files}
}

func (e testEnv) createProduct(p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e testEnv) do(method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e testEnv) uploadImage(id string, name, price, filename string, content []byte) *httptest.ResponseRecorder {
	buf, contentType := multipartImage(name, price, filename, content)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/products/img/%s", id), buf)
	req.Header.Set("Content-Type", contentType)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func multipartImage(name, price, filename string, content []byte) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	writer.WriteField("name", name)
	writer.WriteField("price", price)
	if filename != "" {
		part, _ := writer.CreateFormFile("file", filename)
		part.Write(content)
	}

	writer.Close()
	return &buf, writer.FormDataContentType()
}

func decodeProduct(t *testing.T, w *httptest.ResponseRecorder) handler.ProductResponse {
	t.Helper()

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	return resp
}
