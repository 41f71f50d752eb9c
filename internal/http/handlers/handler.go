package handlers

import (
	"github.com/devapi/product-catalog/internal/repo"
	"github.com/devapi/product-catalog/internal/storage"
)

// ProductHandler serves the product catalog HTTP API.
type ProductHandler struct {
	repo  repo.ProductRepository
	files *storage.Dir
}

// NewProductHandler creates a handler backed by the given repository and
// file storage area.
func NewProductHandler(r repo.ProductRepository, files *storage.Dir) *ProductHandler {
	return &ProductHandler{repo: r, files: files}
}
