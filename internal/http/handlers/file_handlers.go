package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/devapi/product-catalog/internal/repo"
	"github.com/devapi/product-catalog/internal/storage"
)

const maxUploadBytes = 32 << 20 // 32 MB

// UploadImage godoc
// @Summary Upload a product image
// @Description Stores the image under {id}_{filename}, sets the product's image path and overwrites name/price from the form fields
// @Tags products
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Product ID"
// @Param file formData file true "Image file"
// @Param name formData string true "Product name"
// @Param price formData number true "Product price"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid input"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/img/{id} [put]
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found for image update", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file part is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// A price that fails to parse stays zero and is caught by validation.
	price, _ := decimal.NewFromString(r.FormValue("price"))
	req := ProductRequest{Name: r.FormValue("name"), Price: price}
	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(validationErrors)
		return
	}

	safe, err := storage.SafeName(header.Filename)
	if err != nil {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}
	key := fmt.Sprintf("%s_%s", id, safe)

	if err := h.files.Save(key, file); err != nil {
		http.Error(w, "could not store image", http.StatusInternalServerError)
		return
	}

	product.Name = req.Name
	product.Price = req.Price
	product.ImagePath = downloadURL(r, key)

	updated, err := h.repo.Update(product)
	if err != nil {
		http.Error(w, "could not update product", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, toProductResponse(updated)); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// downloadURL builds the absolute download URI for a stored file, derived
// from the incoming request's host.
func downloadURL(r *http.Request, key string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/products/img/%s", scheme, r.Host, key)
}

// DownloadImage godoc
// @Summary Download a product image
// @Tags products
// @Produce octet-stream
// @Param fileName path string true "File name"
// @Success 200 {file} binary
// @Failure 400 {string} string "Invalid file name"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /products/img/{fileName} [get]
func (h *ProductHandler) DownloadImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "fileName")

	data, contentType, err := h.files.Open(name)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidName):
			http.Error(w, "invalid file name", http.StatusBadRequest)
		case errors.Is(err, storage.ErrFileNotFound):
			http.Error(w, "file not found", http.StatusNotFound)
		default:
			http.Error(w, "could not read file", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := w.Write(data); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// ListImageFiles godoc
// @Summary List image file names
// @Tags products
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "Internal error"
// @Router /products/files [get]
func (h *ProductHandler) ListImageFiles(w http.ResponseWriter, r *http.Request) {
	names, err := h.files.List()
	if err != nil {
		http.Error(w, "could not list files", http.StatusInternalServerError)
		return
	}

	if err := writeJSON(w, http.StatusOK, names); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}
