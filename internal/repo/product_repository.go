package repo

import (
	"errors"

	"github.com/google/uuid"

	"github.com/devapi/product-catalog/internal/models"
)

// ProductRepository defines the interface for product data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id uuid.UUID) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id uuid.UUID) error
}

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")
