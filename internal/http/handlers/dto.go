package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/devapi/product-catalog/internal/models"
)

type ProductRequest struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Link is a navigation link attached to a response body.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type ProductResponse struct {
	Id        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImagePath string          `json:"imagePath"`
	Links     []Link          `json:"links,omitempty"`
}

func toProductResponse(p models.Product, links ...Link) ProductResponse {
	return ProductResponse{
		Id:        p.ID,
		Name:      p.Name,
		Price:     p.Price,
		ImagePath: p.ImagePath,
		Links:     links,
	}
}

func selfLink(id uuid.UUID) Link {
	return Link{Rel: "self", Href: fmt.Sprintf("/products/%s", id)}
}

func listLink() Link {
	return Link{Rel: "self", Href: "/products"}
}
