package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/devapi/product-catalog/internal/http/handlers"
)

func NewRouter(h *handlers.ProductHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(RateLimitMiddleware)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Post("/products", h.CreateProduct)
	r.Get("/products", h.GetProducts)
	r.Get("/products/files", h.ListImageFiles)
	r.Put("/products/img/{id}", h.UploadImage)
	r.Get("/products/img/{fileName}", h.DownloadImage)
	r.Get("/products/{id}", h.GetProductByID)
	r.Put("/products/{id}", h.UpdateProduct)
	r.Delete("/products/{id}", h.DeleteProduct)

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
