package wire

import (
	"ecommerce-backend/internal/adaptor"
	"ecommerce-backend/internal/data/entity"
	"ecommerce-backend/internal/data/repository"
	"ecommerce-backend/pkg/middleware"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/products", func(r chi.Router) {
		// Public routes
		r.Get("/", productHandler.GetProducts)
		r.Get("/{id}", productHandler.GetProductByID)

		// Admin product management
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(repo, config, log))
			r.Use(middleware.Authorize(entity.RoleAdmin))

			r.Post("/", productHandler.CreateProduct)
			r.Patch("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})
	})
}
