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

func wireCategory(
	r chi.Router,
	categoryHandler *adaptor.CategoryHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/categories", func(r chi.Router) {
		// Public routes
		r.Get("/", categoryHandler.GetCategories)
		r.Get("/{id}", categoryHandler.GetCategoryByID)

		// Admin only
		r.With(
			middleware.Authenticate(repo, config, log),
			middleware.Authorize(entity.RoleAdmin),
		).Post("/", categoryHandler.CreateCategory)
	})
}
