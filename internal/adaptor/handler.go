package adaptor

import (
	"net/http"

	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/apperr"
	"ecommerce-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Category *CategoryHandler
	Product  *ProductHandler
	Cart     *CartHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Category: NewCategoryHandler(service.Category, log),
		Product:  NewProductHandler(service.Product, log),
		Cart:     NewCartHandler(service.Cart, log),
	}
}

// respondServiceError logs the failure and writes the mapped error body.
// Typed errors keep their status; anything untyped becomes a bare 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	if appErr := apperr.From(err); appErr != nil && appErr.Kind != apperr.KindInternal {
		log.Warn("Request failed",
			zap.String("operation", operation),
			zap.Int("status", appErr.StatusCode()),
			zap.Error(err),
		)
	} else {
		log.Error("Failed to "+operation, zap.Error(err))
	}

	utils.ResponseError(w, err)
}
