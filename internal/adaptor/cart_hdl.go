package adaptor

import (
	"encoding/json"
	"net/http"

	"ecommerce-backend/internal/dto/request"
	"ecommerce-backend/internal/usecase"
	"ecommerce-backend/pkg/apperr"
	"ecommerce-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log.With(zap.String("handler", "cart")),
	}
}

// GetCart handles GET /cart/{userId}
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	session, err := h.service.GetOrCreateSession(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved", session)
}

// AddItem handles POST /cart/add-item
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req request.AddCartItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, apperr.BadRequest("Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationError(w, validationErrors)
		return
	}

	item, err := h.service.AddItemToCart(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "add item to cart")
		return
	}

	utils.ResponseSuccess(w, "Item added to cart", item)
}

// UpdateItemQuantity handles PATCH /cart/update-item-quantity
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateCartItemQuantityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, apperr.BadRequest("Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationError(w, validationErrors)
		return
	}

	session, err := h.service.UpdateCartItemQuantity(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update cart item quantity")
		return
	}

	utils.ResponseSuccess(w, "Cart item updated", session)
}

// RemoveItem handles DELETE /cart/remove-item
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	var req request.RemoveCartItemRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, apperr.BadRequest("Invalid request body"))
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseValidationError(w, validationErrors)
		return
	}

	if err := h.service.RemoveItemFromCart(r.Context(), &req); err != nil {
		respondServiceError(w, h.log, err, "remove item from cart")
		return
	}

	utils.ResponseSuccess(w, "Item removed from cart", nil)
}
