package response

import (
	"time"

	"github.com/google/uuid"
)

type CartItemResponse struct {
	ID        uuid.UUID        `json:"id"`
	ProductID uuid.UUID        `json:"productId"`
	Quantity  int              `json:"quantity"`
	Product   *ProductResponse `json:"product,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

type SessionResponse struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"userId"`
	CartItems []CartItemResponse `json:"cartItems"`
	CreatedAt time.Time          `json:"createdAt"`
}
