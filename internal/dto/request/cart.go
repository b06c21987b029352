package request

type AddCartItemRequest struct {
	UserID    string `json:"userId" validate:"required,uuid"`
	ProductID string `json:"productId" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
}

type RemoveCartItemRequest struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	CartItemID string `json:"cartItemId" validate:"required,uuid"`
}

type UpdateCartItemQuantityRequest struct {
	UserID     string `json:"userId" validate:"required,uuid"`
	CartItemID string `json:"cartItemId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
}
