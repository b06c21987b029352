package wire

import (
	"ecommerce-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// Cart routes carry the user id in the payload and are not authenticated.
func wireCart(r chi.Router, cartHandler *adaptor.CartHandler) {
	r.Route("/cart", func(r chi.Router) {
		r.Get("/{userId}", cartHandler.GetCart)
		r.Post("/add-item", cartHandler.AddItem)
		r.Patch("/update-item-quantity", cartHandler.UpdateItemQuantity)
		r.Delete("/remove-item", cartHandler.RemoveItem)
	})
}
