package handler

import "github.com/quickshop/store-api/internal/core/domain"

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type cartResponse struct {
	ID    string   `json:"id"`
	Owner string   `json:"owner"`
	Items []string `json:"items"`
}

func toCartResponse(cart *domain.Cart) cartResponse {
	return cartResponse{ID: cart.ID, Owner: cart.Owner, Items: cart.Items}
}
