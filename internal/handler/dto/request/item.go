package request

import (
	"wishlink/internal/usecase/commands"
)

type AddItemRequest struct {
	Name       string  `json:"name" binding:"required,max=200"`
	PriceCents int64   `json:"price_cents" binding:"required,gt=0"`
	ImageURL   *string `json:"image_url" binding:"omitempty,url"`
	ProductURL *string `json:"product_url" binding:"omitempty,url"`
}

func (r *AddItemRequest) ToCommand() commands.AddItemRequest {
	return commands.AddItemRequest{
		Name:       r.Name,
		PriceCents: r.PriceCents,
		ImageURL:   r.ImageURL,
		ProductURL: r.ProductURL,
	}
}
