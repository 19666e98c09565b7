package response

import (
	"wishlink/internal/usecase/queries"
)

type ItemResponse struct {
	ID                string  `json:"id"`
	WishlistID        string  `json:"wishlist_id"`
	Name              string  `json:"name"`
	PriceCents        int64   `json:"price_cents"`
	ImageURL          *string `json:"image_url,omitempty"`
	ProductURL        *string `json:"product_url,omitempty"`
	FundedAmountCents int64   `json:"funded_amount_cents"`
	FundedPercent     float64 `json:"funded_percent"`
	IsFunded          bool    `json:"is_funded"`
	Reserved          bool    `json:"reserved"`
	ReservationState  string  `json:"reservation_state"`
	CreatedAt         int64   `json:"created_at"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	return &ItemResponse{
		ID:                v.ID.String(),
		WishlistID:        v.WishlistID.String(),
		Name:              v.Name,
		PriceCents:        v.PriceCents,
		ImageURL:          v.ImageURL,
		ProductURL:        v.ProductURL,
		FundedAmountCents: v.FundedAmountCents,
		FundedPercent:     v.FundedPercent,
		IsFunded:          v.IsFunded,
		Reserved:          v.Reserved,
		ReservationState:  v.ReservationState,
		CreatedAt:         v.CreatedAt.Unix(),
	}
}

func FromItemList(views []*queries.ItemView) []*ItemResponse {
	res := make([]*ItemResponse, len(views))
	for i, v := range views {
		res[i] = FromItemView(v)
	}
	return res
}

type AddItemResponse struct {
	ID string `json:"id"`
}

type ToggleReservationResponse struct {
	Reserved bool `json:"reserved"`
}
