package response

import (
	"wishlink/internal/usecase/queries"
)

type WishlistResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	OwnerID     *string `json:"owner_id,omitempty"`
	EventDate   *string `json:"event_date,omitempty"`
	EventPassed bool    `json:"event_passed"`
	CreatedAt   int64   `json:"created_at"`
}

func FromWishlistView(v *queries.WishlistView) *WishlistResponse {
	resp := &WishlistResponse{
		ID:          v.ID.String(),
		Title:       v.Title,
		EventPassed: v.EventPassed,
		CreatedAt:   v.CreatedAt.Unix(),
	}
	if v.OwnerID != nil {
		s := v.OwnerID.String()
		resp.OwnerID = &s
	}
	if v.EventDate != nil {
		d := v.EventDate.Format("2006-01-02")
		resp.EventDate = &d
	}
	return resp
}

func FromWishlistList(views []*queries.WishlistView) []*WishlistResponse {
	res := make([]*WishlistResponse, len(views))
	for i, v := range views {
		res[i] = FromWishlistView(v)
	}
	return res
}

type CreateWishlistResponse struct {
	ID string `json:"id"`
}
