package request

import (
	"time"

	"wishlink/internal/usecase/commands"
)

type CreateWishlistRequest struct {
	Title     string  `json:"title" binding:"required,max=200"`
	EventDate *string `json:"event_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *CreateWishlistRequest) ToCommand() (commands.CreateWishlistRequest, error) {
	cmd := commands.CreateWishlistRequest{Title: r.Title}
	if r.EventDate != nil {
		d, err := time.Parse("2006-01-02", *r.EventDate)
		if err != nil {
			return commands.CreateWishlistRequest{}, err
		}
		cmd.EventDate = &d
	}
	return cmd, nil
}
