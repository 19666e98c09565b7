package response

import (
	"wishlink/internal/usecase"
)

type IdeaResponse struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageQuery  string  `json:"imageQuery"`
}

func FromIdeas(ideas []usecase.Idea) []IdeaResponse {
	res := make([]IdeaResponse, len(ideas))
	for i, idea := range ideas {
		res[i] = IdeaResponse{
			Name:        idea.Name,
			Price:       idea.Price,
			Description: idea.Description,
			ImageQuery:  idea.ImageQuery,
		}
	}
	return res
}
