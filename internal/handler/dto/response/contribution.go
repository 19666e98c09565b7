package response

type AddContributionResponse struct {
	ID string `json:"id"`
}
