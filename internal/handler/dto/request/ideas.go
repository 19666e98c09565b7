package request

type GenerateIdeasRequest struct {
	Prompt string `json:"prompt" binding:"required,max=1000"`
}
