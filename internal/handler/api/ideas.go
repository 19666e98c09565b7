package api

import (
	"net/http"

	reqdto "wishlink/internal/handler/dto/request"
	resdto "wishlink/internal/handler/dto/response"
	"wishlink/internal/handler/httperr"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase"

	"github.com/gin-gonic/gin"
)

type IdeasHandler struct {
	ideas usecase.IdeasUseCase
}

func NewIdeasHandler(ideas usecase.IdeasUseCase) *IdeasHandler {
	return &IdeasHandler{ideas: ideas}
}

func (h *IdeasHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateIdeasRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	ideas, err := h.ideas.GenerateIdeas(c.Request.Context(), req.Prompt)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrAPIKeyMissing):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Idea generation is not configured", nil)
		case errs.Is(err, errs.ErrGeneration):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Could not generate ideas", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Idea generation failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"ideas": resdto.FromIdeas(ideas)})
}
