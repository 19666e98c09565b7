package api

import (
	"net/http"

	reqdto "wishlink/internal/handler/dto/request"
	resdto "wishlink/internal/handler/dto/response"
	"wishlink/internal/handler/httperr"
	"wishlink/internal/handler/middleware"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ContributionHandler struct {
	cmds commands.ContributionCommands
}

func NewContributionHandler(cmds commands.ContributionCommands) *ContributionHandler {
	return &ContributionHandler{cmds: cmds}
}

func (h *ContributionHandler) Add(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.AddContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	viewer := middleware.GetGuestIdentity(c)
	result, err := h.cmds.AddContribution(c.Request.Context(), itemID, req.ToCommand(), viewer)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrGuestTokenRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest token required", nil)
		case errs.Is(err, errs.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be a positive number", nil)
		case errs.Is(err, errs.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Add contribution failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AddContributionResponse{ID: result.ContributionID.String()})
}
