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

type ItemHandler struct {
	cmds commands.ItemCommands
}

func NewItemHandler(cmds commands.ItemCommands) *ItemHandler {
	return &ItemHandler{cmds: cmds}
}

func (h *ItemHandler) Add(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	wishlistID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.AddItem(c.Request.Context(), wishlistID, req.ToCommand(), userID)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrWishlistNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Wishlist not found", nil)
		case errs.Is(err, errs.ErrWishlistNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your wishlist", nil)
		case errs.Is(err, errs.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid item data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Add item failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AddItemResponse{ID: result.ItemID.String()})
}

func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteItem(c.Request.Context(), itemID, userID); err != nil {
		switch {
		case errs.Is(err, errs.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		case errs.Is(err, errs.ErrWishlistNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your wishlist", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete item failed", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleReservation flips the viewer's hold on the item: claim when free or
// held by someone else, release when the viewer already holds it.
func (h *ItemHandler) ToggleReservation(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	viewer := middleware.GetGuestIdentity(c)
	result, err := h.cmds.ToggleReservation(c.Request.Context(), itemID, viewer)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrGuestTokenRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Guest token required", nil)
		case errs.Is(err, errs.ErrItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Toggle reservation failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.ToggleReservationResponse{Reserved: result.Reserved})
}
