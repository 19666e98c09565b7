package api

import (
	"net/http"

	reqdto "wishlink/internal/handler/dto/request"
	resdto "wishlink/internal/handler/dto/response"
	"wishlink/internal/handler/httperr"
	"wishlink/internal/handler/middleware"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/commands"
	"wishlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WishlistHandler struct {
	cmds  commands.WishlistCommands
	listQ queries.WishlistQueries
	itemQ queries.ItemQueries
}

func NewWishlistHandler(cmds commands.WishlistCommands, listQ queries.WishlistQueries, itemQ queries.ItemQueries) *WishlistHandler {
	return &WishlistHandler{cmds: cmds, listQ: listQ, itemQ: itemQ}
}

func (h *WishlistHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	var req reqdto.CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event date", nil)
		return
	}

	result, err := h.cmds.CreateWishlist(c.Request.Context(), cmd, userID)
	if err != nil {
		if errs.Is(err, errs.ErrDomainValidation) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid wishlist data", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create wishlist failed", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateWishlistResponse{ID: result.WishlistID.String()})
}

// Get serves the shared wishlist page, so it requires no authentication.
func (h *WishlistHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	view, err := h.listQ.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrWishlistNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Wishlist not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load wishlist", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWishlistView(view))
}

func (h *WishlistHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	views, err := h.listQ.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load wishlists", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWishlistList(views))
}

func (h *WishlistHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if err := h.cmds.DeleteWishlist(c.Request.Context(), id, userID); err != nil {
		switch {
		case errs.Is(err, errs.ErrWishlistNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Wishlist not found", nil)
		case errs.Is(err, errs.ErrWishlistNotOwned):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not your wishlist", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete wishlist failed", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// ListItems returns the items of a shared list with funding progress and the
// viewer-relative reservation state.
func (h *WishlistHandler) ListItems(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	if _, err := h.listQ.GetByID(c.Request.Context(), id); err != nil {
		if errs.Is(err, errs.ErrWishlistNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Wishlist not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load wishlist", nil)
		return
	}

	viewer := middleware.GetGuestIdentity(c)
	views, err := h.itemQ.ListByWishlist(c.Request.Context(), id, viewer)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load items", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemList(views))
}
