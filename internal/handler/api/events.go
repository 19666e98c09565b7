package api

import (
	"io"
	"net/http"
	"time"

	"wishlink/internal/handler/httperr"
	"wishlink/internal/infra/notify"
	"wishlink/internal/pkg/errs"
	"wishlink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EventsHandler streams wishlist change notifications over SSE so open guest
// pages can refetch without polling.
type EventsHandler struct {
	hub   *notify.Hub
	listQ queries.WishlistQueries
}

func NewEventsHandler(hub *notify.Hub, listQ queries.WishlistQueries) *EventsHandler {
	return &EventsHandler{hub: hub, listQ: listQ}
}

const heartbeatInterval = 15 * time.Second

func (h *EventsHandler) Stream(c *gin.Context) {
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

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	events, cancel := h.hub.Subscribe(id)
	defer cancel()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	clientGone := c.Request.Context().Done()

	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case ev := <-events:
			c.SSEvent("change", ev)
			return true
		case <-heartbeat.C:
			c.SSEvent("heartbeat", time.Now().Unix())
			return true
		}
	})
}
