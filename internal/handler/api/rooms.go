package api

import (
	"errors"
	"net/http"

	resdto "room-pricing/internal/handler/dto/response"
	"room-pricing/internal/handler/httperr"
	"room-pricing/internal/pkg/errs"
	"room-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	roomQueries queries.RoomQueries
}

func NewRoomHandler(roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		roomQueries: roomQueries,
	}
}

// @Summary List rooms
// @Description List all rooms with their combo catalogs
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	roomViews, err := h.roomQueries.ListRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list rooms", nil)
		return
	}

	response := make([]*resdto.RoomResponse, len(roomViews))
	for i, view := range roomViews {
		response[i] = resdto.FromRoomView(view)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get room
// @Description Get one room with its combo catalog
// @Tags rooms
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} map[string]string
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	roomView, err := h.roomQueries.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(roomView))
}
