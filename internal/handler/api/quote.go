package api

import (
	"errors"
	"net/http"

	reqdto "room-pricing/internal/handler/dto/request"
	resdto "room-pricing/internal/handler/dto/response"
	"room-pricing/internal/handler/httperr"
	"room-pricing/internal/pkg/errs"
	"room-pricing/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{
		quoteQueries: quoteQueries,
	}
}

// @Summary Create a price quote
// @Description Compute the minimum-cost price for a booking span against the room's combo catalog
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body reqdto.CreateQuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var req reqdto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	params := queries.QuoteParams{
		RoomID:    req.RoomID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Source:    req.GetSource(),
	}

	quoteView, err := h.quoteQueries.QuotePrice(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute quote", nil)
		}
		return
	}

	// Validation failures from the engine travel inside the view (ok=false
	// plus a Vietnamese message), not as HTTP errors.
	c.JSON(http.StatusOK, resdto.FromQuoteView(quoteView))
}
