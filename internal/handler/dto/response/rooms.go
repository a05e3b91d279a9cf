package response

import (
	"room-pricing/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Combos   []ComboResponse `json:"combos"`
}

type ComboResponse struct {
	Type            string `json:"type"`
	Label           string `json:"label"`
	WeekdayPriceVnd int64  `json:"weekdayPriceVnd"`
	WeekendPriceVnd int64  `json:"weekendPriceVnd"`
	WindowStart     string `json:"windowStart"`
	WindowEnd       string `json:"windowEnd"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
