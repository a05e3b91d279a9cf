package request

import (
	"strings"
	"time"
)

type CreateQuoteRequest struct {
	RoomID    string    `json:"room_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Source    *string   `json:"source,omitempty"`
}

func (r CreateQuoteRequest) GetSource() string {
	if r.Source == nil {
		return ""
	}
	return strings.TrimSpace(*r.Source)
}
