package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type QuoteView struct {
	ID             uuid.UUID      `json:"id"`
	RoomID         string         `json:"room_id"`
	RoomName       string         `json:"room_name"`
	RoomCategory   string         `json:"room_category"`
	StartTime      time.Time      `json:"start_time"`
	EndTime        time.Time      `json:"end_time"`
	OK             bool           `json:"ok"`
	Breakdown      *BreakdownView `json:"breakdown,omitempty"`
	ErrorMessageVi *string        `json:"error_message_vi,omitempty"`
}

type BreakdownView struct {
	TotalVnd   int64           `json:"total_vnd"`
	Components []ComponentView `json:"components"`
	SummaryVi  string          `json:"summary_vi"`
	Warnings   []string        `json:"warnings"`
}

type ComponentView struct {
	Kind          string  `json:"kind"`
	DescriptionVi string  `json:"description_vi"`
	Day           string  `json:"day"`
	IsWeekend     bool    `json:"is_weekend"`
	AmountVnd     int64   `json:"amount_vnd"`
	ComboType     *string `json:"combo_type,omitempty"`
	Hours         *int    `json:"hours,omitempty"`
}

type RoomView struct {
	ID       string      `json:"id"`
	Category string      `json:"category"`
	Name     string      `json:"name"`
	Combos   []ComboView `json:"combos"`
}

type ComboView struct {
	Type            string `json:"type"`
	Label           string `json:"label"`
	WeekdayPriceVnd int64  `json:"weekday_price_vnd"`
	WeekendPriceVnd int64  `json:"weekend_price_vnd"`
	WindowStart     string `json:"window_start"`
	WindowEnd       string `json:"window_end"`
}
