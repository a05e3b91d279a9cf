package response

import (
	"time"

	"room-pricing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type QuoteResponse struct {
	ID             uuid.UUID          `json:"id"`
	RoomID         string             `json:"roomId"`
	RoomName       string             `json:"roomName"`
	RoomCategory   string             `json:"roomCategory"`
	StartTime      time.Time          `json:"startTime"`
	EndTime        time.Time          `json:"endTime"`
	OK             bool               `json:"ok"`
	Breakdown      *BreakdownResponse `json:"breakdown,omitempty"`
	ErrorMessageVi *string            `json:"errorMessageVi,omitempty"`
}

type BreakdownResponse struct {
	TotalVnd   int64               `json:"totalVnd"`
	Components []ComponentResponse `json:"components"`
	SummaryVi  string              `json:"summaryVi"`
	Warnings   []string            `json:"warnings"`
}

type ComponentResponse struct {
	Kind          string  `json:"kind"`
	DescriptionVi string  `json:"descriptionVi"`
	Day           string  `json:"day"`
	IsWeekend     bool    `json:"isWeekend"`
	AmountVnd     int64   `json:"amountVnd"`
	ComboType     *string `json:"comboType,omitempty"`
	Hours         *int    `json:"hours,omitempty"`
}

func FromQuoteView(view *queries.QuoteView) *QuoteResponse {
	var resp QuoteResponse
	_ = copier.Copy(&resp, view)
	return &resp
}
