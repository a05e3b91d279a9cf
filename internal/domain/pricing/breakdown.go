package pricing

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type ComponentKind string

const (
	ComponentCombo           ComponentKind = "combo"
	ComponentHourlyExtension ComponentKind = "hourlyExtension"
)

// BookingRequest carries one pricing request. Start and End are local
// wall-clock timestamps; Source is informational only.
type BookingRequest struct {
	RoomID string
	Start  time.Time
	End    time.Time
	Source string
}

// PriceComponent is one billable line. Day and IsWeekend refer to the calendar
// day the segment starts on. ComboType is set only for combo components,
// Hours only where an hour count is meaningful.
type PriceComponent struct {
	Kind          ComponentKind
	DescriptionVi string
	Day           string // YYYY-MM-DD
	IsWeekend     bool
	AmountVnd     int64
	ComboType     *ComboType
	Hours         *int
}

type PriceBreakdown struct {
	TotalVnd   int64
	Components []PriceComponent
	SummaryVi  string
	Warnings   []string
}

// CalculatorResult is the engine's outcome. On success Breakdown is set and
// ErrorMessageVi empty; on failure the reverse. Validation problems are
// results, not errors: the engine has no panic path for bad input.
type CalculatorResult struct {
	OK             bool
	Breakdown      *PriceBreakdown
	ErrorMessageVi string
}

func failure(msg string) CalculatorResult {
	return CalculatorResult{OK: false, ErrorMessageVi: msg}
}

func hourlyDescription(hours int, weekend bool) string {
	day := "Ngày thường"
	if weekend {
		day = "Cuối tuần"
	}
	if hours == 1 {
		return fmt.Sprintf("Phụ trội 1 giờ (%s)", day)
	}
	return fmt.Sprintf("Phụ trội %d giờ (%s)", hours, day)
}

// GenerateExplanationVi renders a one-line Vietnamese summary of a breakdown,
// grouped by calendar day in chronological order.
func GenerateExplanationVi(b *PriceBreakdown) string {
	if b == nil || len(b.Components) == 0 {
		return ""
	}

	byDay := map[string][]string{}
	for _, comp := range b.Components {
		byDay[comp.Day] = append(byDay[comp.Day], fmt.Sprintf("%s: %sđ", comp.DescriptionVi, formatVnd(comp.AmountVnd)))
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, fmt.Sprintf("%s: %s", day, strings.Join(byDay[day], ", ")))
	}

	return fmt.Sprintf("Tổng cộng: %sđ. Chi tiết: %s.", formatVnd(b.TotalVnd), strings.Join(parts, "; "))
}

// formatVnd inserts dot thousands separators, the Vietnamese convention.
func formatVnd(amount int64) string {
	s := fmt.Sprintf("%d", amount)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
