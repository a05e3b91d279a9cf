package pricing

import "time"

type ComboType string

const (
	ComboThreeHour ComboType = "threeHour"
	ComboHalfDay   ComboType = "halfDay"
	ComboOvernight ComboType = "overnight"
	ComboFullDay   ComboType = "fullDay"
)

// ComboPricing is one sellable package of a room. Amounts are VND whole units.
type ComboPricing struct {
	RoomID          string
	Type            ComboType
	Label           string
	WeekdayPriceVnd int64
	WeekendPriceVnd int64
	Window          ComboWindow
}

// PriceFor picks the applicable price by the weekend status of the instant the
// combo would start at.
func (c ComboPricing) PriceFor(weekend bool) int64 {
	if weekend {
		return c.WeekendPriceVnd
	}
	return c.WeekdayPriceVnd
}

// IsInert reports whether the combo can never be selected.
func (c ComboPricing) IsInert() bool {
	return c.WeekdayPriceVnd <= 0 && c.WeekendPriceVnd <= 0
}

// RoomSpec is the slice of a room the engine needs: its identity and combo
// catalog. The catalog is read-only input; the engine never mutates it.
type RoomSpec struct {
	ID     string
	Combos []ComboPricing
}

// HourlyRates are the per-hour overage rates outside any combo.
type HourlyRates struct {
	WeekdayVnd int64
	WeekendVnd int64
}

func DefaultHourlyRates() HourlyRates {
	return HourlyRates{WeekdayVnd: 70000, WeekendVnd: 80000}
}

func (r HourlyRates) For(weekend bool) int64 {
	if weekend {
		return r.WeekendVnd
	}
	return r.WeekdayVnd
}

// IsWeekend reports the house weekend rule: Friday through Sunday all bill at
// the weekend rate. Intentionally a 3-day window, not the calendar weekend.
func IsWeekend(t time.Time) bool {
	switch t.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	}
	return false
}
