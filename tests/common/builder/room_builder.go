//go:build unit || e2e

package builder

import (
	"room-pricing/internal/domain/catalog"
	"room-pricing/internal/domain/pricing"
)

type RoomBuilder struct {
	ID       string
	Category string
	Name     string
	Combos   []pricing.ComboPricing
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:       "P201",
		Category: "B",
		Name:     "Ocean Blue",
		Combos:   nil,
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

func (r *RoomBuilder) WithThreeHourCombo(weekday, weekend int64) *RoomBuilder {
	r.Combos = append(r.Combos, pricing.ComboPricing{
		RoomID:          r.ID,
		Type:            pricing.ComboThreeHour,
		Label:           "Nghỉ theo giờ (3 tiếng)",
		WeekdayPriceVnd: weekday,
		WeekendPriceVnd: weekend,
		Window: pricing.ComboWindow{
			Kind:          pricing.WindowThreeHour,
			DurationHours: 3,
		},
	})
	return r
}

func (r *RoomBuilder) WithHalfDayCombo(weekday, weekend int64) *RoomBuilder {
	r.Combos = append(r.Combos, pricing.ComboPricing{
		RoomID:          r.ID,
		Type:            pricing.ComboHalfDay,
		Label:           "Nghỉ bán ngày (10h-19h)",
		WeekdayPriceVnd: weekday,
		WeekendPriceVnd: weekend,
		Window: pricing.ComboWindow{
			Kind:          pricing.WindowHalfDayDay,
			StartLocal:    "10:00",
			EndLocal:      "19:00",
			DurationHours: 9,
		},
	})
	return r
}

func (r *RoomBuilder) WithOvernightCombo(weekday, weekend int64) *RoomBuilder {
	r.Combos = append(r.Combos, pricing.ComboPricing{
		RoomID:          r.ID,
		Type:            pricing.ComboOvernight,
		Label:           "Nghỉ qua đêm (22h-9h)",
		WeekdayPriceVnd: weekday,
		WeekendPriceVnd: weekend,
		Window: pricing.ComboWindow{
			Kind:            pricing.WindowHalfDayNight,
			StartLocal:      "22:00",
			EndLocal:        "09:00",
			CrossesMidnight: true,
			DurationHours:   11,
		},
	})
	return r
}

func (r *RoomBuilder) WithFullDayCombo(weekday, weekend int64) *RoomBuilder {
	r.Combos = append(r.Combos, pricing.ComboPricing{
		RoomID:          r.ID,
		Type:            pricing.ComboFullDay,
		Label:           "Nghỉ 1 ngày (14h-12h)",
		WeekdayPriceVnd: weekday,
		WeekendPriceVnd: weekend,
		Window: pricing.ComboWindow{
			Kind:            pricing.WindowFullDay,
			StartLocal:      "14:00",
			EndLocal:        "12:00",
			CrossesMidnight: true,
			DurationHours:   22,
		},
	})
	return r
}

func (r *RoomBuilder) BuildDomain() catalog.Room {
	return catalog.Room{
		ID:       r.ID,
		Category: r.Category,
		Name:     r.Name,
		Pricing:  r.Combos,
	}
}

func (r *RoomBuilder) BuildSpec() pricing.RoomSpec {
	return pricing.RoomSpec{
		ID:     r.ID,
		Combos: r.Combos,
	}
}
