//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"room-pricing/internal/domain/pricing"
	"room-pricing/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// October 2023: Mon=2, Tue=3, Wed=4, Thu=5, Fri=6, Sat=7, Sun=8 for the
// first full week. Weekend means Friday through Sunday.
func at(day, hour int) time.Time {
	return time.Date(2023, time.October, day, hour, 0, 0, 0, time.UTC)
}

func calculate(t *testing.T, spec pricing.RoomSpec, start, end time.Time) *pricing.PriceBreakdown {
	t.Helper()
	calc := pricing.NewCalculator(pricing.DefaultHourlyRates())
	res := calc.Calculate(pricing.BookingRequest{RoomID: spec.ID, Start: start, End: end}, spec)
	require.True(t, res.OK, "expected success, got: %s", res.ErrorMessageVi)
	require.NotNil(t, res.Breakdown)
	return res.Breakdown
}

func componentSum(b *pricing.PriceBreakdown) int64 {
	var sum int64
	for _, c := range b.Components {
		sum += c.AmountVnd
	}
	return sum
}

func TestCalculateValidation(t *testing.T) {
	calc := pricing.NewCalculator(pricing.DefaultHourlyRates())
	spec := builder.NewRoomBuilder().WithThreeHourCombo(200000, 220000).BuildSpec()

	t.Run("end before start", func(t *testing.T) {
		res := calc.Calculate(pricing.BookingRequest{
			RoomID: spec.ID,
			Start:  at(9, 12),
			End:    at(9, 10),
		}, spec)
		assert.False(t, res.OK)
		assert.Nil(t, res.Breakdown)
		assert.Equal(t, "Thời gian trả phòng phải sau thời gian nhận phòng.", res.ErrorMessageVi)
	})

	t.Run("end equal to start", func(t *testing.T) {
		res := calc.Calculate(pricing.BookingRequest{
			RoomID: spec.ID,
			Start:  at(9, 12),
			End:    at(9, 12),
		}, spec)
		assert.False(t, res.OK)
		assert.Equal(t, "Thời gian trả phòng phải sau thời gian nhận phòng.", res.ErrorMessageVi)
	})

	t.Run("sub-minute duration", func(t *testing.T) {
		start := at(9, 12)
		res := calc.Calculate(pricing.BookingRequest{
			RoomID: spec.ID,
			Start:  start,
			End:    start.Add(30 * time.Second),
		}, spec)
		assert.False(t, res.OK)
		assert.Equal(t, "Thời lượng đặt phòng không hợp lệ (nhỏ hơn 1 giờ).", res.ErrorMessageVi)
	})

	t.Run("partial hour rounds up", func(t *testing.T) {
		spec := builder.NewRoomBuilder().BuildSpec()
		b := calculate(t, spec, at(9, 10), at(9, 13).Add(30*time.Minute))
		// 3.5h bills as 4 weekday hours.
		assert.Equal(t, int64(280000), b.TotalVnd)
	})
}

func TestCalculateHourlyOnly(t *testing.T) {
	spec := builder.NewRoomBuilder().BuildSpec()

	t.Run("weekday hours", func(t *testing.T) {
		b := calculate(t, spec, at(9, 10), at(9, 13))
		assert.Equal(t, int64(210000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		comp := b.Components[0]
		assert.Equal(t, pricing.ComponentHourlyExtension, comp.Kind)
		require.NotNil(t, comp.Hours)
		assert.Equal(t, 3, *comp.Hours)
		assert.False(t, comp.IsWeekend)
		assert.Equal(t, "Phụ trội 3 giờ (Ngày thường)", comp.DescriptionVi)
	})

	t.Run("weekend rate on Saturday", func(t *testing.T) {
		b := calculate(t, spec, at(7, 10), at(7, 13))
		assert.Equal(t, int64(240000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		assert.True(t, b.Components[0].IsWeekend)
		assert.Equal(t, "Phụ trội 3 giờ (Cuối tuần)", b.Components[0].DescriptionVi)
	})

	t.Run("weekday to weekend transition splits components", func(t *testing.T) {
		// Thu 23:00 -> Fri 02:00. One weekday hour, two weekend hours.
		b := calculate(t, spec, at(5, 23), at(6, 2))
		assert.Equal(t, int64(230000), b.TotalVnd)
		require.Len(t, b.Components, 2)

		assert.Equal(t, int64(70000), b.Components[0].AmountVnd)
		assert.False(t, b.Components[0].IsWeekend)
		assert.Equal(t, "2023-10-05", b.Components[0].Day)

		assert.Equal(t, int64(160000), b.Components[1].AmountVnd)
		assert.True(t, b.Components[1].IsWeekend)
		assert.Equal(t, "2023-10-06", b.Components[1].Day)
	})

	t.Run("long stay merges per calendar day", func(t *testing.T) {
		// Mon 00:00 -> Wed 02:00, 50 weekday hours.
		b := calculate(t, spec, at(9, 0), at(11, 2))
		assert.Equal(t, int64(3500000), b.TotalVnd)
		require.Len(t, b.Components, 3)

		wantHours := []int{24, 24, 2}
		wantDays := []string{"2023-10-09", "2023-10-10", "2023-10-11"}
		for i, comp := range b.Components {
			assert.Equal(t, pricing.ComponentHourlyExtension, comp.Kind)
			require.NotNil(t, comp.Hours)
			assert.Equal(t, wantHours[i], *comp.Hours)
			assert.Equal(t, wantDays[i], comp.Day)
		}
		assert.Equal(t, b.TotalVnd, componentSum(b))
	})
}

func TestCalculateThreeHourCombo(t *testing.T) {
	spec := builder.NewRoomBuilder().WithThreeHourCombo(200000, 220000).BuildSpec()

	t.Run("exact three hours weekday", func(t *testing.T) {
		b := calculate(t, spec, at(9, 8), at(9, 11))
		assert.Equal(t, int64(200000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		comp := b.Components[0]
		assert.Equal(t, pricing.ComponentCombo, comp.Kind)
		require.NotNil(t, comp.ComboType)
		assert.Equal(t, pricing.ComboThreeHour, *comp.ComboType)
	})

	t.Run("exact three hours weekend", func(t *testing.T) {
		b := calculate(t, spec, at(7, 8), at(7, 11))
		assert.Equal(t, int64(220000), b.TotalVnd)
	})

	t.Run("four hours prefers combo plus one hour", func(t *testing.T) {
		// Hourly only would be 280000.
		b := calculate(t, spec, at(9, 8), at(9, 12))
		assert.Equal(t, int64(270000), b.TotalVnd)
		require.Len(t, b.Components, 2)

		kinds := []pricing.ComponentKind{b.Components[0].Kind, b.Components[1].Kind}
		assert.Contains(t, kinds, pricing.ComponentCombo)
		assert.Contains(t, kinds, pricing.ComponentHourlyExtension)
		assert.Equal(t, b.TotalVnd, componentSum(b))
	})

	t.Run("hourly wins when combo is overpriced", func(t *testing.T) {
		expensive := builder.NewRoomBuilder().WithThreeHourCombo(250000, 260000).BuildSpec()
		b := calculate(t, expensive, at(9, 8), at(9, 11))
		assert.Equal(t, int64(210000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[0].Kind)
	})
}

func TestCalculateFixedWindowCombos(t *testing.T) {
	t.Run("half day exact window", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithHalfDayCombo(400000, 500000).BuildSpec()
		b := calculate(t, spec, at(9, 10), at(9, 19))
		assert.Equal(t, int64(400000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		require.NotNil(t, b.Components[0].ComboType)
		assert.Equal(t, pricing.ComboHalfDay, *b.Components[0].ComboType)
	})

	t.Run("half day inside window still pays full combo", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithHalfDayCombo(400000, 500000).BuildSpec()
		b := calculate(t, spec, at(9, 10), at(9, 18))
		assert.Equal(t, int64(400000), b.TotalVnd)
	})

	t.Run("start before window adds an hourly lead-in", func(t *testing.T) {
		// 09:00-10:00 hourly, then the combo clamped to the remaining span.
		spec := builder.NewRoomBuilder().WithHalfDayCombo(400000, 500000).BuildSpec()
		b := calculate(t, spec, at(9, 9), at(9, 18))
		assert.Equal(t, int64(470000), b.TotalVnd)
		require.Len(t, b.Components, 2)
		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[0].Kind)
		assert.Equal(t, int64(70000), b.Components[0].AmountVnd)
		assert.Equal(t, pricing.ComponentCombo, b.Components[1].Kind)
		assert.Equal(t, int64(400000), b.Components[1].AmountVnd)
	})

	t.Run("full day exact window", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithFullDayCombo(600000, 700000).BuildSpec()
		b := calculate(t, spec, at(9, 14), at(10, 12))
		assert.Equal(t, int64(600000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		require.NotNil(t, b.Components[0].ComboType)
		assert.Equal(t, pricing.ComboFullDay, *b.Components[0].ComboType)
	})

	t.Run("late check-in still covered by full day", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithFullDayCombo(600000, 700000).BuildSpec()
		b := calculate(t, spec, at(9, 16), at(10, 12))
		assert.Equal(t, int64(600000), b.TotalVnd)
	})

	t.Run("full day plus late checkout", func(t *testing.T) {
		// Mon 14:00 -> Tue 14:00. Combo to 12:00, two extra weekday hours.
		spec := builder.NewRoomBuilder().WithFullDayCombo(600000, 700000).BuildSpec()
		b := calculate(t, spec, at(9, 14), at(10, 14))
		assert.Equal(t, int64(740000), b.TotalVnd)
		require.Len(t, b.Components, 2)
		assert.Equal(t, pricing.ComponentCombo, b.Components[0].Kind)
		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[1].Kind)
		require.NotNil(t, b.Components[1].Hours)
		assert.Equal(t, 2, *b.Components[1].Hours)
	})

	t.Run("early check-in before full day window", func(t *testing.T) {
		// Mon 12:00 -> Tue 12:00. Two hourly hours, then the combo.
		spec := builder.NewRoomBuilder().WithFullDayCombo(600000, 700000).BuildSpec()
		b := calculate(t, spec, at(9, 12), at(10, 12))
		assert.Equal(t, int64(740000), b.TotalVnd)
		require.Len(t, b.Components, 2)
		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[0].Kind)
		require.NotNil(t, b.Components[0].Hours)
		assert.Equal(t, 2, *b.Components[0].Hours)
		assert.Equal(t, pricing.ComponentCombo, b.Components[1].Kind)
	})

	t.Run("overnight beats full day for an evening arrival", func(t *testing.T) {
		// Thu 20:00 -> Fri 08:00. Two weekday hours, then the overnight combo
		// priced off its Thursday start.
		spec := builder.NewRoomBuilder().
			WithOvernightCombo(300000, 350000).
			WithFullDayCombo(600000, 700000).
			BuildSpec()
		b := calculate(t, spec, at(5, 20), at(6, 8))
		assert.Equal(t, int64(440000), b.TotalVnd)
		require.Len(t, b.Components, 2)

		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[0].Kind)
		assert.Equal(t, int64(140000), b.Components[0].AmountVnd)
		assert.False(t, b.Components[0].IsWeekend)

		assert.Equal(t, pricing.ComponentCombo, b.Components[1].Kind)
		require.NotNil(t, b.Components[1].ComboType)
		assert.Equal(t, pricing.ComboOvernight, *b.Components[1].ComboType)
		assert.Equal(t, int64(300000), b.Components[1].AmountVnd)
		assert.False(t, b.Components[1].IsWeekend)
	})

	t.Run("exact component layout", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithOvernightCombo(300000, 350000).BuildSpec()
		b := calculate(t, spec, at(5, 20), at(6, 8))

		hours := 2
		comboType := pricing.ComboOvernight
		want := []pricing.PriceComponent{
			{
				Kind:          pricing.ComponentHourlyExtension,
				DescriptionVi: "Phụ trội 2 giờ (Ngày thường)",
				Day:           "2023-10-05",
				AmountVnd:     140000,
				Hours:         &hours,
			},
			{
				Kind:          pricing.ComponentCombo,
				DescriptionVi: "Nghỉ qua đêm (22h-9h)",
				Day:           "2023-10-05",
				AmountVnd:     300000,
				ComboType:     &comboType,
			},
		}
		if diff := cmp.Diff(want, b.Components); diff != "" {
			t.Errorf("components mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestCalculateFullDayChaining(t *testing.T) {
	spec := builder.NewRoomBuilder().WithFullDayCombo(600000, 700000).BuildSpec()

	t.Run("weekday chain absorbs the turnover gap", func(t *testing.T) {
		// Tue 14:00 -> Thu 12:00. Two full days with the 12:00-14:00 gap free.
		b := calculate(t, spec, at(10, 14), at(12, 12))
		assert.Equal(t, int64(1200000), b.TotalVnd)
		require.Len(t, b.Components, 2)
		for _, comp := range b.Components {
			assert.Equal(t, pricing.ComponentCombo, comp.Kind)
			assert.Equal(t, int64(600000), comp.AmountVnd)
		}
	})

	t.Run("weekend chain", func(t *testing.T) {
		// Fri 14:00 -> Sun 12:00, both days at the weekend price.
		b := calculate(t, spec, at(6, 14), at(8, 12))
		assert.Equal(t, int64(1400000), b.TotalVnd)
		require.Len(t, b.Components, 2)
		assert.Equal(t, "2023-10-06", b.Components[0].Day)
		assert.Equal(t, "2023-10-07", b.Components[1].Day)
		for _, comp := range b.Components {
			assert.Equal(t, pricing.ComponentCombo, comp.Kind)
			assert.Equal(t, int64(700000), comp.AmountVnd)
			assert.True(t, comp.IsWeekend)
		}
	})

	t.Run("three day chain", func(t *testing.T) {
		// Fri 14:00 -> Mon 12:00, three bridged full days.
		b := calculate(t, spec, at(6, 14), at(9, 12))
		assert.Equal(t, int64(2100000), b.TotalVnd)
		require.Len(t, b.Components, 3)
		for _, comp := range b.Components {
			assert.Equal(t, pricing.ComponentCombo, comp.Kind)
			assert.Equal(t, int64(700000), comp.AmountVnd)
		}
	})

	t.Run("gap is billed when no further full day fits", func(t *testing.T) {
		// Mon 14:00 -> Wed 02:00. The 12:00 turnover is not bridged because
		// less than a day remains, so the two gap hours are billed before the
		// second combo, which is clamped at the end of the span.
		b := calculate(t, spec, at(9, 14), at(11, 2))
		assert.Equal(t, int64(1340000), b.TotalVnd)
		require.Len(t, b.Components, 3)
		assert.Equal(t, pricing.ComponentCombo, b.Components[0].Kind)
		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[1].Kind)
		require.NotNil(t, b.Components[1].Hours)
		assert.Equal(t, 2, *b.Components[1].Hours)
		assert.Equal(t, pricing.ComponentCombo, b.Components[2].Kind)
		assert.Equal(t, b.TotalVnd, componentSum(b))
	})
}

func TestCalculateMinimumStay(t *testing.T) {
	t.Run("one hour billed as three hour combo", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithThreeHourCombo(200000, 220000).BuildSpec()
		b := calculate(t, spec, at(9, 10), at(9, 11))
		assert.Equal(t, int64(200000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		comp := b.Components[0]
		assert.Equal(t, pricing.ComponentCombo, comp.Kind)
		require.NotNil(t, comp.ComboType)
		assert.Equal(t, pricing.ComboThreeHour, *comp.ComboType)
		require.NotNil(t, comp.Hours)
		assert.Equal(t, 3, *comp.Hours)
	})

	t.Run("two weekend hours billed at weekend combo price", func(t *testing.T) {
		spec := builder.NewRoomBuilder().WithThreeHourCombo(200000, 220000).BuildSpec()
		b := calculate(t, spec, at(7, 10), at(7, 12))
		assert.Equal(t, int64(220000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		assert.True(t, b.Components[0].IsWeekend)
	})

	t.Run("no combo falls back to hourly", func(t *testing.T) {
		spec := builder.NewRoomBuilder().BuildSpec()
		b := calculate(t, spec, at(9, 10), at(9, 11))
		assert.Equal(t, int64(70000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		assert.Equal(t, pricing.ComponentHourlyExtension, b.Components[0].Kind)
	})

	t.Run("cheap combo wins outright without the override", func(t *testing.T) {
		// A clamped 100000 combo already beats two weekday hours at 140000,
		// so the solver picks it and the floor never has to kick in.
		spec := builder.NewRoomBuilder().WithThreeHourCombo(100000, 110000).BuildSpec()
		b := calculate(t, spec, at(9, 10), at(9, 12))
		assert.Equal(t, int64(100000), b.TotalVnd)
		require.Len(t, b.Components, 1)
		assert.Equal(t, pricing.ComponentCombo, b.Components[0].Kind)
	})
}

func TestCalculateProperties(t *testing.T) {
	spec := builder.NewRoomBuilder().
		WithThreeHourCombo(200000, 220000).
		WithHalfDayCombo(400000, 500000).
		WithOvernightCombo(300000, 350000).
		WithFullDayCombo(600000, 700000).
		BuildSpec()
	calc := pricing.NewCalculator(pricing.DefaultHourlyRates())

	t.Run("every whole-hour span is feasible", func(t *testing.T) {
		start := at(5, 0)
		for hours := 1; hours <= 96; hours++ {
			res := calc.Calculate(pricing.BookingRequest{
				RoomID: spec.ID,
				Start:  start,
				End:    start.Add(time.Duration(hours) * time.Hour),
			}, spec)
			require.True(t, res.OK, "span of %d hours", hours)
			assert.Equal(t, res.Breakdown.TotalVnd, componentSum(res.Breakdown), "span of %d hours", hours)
		}
	})

	t.Run("repeated calls agree", func(t *testing.T) {
		req := pricing.BookingRequest{RoomID: spec.ID, Start: at(6, 14), End: at(9, 12)}
		first := calc.Calculate(req, spec)
		second := calc.Calculate(req, spec)
		require.True(t, first.OK)
		require.True(t, second.OK)
		assert.Equal(t, first.Breakdown, second.Breakdown)
	})

	t.Run("longer spans never get cheaper without bridging", func(t *testing.T) {
		hourly := builder.NewRoomBuilder().WithThreeHourCombo(200000, 220000).BuildSpec()
		start := at(9, 8)
		var prev int64
		for hours := 3; hours <= 72; hours++ {
			res := calc.Calculate(pricing.BookingRequest{
				RoomID: hourly.ID,
				Start:  start,
				End:    start.Add(time.Duration(hours) * time.Hour),
			}, hourly)
			require.True(t, res.OK)
			assert.GreaterOrEqual(t, res.Breakdown.TotalVnd, prev, "span of %d hours", hours)
			prev = res.Breakdown.TotalVnd
		}
	})
}
