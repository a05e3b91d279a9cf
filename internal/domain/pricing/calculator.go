package pricing

import (
	"math"
	"time"
)

const (
	msgInvalidInterval   = "Thời gian trả phòng phải sau thời gian nhận phòng."
	msgInvalidDuration   = "Thời lượng đặt phòng không hợp lệ (nhỏ hơn 1 giờ)."
	msgNoFeasiblePricing = "Không tìm được giá phù hợp."
	msgCalculated        = "Đã tính toán thành công"
)

type moveKind int

const (
	moveHourly moveKind = iota
	moveBridge
	moveCombo
)

// move is the action that reached a step during the sweep. Exactly one family
// applies per kind: combo moves carry the combo, hourly and bridge moves an
// hour count.
type move struct {
	kind  moveKind
	combo *ComboPricing
	cost  int64
	desc  string
	hours int
}

// Calculator prices a booking span against a room's combo catalog. It is a
// pure function of its inputs: each call allocates its own tables and shares
// nothing, so concurrent calls need no coordination.
type Calculator struct {
	rates HourlyRates
}

func NewCalculator(rates HourlyRates) *Calculator {
	return &Calculator{rates: rates}
}

// Calculate finds the minimum-cost exact cover of the requested span using
// combos and hourly extensions, as a shortest path over whole-hour steps.
// Step i stands for the instant start + i hours; the sweep runs a forward DP
// over 0..totalHours, which is Dijkstra on a DAG since every move points
// strictly forward with non-negative cost.
func (c *Calculator) Calculate(req BookingRequest, room RoomSpec) CalculatorResult {
	if !req.Start.Before(req.End) {
		return failure(msgInvalidInterval)
	}

	// Any started hour bills as a whole hour.
	minutes := int(req.End.Sub(req.Start) / time.Minute)
	totalHours := (minutes + 59) / 60
	if totalHours <= 0 {
		return failure(msgInvalidDuration)
	}

	const unreached = int64(math.MaxInt64)
	cost := make([]int64, totalHours+1)
	parent := make([]int, totalHours+1)
	moves := make([]*move, totalHours+1)
	for i := range cost {
		cost[i] = unreached
		parent[i] = -1
	}
	cost[0] = 0

	relax := func(from, to int, m move) {
		if cost[from]+m.cost < cost[to] {
			cost[to] = cost[from] + m.cost
			parent[to] = from
			mv := m
			moves[to] = &mv
		}
	}

	for i := 0; i < totalHours; i++ {
		if cost[i] == unreached {
			continue
		}

		current := req.Start.Add(time.Duration(i) * time.Hour)
		weekend := IsWeekend(current)

		relax(i, i+1, move{
			kind:  moveHourly,
			cost:  c.rates.For(weekend),
			desc:  hourlyDescription(1, weekend),
			hours: 1,
		})

		// Zero-cost bridge across the 12:00-14:00 turnover gap between two
		// consecutive full-day combos. Only from a step reached by a full-day
		// combo, and only when a further full-day combo still fits.
		if current.Hour() == 12 && current.Minute() == 0 {
			if prev := moves[i]; prev != nil && prev.kind == moveCombo &&
				prev.combo != nil && prev.combo.Type == ComboFullDay &&
				totalHours-i >= 24 {
				relax(i, i+2, move{
					kind:  moveBridge,
					cost:  0,
					desc:  "Chuyển tiếp combo (Miễn phí)",
					hours: 2,
				})
			}
		}

		for idx := range room.Combos {
			combo := room.Combos[idx]
			price := combo.PriceFor(weekend)
			if price <= 0 {
				continue
			}

			coverageEnd, applies := combo.Window.CoverageEnd(current)
			if !applies {
				continue
			}

			advance := int(coverageEnd.Sub(current) / time.Hour)
			if remaining := totalHours - i; advance > remaining {
				// A combo near the end pays full price for partial coverage.
				advance = remaining
			}
			if advance <= 0 {
				continue
			}

			relax(i, i+advance, move{
				kind:  moveCombo,
				combo: &room.Combos[idx],
				cost:  price,
				desc:  combo.Label,
				hours: advance,
			})
		}
	}

	if cost[totalHours] == unreached {
		return failure(msgNoFeasiblePricing)
	}

	components := c.backtrack(req.Start, parent, moves, totalHours)
	totalVnd := cost[totalHours]

	// Minimum-stay rule: a 1- or 2-hour booking is billed at least the
	// floating 3-hour combo price when the room sells one.
	if totalHours < 3 {
		if combo, total, ok := c.minimumStay(req.Start, room, totalVnd); ok {
			totalVnd = total
			hours := 3
			comboType := combo.Type
			components = []PriceComponent{{
				Kind:          ComponentCombo,
				ComboType:     &comboType,
				DescriptionVi: combo.Label,
				Day:           req.Start.Format("2006-01-02"),
				IsWeekend:     IsWeekend(req.Start),
				AmountVnd:     total,
				Hours:         &hours,
			}}
		}
	}

	breakdown := &PriceBreakdown{
		TotalVnd:   totalVnd,
		Components: components,
		SummaryVi:  msgCalculated,
		Warnings:   []string{},
	}
	return CalculatorResult{OK: true, Breakdown: breakdown}
}

// backtrack walks the parent pointers from the target back to step 0 and
// materializes components in chronological order. Bridge moves are invisible
// to the customer and dropped; adjacent hourly components on the same
// calendar day with the same weekend flag collapse into one.
func (c *Calculator) backtrack(start time.Time, parent []int, moves []*move, totalHours int) []PriceComponent {
	// Collected newest-first: rev[len-1] is the earliest segment seen so far,
	// which chronologically follows the one under construction.
	var rev []PriceComponent

	for curr := totalHours; curr > 0; {
		prev := parent[curr]
		m := moves[curr]
		if m == nil {
			break
		}

		if m.kind == moveBridge {
			curr = prev
			continue
		}

		segmentStart := start.Add(time.Duration(prev) * time.Hour)
		comp := PriceComponent{
			DescriptionVi: m.desc,
			Day:           segmentStart.Format("2006-01-02"),
			IsWeekend:     IsWeekend(segmentStart),
			AmountVnd:     m.cost,
		}
		switch m.kind {
		case moveCombo:
			comp.Kind = ComponentCombo
			comboType := m.combo.Type
			comp.ComboType = &comboType
		default:
			comp.Kind = ComponentHourlyExtension
			hours := m.hours
			comp.Hours = &hours
		}

		if comp.Kind == ComponentHourlyExtension && len(rev) > 0 {
			next := &rev[len(rev)-1]
			if next.Kind == ComponentHourlyExtension && next.Day == comp.Day && next.IsWeekend == comp.IsWeekend {
				next.AmountVnd += comp.AmountVnd
				merged := *next.Hours + *comp.Hours
				next.Hours = &merged
				next.DescriptionVi = hourlyDescription(merged, next.IsWeekend)
				curr = prev
				continue
			}
		}

		rev = append(rev, comp)
		curr = prev
	}

	components := make([]PriceComponent, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		components = append(components, rev[i])
	}
	return components
}

// minimumStay returns the floating 3-hour combo and its applicable price when
// that price exceeds the computed total. Weekend status is taken from the
// original booking start, not from any intermediate step.
func (c *Calculator) minimumStay(start time.Time, room RoomSpec, computed int64) (*ComboPricing, int64, bool) {
	for idx := range room.Combos {
		if room.Combos[idx].Window.Kind != WindowThreeHour {
			continue
		}
		combo := &room.Combos[idx]
		minPrice := combo.PriceFor(IsWeekend(start))
		if computed < minPrice {
			return combo, minPrice, true
		}
		return nil, 0, false
	}
	return nil, 0, false
}
