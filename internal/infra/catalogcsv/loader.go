// Package catalogcsv loads the room catalog from the operator's pricing
// spreadsheet, exported as CSV with the original Vietnamese column headers.
package catalogcsv

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"room-pricing/internal/domain/catalog"
	"room-pricing/internal/domain/pricing"
	"room-pricing/internal/pkg/errs"
)

const (
	colRoomID   = "Mã phòng"
	colCategory = "Hạng Phòng"
	colName     = "Tên Phòng"

	colThreeHourWeekday = "Nghỉ theo giờ (3 tiếng) (T2-T5)"
	colThreeHourWeekend = "Nghỉ theo giờ (3 Tiếng) (T6 - CN)"
	colNightWeekday     = "Nghỉ đêm (22h -9h/10h-19h) (T2-T5)"
	colNightWeekend     = "Nghỉ đêm (22h -9h/10h-19h) (Trong tuần) (T6-CN)"
	colFullDayWeekday   = "Nghỉ 1 ngày (14h -12h) (T2 - T5)"
	colFullDayWeekend   = "Nghỉ 1 ngày (14h -12h) (T6 - CN)"
)

func LoadFile(path string) ([]catalog.Room, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "failed to open pricing CSV")
	}
	defer f.Close()
	return Load(f)
}

func Load(r io.Reader) ([]catalog.Room, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errs.Wrap(err, "failed to read CSV header")
	}
	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colRoomID, colCategory, colName} {
		if _, ok := cols[required]; !ok {
			return nil, errs.New("pricing CSV missing column " + strconv.Quote(required))
		}
	}

	var rooms []catalog.Room
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errs.Wrap(err, "failed to read CSV record")
		}

		field := func(name string) string {
			i, ok := cols[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		roomID := field(colRoomID)
		if roomID == "" {
			continue
		}

		room := catalog.Room{
			ID:       roomID,
			Category: field(colCategory),
			Name:     field(colName),
		}

		addCombo := func(comboType pricing.ComboType, label, weekday, weekend string, window pricing.ComboWindow) {
			combo := pricing.ComboPricing{
				RoomID:          roomID,
				Type:            comboType,
				Label:           label,
				WeekdayPriceVnd: parsePriceVnd(weekday),
				WeekendPriceVnd: parsePriceVnd(weekend),
				Window:          window,
			}
			if combo.IsInert() {
				return
			}
			room.Pricing = append(room.Pricing, combo)
		}

		addCombo(pricing.ComboThreeHour, "Nghỉ theo giờ (3 tiếng)",
			field(colThreeHourWeekday), field(colThreeHourWeekend),
			pricing.ComboWindow{
				Kind:          pricing.WindowThreeHour,
				StartLocal:    "00:00",
				EndLocal:      "23:59",
				DurationHours: 3,
			})

		addCombo(pricing.ComboHalfDay, "Nghỉ bán ngày (10h-19h)",
			field(colNightWeekday), field(colNightWeekend),
			pricing.ComboWindow{
				Kind:          pricing.WindowHalfDayDay,
				StartLocal:    "10:00",
				EndLocal:      "19:00",
				DurationHours: 9,
			})

		// The overnight window shares the night price columns with the
		// half-day combo on the source spreadsheet.
		addCombo(pricing.ComboOvernight, "Nghỉ qua đêm (22h-9h)",
			field(colNightWeekday), field(colNightWeekend),
			pricing.ComboWindow{
				Kind:            pricing.WindowHalfDayNight,
				StartLocal:      "22:00",
				EndLocal:        "09:00",
				CrossesMidnight: true,
				DurationHours:   11,
			})

		addCombo(pricing.ComboFullDay, "Nghỉ 1 ngày (14h-12h)",
			field(colFullDayWeekday), field(colFullDayWeekend),
			pricing.ComboWindow{
				Kind:            pricing.WindowFullDay,
				StartLocal:      "14:00",
				EndLocal:        "12:00",
				CrossesMidnight: true,
				DurationHours:   22,
			})

		rooms = append(rooms, room)
	}

	return rooms, nil
}

// parsePriceVnd reads a spreadsheet amount like "279,000". Anything
// unparseable counts as zero, the same as an empty price cell.
func parsePriceVnd(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
