package pricing

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type WindowKind string

const (
	WindowThreeHour    WindowKind = "threeHour"
	WindowHalfDayDay   WindowKind = "halfDayDay"
	WindowHalfDayNight WindowKind = "halfDayNight"
	WindowFullDay      WindowKind = "fullDay"
)

// ComboWindow describes when a combo applies. A floating window (threeHour)
// spans DurationHours from whatever instant it is evaluated at. A fixed window
// recurs once per calendar day between StartLocal and EndLocal wall-clock
// times, possibly crossing midnight.
type ComboWindow struct {
	Kind            WindowKind
	StartLocal      string // HH:mm
	EndLocal        string // HH:mm
	CrossesMidnight bool
	DurationHours   int
}

func (w ComboWindow) IsFloating() bool {
	return w.Kind == WindowThreeHour
}

// CoverageEnd returns the first instant at or after t at which the window
// ceases to apply, and whether the window applies at t at all.
//
// Fixed windows are checked against two occurrences: the one anchored at
// StartLocal on t's calendar day, and the one anchored the day before. The
// previous-day occurrence catches windows that cross midnight (e.g. a full-day
// 14:00-12:00 window still running at 08:00) as well as windows still in
// progress from the prior day.
func (w ComboWindow) CoverageEnd(t time.Time) (time.Time, bool) {
	if w.IsFloating() {
		return t.Add(time.Duration(w.DurationHours) * time.Hour), true
	}

	startH, startM, err := parseClock(w.StartLocal)
	if err != nil {
		return time.Time{}, false
	}
	endH, endM, err := parseClock(w.EndLocal)
	if err != nil {
		return time.Time{}, false
	}

	dayStart := time.Date(t.Year(), t.Month(), t.Day(), startH, startM, 0, 0, t.Location())
	dayEnd := time.Date(t.Year(), t.Month(), t.Day(), endH, endM, 0, 0, t.Location())
	if w.CrossesMidnight {
		dayEnd = dayEnd.AddDate(0, 0, 1)
	}

	prevStart := dayStart.AddDate(0, 0, -1)
	prevEnd := dayEnd.AddDate(0, 0, -1)

	switch {
	case t.After(prevStart) && t.Before(prevEnd):
		return prevEnd, true
	case !t.Before(dayStart) && t.Before(dayEnd):
		return dayEnd, true
	}
	return time.Time{}, false
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed clock time %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock time %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed clock time %q", s)
	}
	return hour, minute, nil
}
