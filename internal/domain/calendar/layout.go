package calendar

import (
	"strings"
	"time"

	"assistance-console/internal/domain/intervention"
)

// LayoutWeek lays the bookings out on the Mon–Sat grid of the week
// containing weekStart. Deterministic: identical inputs produce
// identical cell assignments and stacking.
//
// Each booking lands in exactly one anchor cell — the calendar date and
// truncated hour of its start instant, or the fixed fallback row for
// its slot kind when no instant is set. Its height is duration
// proportional, so it visually spans later rows without being placed in
// them. Within a cell, source order is preserved and each booking gets
// a staggered top offset plus an increasing z-index; later bookings
// deliberately overlap earlier ones instead of true collision layout.
func LayoutWeek(bookings []Booking, weekStart time.Time, rows []int, filters Filters, cfg Config) *WeekGrid {
	grid := &WeekGrid{
		Rows:  rows,
		Cells: make(map[CellKey][]PositionedBooking),
	}

	monday := mondayOf(weekStart)
	for i := range grid.Days {
		grid.Days[i] = monday.AddDate(0, 0, i)
	}

	rowSet := make(map[int]struct{}, len(rows))
	for _, h := range rows {
		rowSet[h] = struct{}{}
	}

	for _, b := range bookings {
		if filters.excludes(b) {
			continue
		}

		key, ok := anchorCell(b, monday)
		if !ok {
			continue
		}
		if _, known := rowSet[key.Hour]; !known {
			// no matching time-slot row on this grid
			continue
		}

		idx := len(grid.Cells[key])
		grid.Cells[key] = append(grid.Cells[key], PositionedBooking{
			Booking:     b,
			TopOffsetPx: cfg.BaseOffsetPx + idx*cfg.StackStepPx,
			HeightPx:    intervention.DurationHours(b.From, b.To, b.SlotKind) * cfg.RowHeightPx,
			ZIndex:      cfg.BaseZIndex + idx,
			Appearance:  ResolveAppearance(b.StatusColor, b.StatusLabel),
		})
	}

	return grid
}

// anchorCell picks the single cell a booking belongs to. With a start
// instant the anchor is its date and truncated hour; without one the
// slot kind maps to a fixed row. Bookings outside the visible week, or
// with neither instant nor placeable slot, are not shown.
func anchorCell(b Booking, monday time.Time) (CellKey, bool) {
	if b.From != nil {
		day := daysBetween(monday, *b.From)
		if day < 0 || day > 5 {
			return CellKey{}, false
		}
		return CellKey{Day: day, Hour: b.From.Hour()}, true
	}

	if b.Date == nil {
		return CellKey{}, false
	}
	day := daysBetween(monday, *b.Date)
	if day < 0 || day > 5 {
		return CellKey{}, false
	}
	switch b.SlotKind {
	case intervention.SlotMorning, intervention.SlotFullDay:
		return CellKey{Day: day, Hour: 8}, true
	case intervention.SlotAfternoon:
		return CellKey{Day: day, Hour: 14}, true
	default:
		return CellKey{}, false
	}
}

func (f Filters) excludes(b Booking) bool {
	if len(f.Technicians) > 0 && b.TechnicianLabel != "" {
		found := false
		for _, t := range f.Technicians {
			if t == b.TechnicianLabel {
				found = true
				break
			}
		}
		if !found {
			return true
		}
	}
	if len(f.Statuses) > 0 && b.StatusLabel != "" {
		want := normalizeStatus(b.StatusLabel)
		found := false
		for _, s := range f.Statuses {
			if normalizeStatus(s) == want {
				found = true
				break
			}
		}
		if !found {
			return true
		}
	}
	return false
}

func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// mondayOf truncates to the Monday of t's week (Sunday belongs to the
// week it ends).
func mondayOf(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return day.AddDate(0, 0, -(wd - 1))
}

func daysBetween(from, to time.Time) int {
	fromDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	toDay := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, from.Location())
	return int(toDay.Sub(fromDay).Hours() / 24)
}
