package calendar

import (
	"time"

	"assistance-console/internal/domain/intervention"

	"github.com/google/uuid"
)

// Booking is the calendar's read projection of an intervention record.
// Derived, never persisted.
type Booking struct {
	ID              uuid.UUID
	TechnicianLabel string
	CustomerLabel   string
	Date            *time.Time // record's calendar date, used when From is unset
	From            *time.Time
	To              *time.Time
	SlotKind        intervention.SlotKind
	StatusLabel     string
	StatusColor     string // hex, empty when the status has no color
	Notes           string
}

// PositionedBooking is a booking with its pixel geometry inside a cell.
type PositionedBooking struct {
	Booking
	TopOffsetPx int
	HeightPx    int
	ZIndex      int
	Appearance  Appearance
}

// CellKey addresses one grid cell: Day is 0 (Monday) through 5
// (Saturday), Hour is the time-slot row's starting hour.
type CellKey struct {
	Day  int
	Hour int
}

// WeekGrid is the laid-out week: six working days by the configured
// time-slot rows. A booking appears in its anchor cell only and its
// height makes it overlap the rows it spans; renderers must not repeat
// it there.
type WeekGrid struct {
	Days  [6]time.Time
	Rows  []int
	Cells map[CellKey][]PositionedBooking
}

// Filters restrict which bookings are placed. Technician labels match
// exactly; status labels match case-insensitively with whitespace
// trimmed. An empty set means no filtering on that axis.
type Filters struct {
	Technicians []string
	Statuses    []string
}

// Config is the pixel geometry of the grid.
type Config struct {
	RowHeightPx  int
	BaseOffsetPx int
	StackStepPx  int
	BaseZIndex   int
}

func DefaultConfig() Config {
	return Config{
		RowHeightPx:  40,
		BaseOffsetPx: 4,
		StackStepPx:  14,
		BaseZIndex:   10,
	}
}
