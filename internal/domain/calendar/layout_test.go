//go:build unit

package calendar_test

import (
	"testing"
	"time"

	"assistance-console/internal/domain/calendar"
	"assistance-console/internal/domain/intervention"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday is 15/01/2024, so the laid-out week runs through Saturday the 20th.
var monday = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)

var defaultRows = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}

func instant(day, hour, minute int) *time.Time {
	t := time.Date(2024, time.January, day, hour, minute, 0, 0, time.Local)
	return &t
}

func dateOf(day int) *time.Time {
	t := time.Date(2024, time.January, day, 0, 0, 0, 0, time.Local)
	return &t
}

func booking(day, hour int, mutate func(*calendar.Booking)) calendar.Booking {
	b := calendar.Booking{
		ID:              uuid.New(),
		TechnicianLabel: "Mario Bianchi",
		CustomerLabel:   "Frigoriferi Rossi SRL",
		Date:            dateOf(day),
		From:            instant(day, hour, 0),
		To:              instant(day, hour+5, 0),
		SlotKind:        intervention.SlotMorning,
		StatusLabel:     "In corso",
		StatusColor:     "#3B82F6",
	}
	if mutate != nil {
		mutate(&b)
	}
	return b
}

func layout(bookings []calendar.Booking, filters calendar.Filters) *calendar.WeekGrid {
	return calendar.LayoutWeek(bookings, monday, defaultRows, filters, calendar.DefaultConfig())
}

func TestLayoutWeek(t *testing.T) {
	t.Run("week days run monday through saturday", func(t *testing.T) {
		grid := layout(nil, calendar.Filters{})

		assert.Equal(t, monday, grid.Days[0])
		assert.Equal(t, monday.AddDate(0, 0, 5), grid.Days[5])
		assert.Equal(t, defaultRows, grid.Rows)
		assert.Empty(t, grid.Cells)
	})

	t.Run("any day of the week anchors the same grid", func(t *testing.T) {
		thursday := monday.AddDate(0, 0, 3)
		sunday := monday.AddDate(0, 0, 6)

		fromMonday := layout(nil, calendar.Filters{})
		fromThursday := calendar.LayoutWeek(nil, thursday, defaultRows, calendar.Filters{}, calendar.DefaultConfig())
		fromSunday := calendar.LayoutWeek(nil, sunday, defaultRows, calendar.Filters{}, calendar.DefaultConfig())

		assert.Equal(t, fromMonday.Days, fromThursday.Days)
		assert.Equal(t, fromMonday.Days, fromSunday.Days)
	})

	t.Run("booking anchors at its start instant's day and truncated hour", func(t *testing.T) {
		b := booking(17, 10, func(b *calendar.Booking) { // Wednesday
			b.From = instant(17, 10, 45)
			b.To = instant(17, 12, 0)
			b.SlotKind = intervention.SlotCustom
		})

		grid := layout([]calendar.Booking{b}, calendar.Filters{})

		key := calendar.CellKey{Day: 2, Hour: 10}
		require.Len(t, grid.Cells, 1)
		require.Len(t, grid.Cells[key], 1)
		assert.Equal(t, b.ID, grid.Cells[key][0].ID)
	})

	t.Run("geometry of a single booking", func(t *testing.T) {
		b := booking(15, 8, nil) // morning, five hours

		grid := layout([]calendar.Booking{b}, calendar.Filters{})

		placed := grid.Cells[calendar.CellKey{Day: 0, Hour: 8}][0]
		assert.Equal(t, 4, placed.TopOffsetPx)
		assert.Equal(t, 5*40, placed.HeightPx)
		assert.Equal(t, 10, placed.ZIndex)
	})

	t.Run("same cell stacks in source order with increasing z-index", func(t *testing.T) {
		first := booking(15, 8, nil)
		second := booking(15, 8, nil)
		third := booking(15, 8, nil)

		grid := layout([]calendar.Booking{first, second, third}, calendar.Filters{})

		cell := grid.Cells[calendar.CellKey{Day: 0, Hour: 8}]
		require.Len(t, cell, 3)
		assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
			[]uuid.UUID{cell[0].ID, cell[1].ID, cell[2].ID})

		for i := 1; i < len(cell); i++ {
			assert.Greater(t, cell[i].ZIndex, cell[i-1].ZIndex)
			assert.Greater(t, cell[i].TopOffsetPx, cell[i-1].TopOffsetPx)
		}
	})

	t.Run("layout is deterministic", func(t *testing.T) {
		bookings := []calendar.Booking{
			booking(15, 8, nil),
			booking(15, 8, nil),
			booking(16, 14, func(b *calendar.Booking) { b.SlotKind = intervention.SlotAfternoon }),
		}

		a := layout(bookings, calendar.Filters{})
		b := layout(bookings, calendar.Filters{})

		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("grids differ (-first +second):\n%s", diff)
		}
	})

	t.Run("resolved slot anchors on its own grid row", func(t *testing.T) {
		date := monday.AddDate(0, 0, 1) // Tuesday
		bounds, err := intervention.ResolveSlot(date, intervention.SlotAfternoon, "", "")
		require.NoError(t, err)

		b := booking(16, 14, func(b *calendar.Booking) {
			b.From = &bounds.From
			b.To = &bounds.To
			b.SlotKind = intervention.SlotAfternoon
		})

		grid := layout([]calendar.Booking{b}, calendar.Filters{})
		assert.Len(t, grid.Cells[calendar.CellKey{Day: 1, Hour: 14}], 1)
	})

	t.Run("slot kind fallback when no start instant", func(t *testing.T) {
		cases := []struct {
			name string
			kind intervention.SlotKind
			hour int
		}{
			{name: "morning", kind: intervention.SlotMorning, hour: 8},
			{name: "full day", kind: intervention.SlotFullDay, hour: 8},
			{name: "afternoon", kind: intervention.SlotAfternoon, hour: 14},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := booking(15, 8, func(b *calendar.Booking) {
					b.From = nil
					b.To = nil
					b.SlotKind = tc.kind
				})

				grid := layout([]calendar.Booking{b}, calendar.Filters{})
				assert.Len(t, grid.Cells[calendar.CellKey{Day: 0, Hour: tc.hour}], 1)
			})
		}
	})

	t.Run("unplaceable bookings are dropped", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*calendar.Booking)
		}{
			{
				name: "no instant, no date",
				mutate: func(b *calendar.Booking) {
					b.From = nil
					b.To = nil
					b.Date = nil
				},
			},
			{
				name: "no instant, unplaceable slot kind",
				mutate: func(b *calendar.Booking) {
					b.From = nil
					b.To = nil
					b.SlotKind = intervention.SlotNone
				},
			},
			{
				name:   "sunday is outside the grid",
				mutate: func(b *calendar.Booking) { b.From = instant(21, 8, 0) },
			},
			{
				name:   "previous week",
				mutate: func(b *calendar.Booking) { b.From = instant(12, 8, 0) },
			},
			{
				name:   "start hour has no matching row",
				mutate: func(b *calendar.Booking) { b.From = instant(15, 6, 0) },
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				grid := layout([]calendar.Booking{booking(15, 8, tc.mutate)}, calendar.Filters{})
				assert.Empty(t, grid.Cells)
			})
		}
	})
}

func TestLayoutWeekFilters(t *testing.T) {
	inProgress := booking(15, 8, nil)
	completed := booking(15, 9, func(b *calendar.Booking) {
		b.TechnicianLabel = "Luca Verdi"
		b.StatusLabel = "Completato"
		b.StatusColor = "#22C55E"
	})

	t.Run("empty filters keep everything", func(t *testing.T) {
		grid := layout([]calendar.Booking{inProgress, completed}, calendar.Filters{})
		assert.Len(t, grid.Cells, 2)
	})

	t.Run("technician filter matches exactly", func(t *testing.T) {
		grid := layout([]calendar.Booking{inProgress, completed},
			calendar.Filters{Technicians: []string{"Luca Verdi"}})

		require.Len(t, grid.Cells, 1)
		assert.Len(t, grid.Cells[calendar.CellKey{Day: 0, Hour: 9}], 1)
	})

	t.Run("status filter is case insensitive", func(t *testing.T) {
		grid := layout([]calendar.Booking{inProgress, completed},
			calendar.Filters{Statuses: []string{"  completato "}})

		require.Len(t, grid.Cells, 1)
		assert.Equal(t, completed.ID, grid.Cells[calendar.CellKey{Day: 0, Hour: 9}][0].ID)
	})

	t.Run("unlabeled bookings pass the status filter", func(t *testing.T) {
		unlabeled := booking(15, 10, func(b *calendar.Booking) { b.StatusLabel = "" })

		grid := layout([]calendar.Booking{unlabeled},
			calendar.Filters{Statuses: []string{"completato"}})

		assert.Len(t, grid.Cells, 1)
	})

	t.Run("filters compose", func(t *testing.T) {
		grid := layout([]calendar.Booking{inProgress, completed},
			calendar.Filters{Technicians: []string{"Luca Verdi"}, Statuses: []string{"in corso"}})

		assert.Empty(t, grid.Cells)
	})
}
