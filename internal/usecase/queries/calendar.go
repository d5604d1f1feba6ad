package queries

import (
	"context"
	"time"

	"assistance-console/internal/domain/calendar"
	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/infra"
	"assistance-console/internal/infra/gateway"
	"assistance-console/internal/pkg/errs"

	"github.com/google/uuid"
)

// DefaultRows are the time-slot rows of the weekly grid, one per
// working hour.
var DefaultRows = []int{8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18}

type RecordLister interface {
	ListInterventions(ctx context.Context, from, to time.Time) ([]*intervention.Record, error)
}

type LabelResolver interface {
	Label(ctx context.Context, kind string, id uuid.UUID) (string, error)
}

type CalendarQueries interface {
	Week(ctx context.Context, weekStart time.Time, filters calendar.Filters) (*calendar.WeekGrid, error)
}

type calendarQueriesImpl struct {
	lister RecordLister
	labels LabelResolver
	layout calendar.Config
}

func NewCalendarQueries(lister RecordLister, labels LabelResolver) CalendarQueries {
	return &calendarQueriesImpl{
		lister: lister,
		labels: labels,
		layout: calendar.DefaultConfig(),
	}
}

// Week fetches the visible week's records, projects them to bookings
// and lays them out. The projection recomputes status per record, so
// the calendar can never disagree with the list view about a stage.
func (q *calendarQueriesImpl) Week(ctx context.Context, weekStart time.Time, filters calendar.Filters) (*calendar.WeekGrid, error) {
	monday := weekStart.AddDate(0, 0, -weekdayOffset(weekStart))
	saturday := monday.AddDate(0, 0, 5)

	records, err := q.lister.ListInterventions(ctx, monday, saturday)
	if err != nil {
		if infra.IsKind(err, infra.KindUnauthorized) {
			return nil, errs.Mark(err, errs.ErrBackendAuth)
		}
		return nil, errs.Wrap(err, "failed to list interventions for week")
	}

	bookings := make([]calendar.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, q.toBooking(ctx, rec))
	}

	grid := calendar.LayoutWeek(bookings, weekStart, DefaultRows, filters, q.layout)
	return grid, nil
}

func (q *calendarQueriesImpl) toBooking(ctx context.Context, rec *intervention.Record) calendar.Booking {
	info := intervention.DeriveStatusInfo(rec)

	technician := rec.AssignedToName
	if technician == "" && rec.AssignedTo != nil {
		// label resolution failing only blanks the chip's technician line
		technician, _ = q.labels.Label(ctx, gateway.LookupTechnicians, *rec.AssignedTo)
	}

	return calendar.Booking{
		ID:              rec.ID,
		TechnicianLabel: technician,
		CustomerLabel:   rec.CustomerName,
		Date:            rec.Date,
		From:            rec.FromInstant,
		To:              rec.ToInstant,
		SlotKind:        rec.TimeSlot,
		StatusLabel:     info.Label,
		StatusColor:     info.Color,
		Notes:           rec.CalendarNotes,
	}
}

func weekdayOffset(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return wd - 1
}
