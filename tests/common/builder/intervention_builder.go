//go:build unit

package builder

import (
	"time"

	"assistance-console/internal/domain/intervention"

	"github.com/google/uuid"
)

// InterventionBuilder produces records in the "fully assigned, no
// report yet" shape by default; mutators peel fields off or move the
// record further along its lifecycle.
type InterventionBuilder struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	CustomerName   string
	ZoneID         uuid.UUID
	TypeID         uuid.UUID
	AssignedTo     *uuid.UUID
	AssignedToName string
	Date           *time.Time
	TimeSlot       intervention.SlotKind
	FromInstant    *time.Time
	ToInstant      *time.Time
	ReportID       *uuid.UUID
	ReportFailed   *bool
	ApprovedBy     *uuid.UUID
	InvoicedBy     *uuid.UUID
	CancelledBy    *uuid.UUID
	CallCode       string
	InternalNotes  string
	CalendarNotes  string
}

func NewInterventionBuilder() *InterventionBuilder {
	techID := uuid.New()
	date := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	from := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.Local)
	to := time.Date(2024, time.January, 15, 13, 0, 0, 0, time.Local)

	return &InterventionBuilder{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		CustomerName:   "Frigoriferi Rossi SRL",
		ZoneID:         uuid.New(),
		TypeID:         uuid.New(),
		AssignedTo:     &techID,
		AssignedToName: "Mario Bianchi",
		Date:           &date,
		TimeSlot:       intervention.SlotMorning,
		FromInstant:    &from,
		ToInstant:      &to,
		CallCode:       "INT-2024-0042",
	}
}

func (b *InterventionBuilder) With(mutate func(*InterventionBuilder)) *InterventionBuilder {
	mutate(b)
	return b
}

func (b *InterventionBuilder) Unassigned() *InterventionBuilder {
	b.AssignedTo = nil
	b.AssignedToName = ""
	b.Date = nil
	b.TimeSlot = intervention.SlotNone
	b.FromInstant = nil
	b.ToInstant = nil
	return b
}

func (b *InterventionBuilder) WithReport(failed *bool) *InterventionBuilder {
	id := uuid.New()
	b.ReportID = &id
	b.ReportFailed = failed
	return b
}

func (b *InterventionBuilder) ApprovedByActor() *InterventionBuilder {
	id := uuid.New()
	b.ApprovedBy = &id
	return b
}

func (b *InterventionBuilder) InvoicedByActor() *InterventionBuilder {
	id := uuid.New()
	b.InvoicedBy = &id
	return b
}

func (b *InterventionBuilder) CancelledByActor() *InterventionBuilder {
	id := uuid.New()
	b.CancelledBy = &id
	return b
}

func (b *InterventionBuilder) BuildRecord() *intervention.Record {
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
	return &intervention.Record{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		CustomerName:   b.CustomerName,
		ZoneID:         b.ZoneID,
		TypeID:         b.TypeID,
		AssignedTo:     b.AssignedTo,
		AssignedToName: b.AssignedToName,
		Date:           b.Date,
		TimeSlot:       b.TimeSlot,
		FromInstant:    b.FromInstant,
		ToInstant:      b.ToInstant,
		ReportID:       b.ReportID,
		ReportFailed:   b.ReportFailed,
		ApprovedBy:     b.ApprovedBy,
		InvoicedBy:     b.InvoicedBy,
		CancelledBy:    b.CancelledBy,
		CallCode:       b.CallCode,
		InternalNotes:  b.InternalNotes,
		CalendarNotes:  b.CalendarNotes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
