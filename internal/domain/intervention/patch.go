package intervention

import (
	"time"

	"github.com/google/uuid"
)

// Patch is a partial update to a record. Nil fields are untouched; the
// backend replaces the whole record on PUT, so a patch is always applied
// to a freshly fetched copy and the merged record is resent in full.
type Patch struct {
	AssignedTo     *uuid.UUID
	AssignedToName *string
	Date           *time.Time
	TimeSlot       *SlotKind
	FromInstant    *time.Time
	ToInstant      *time.Time
	ReportID       *uuid.UUID
	ReportFailed   *bool
	ApprovedBy     *uuid.UUID
	InvoicedBy     *uuid.UUID
	CancelledBy    *uuid.UUID
	CallCode       *string
	InternalNotes  *string
	CalendarNotes  *string
	Equipment      []uuid.UUID
	Articles       []ArticleLine

	// ClearAssignment resets every assignment field back to the created
	// state before the pointer fields above are applied.
	ClearAssignment bool
}

func (p Patch) IsEmpty() bool {
	return p.AssignedTo == nil && p.AssignedToName == nil && p.Date == nil &&
		p.TimeSlot == nil && p.FromInstant == nil && p.ToInstant == nil &&
		p.ReportID == nil && p.ReportFailed == nil && p.ApprovedBy == nil &&
		p.InvoicedBy == nil && p.CancelledBy == nil && p.CallCode == nil &&
		p.InternalNotes == nil && p.CalendarNotes == nil &&
		p.Equipment == nil && p.Articles == nil && !p.ClearAssignment
}

// ApplyTo shallow-merges the patch over the record.
func (p Patch) ApplyTo(r *Record) {
	if p.ClearAssignment {
		r.AssignedTo = nil
		r.AssignedToName = ""
		r.Date = nil
		r.TimeSlot = SlotNone
		r.FromInstant = nil
		r.ToInstant = nil
	}
	if p.AssignedTo != nil {
		r.AssignedTo = p.AssignedTo
	}
	if p.AssignedToName != nil {
		r.AssignedToName = *p.AssignedToName
	}
	if p.Date != nil {
		r.Date = p.Date
	}
	if p.TimeSlot != nil {
		r.TimeSlot = *p.TimeSlot
	}
	if p.FromInstant != nil {
		r.FromInstant = p.FromInstant
	}
	if p.ToInstant != nil {
		r.ToInstant = p.ToInstant
	}
	if p.ReportID != nil {
		r.ReportID = p.ReportID
	}
	if p.ReportFailed != nil {
		r.ReportFailed = p.ReportFailed
	}
	if p.ApprovedBy != nil {
		r.ApprovedBy = p.ApprovedBy
	}
	if p.InvoicedBy != nil {
		r.InvoicedBy = p.InvoicedBy
	}
	if p.CancelledBy != nil {
		r.CancelledBy = p.CancelledBy
	}
	if p.CallCode != nil {
		r.CallCode = *p.CallCode
	}
	if p.InternalNotes != nil {
		r.InternalNotes = *p.InternalNotes
	}
	if p.CalendarNotes != nil {
		r.CalendarNotes = *p.CalendarNotes
	}
	if p.Equipment != nil {
		r.Equipment = p.Equipment
	}
	if p.Articles != nil {
		r.Articles = p.Articles
	}
}

// Merge folds a later patch over this one, last write per field winning.
// Used by the auto-saver to accumulate edits inside a debounce window.
func (p Patch) Merge(later Patch) Patch {
	out := p
	if later.ClearAssignment {
		out.ClearAssignment = true
	}
	if later.AssignedTo != nil {
		out.AssignedTo = later.AssignedTo
	}
	if later.AssignedToName != nil {
		out.AssignedToName = later.AssignedToName
	}
	if later.Date != nil {
		out.Date = later.Date
	}
	if later.TimeSlot != nil {
		out.TimeSlot = later.TimeSlot
	}
	if later.FromInstant != nil {
		out.FromInstant = later.FromInstant
	}
	if later.ToInstant != nil {
		out.ToInstant = later.ToInstant
	}
	if later.ReportID != nil {
		out.ReportID = later.ReportID
	}
	if later.ReportFailed != nil {
		out.ReportFailed = later.ReportFailed
	}
	if later.ApprovedBy != nil {
		out.ApprovedBy = later.ApprovedBy
	}
	if later.InvoicedBy != nil {
		out.InvoicedBy = later.InvoicedBy
	}
	if later.CancelledBy != nil {
		out.CancelledBy = later.CancelledBy
	}
	if later.CallCode != nil {
		out.CallCode = later.CallCode
	}
	if later.InternalNotes != nil {
		out.InternalNotes = later.InternalNotes
	}
	if later.CalendarNotes != nil {
		out.CalendarNotes = later.CalendarNotes
	}
	if later.Equipment != nil {
		out.Equipment = later.Equipment
	}
	if later.Articles != nil {
		out.Articles = later.Articles
	}
	return out
}
