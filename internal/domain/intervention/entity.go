package intervention

import (
	"time"

	"github.com/google/uuid"
)

// ArticleLine is one consumed-article entry on a record.
type ArticleLine struct {
	ArticleID uuid.UUID `json:"article_id"`
	Quantity  int32     `json:"quantity"`
}

// Record is the full intervention record as the backend stores it.
// Status is never part of it: it is always recomputed with DeriveStatus
// so the stored fields and the lifecycle stage cannot drift apart.
//
// Invariant: TimeSlot == SlotCustom requires both FromInstant and
// ToInstant; the other non-none kinds derive them from Date via
// ResolveSlot and the three must stay consistent.
type Record struct {
	ID             uuid.UUID     `json:"id"`
	CustomerID     uuid.UUID     `json:"customer_id"`
	CustomerName   string        `json:"customer_name,omitempty"` // read-only, backend-resolved
	ZoneID         uuid.UUID     `json:"zone_id"`
	TypeID         uuid.UUID     `json:"type_id"`
	AssignedTo     *uuid.UUID    `json:"assigned_to,omitempty"`
	AssignedToName string        `json:"assigned_to_name,omitempty"`
	Date           *time.Time    `json:"date,omitempty"`
	TimeSlot       SlotKind      `json:"time_slot"`
	FromInstant    *time.Time    `json:"from_instant,omitempty"`
	ToInstant      *time.Time    `json:"to_instant,omitempty"`
	ReportID       *uuid.UUID    `json:"report_id,omitempty"`
	ReportFailed   *bool         `json:"report_is_failed,omitempty"`
	ApprovedBy     *uuid.UUID    `json:"approved_by,omitempty"`
	InvoicedBy     *uuid.UUID    `json:"invoiced_by,omitempty"`
	CancelledBy    *uuid.UUID    `json:"cancelled_by,omitempty"`
	CallCode       string        `json:"call_code,omitempty"`
	InternalNotes  string        `json:"internal_notes,omitempty"`
	CalendarNotes  string        `json:"calendar_notes,omitempty"`
	Equipment      []uuid.UUID   `json:"connected_equipment,omitempty"`
	Articles       []ArticleLine `json:"connected_articles,omitempty"`
	CreatedBy      *uuid.UUID    `json:"created_by,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// NewRecord builds a record the way creation leaves it: no assignment,
// no slot, minimal fields. The backend fills server-side fields (call
// code, timestamps) on create.
func NewRecord(customerID, zoneID, typeID uuid.UUID) *Record {
	return &Record{
		CustomerID: customerID,
		ZoneID:     zoneID,
		TypeID:     typeID,
		TimeSlot:   SlotNone,
	}
}

// IsFullyAssigned reports whether every assignment field is set:
// technician, date, slot kind and both instants. The technician check
// accepts either the id or the display name, since legacy records carry
// one or the other depending on which screen wrote them.
func (r *Record) IsFullyAssigned() bool {
	return r.HasAssignee() &&
		r.Date != nil &&
		r.TimeSlot.IsAssigned() &&
		r.FromInstant != nil &&
		r.ToInstant != nil
}

func (r *Record) HasAssignee() bool {
	return hasActor(r.AssignedTo) || trimmedNonEmpty(r.AssignedToName)
}

// hasActor treats nil and the zero uuid the same way the status rules
// treat nil and the empty string: both mean missing.
func hasActor(id *uuid.UUID) bool {
	return id != nil && *id != uuid.Nil
}
