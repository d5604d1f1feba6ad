package request

import (
	"strings"
	"time"

	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateInterventionRequest struct {
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	ZoneID        uuid.UUID `json:"zone_id" binding:"required"`
	TypeID        uuid.UUID `json:"type_id" binding:"required"`
	CallCode      *string   `json:"call_code,omitempty"`
	InternalNotes *string   `json:"internal_notes,omitempty"`
}

func (r CreateInterventionRequest) ToInput() commands.CreateInterventionInput {
	in := commands.CreateInterventionInput{
		CustomerID: r.CustomerID,
		ZoneID:     r.ZoneID,
		TypeID:     r.TypeID,
	}
	if r.CallCode != nil {
		in.CallCode = strings.TrimSpace(*r.CallCode)
	}
	if r.InternalNotes != nil {
		in.InternalNotes = strings.TrimSpace(*r.InternalNotes)
	}
	return in
}

// ConfirmAssignmentRequest is the assignment dialog's payload. Custom
// slots carry their bounds as HH:MM; the other kinds resolve to fixed
// ranges server-side.
type ConfirmAssignmentRequest struct {
	TechnicianID   *uuid.UUID `json:"technician_id,omitempty"`
	TechnicianName *string    `json:"technician_name,omitempty"`
	Date           string     `json:"date" binding:"required,datetime=2006-01-02"`
	TimeSlot       string     `json:"time_slot" binding:"required"`
	CustomStart    *string    `json:"custom_start,omitempty" binding:"omitempty,hhmm"`
	CustomEnd      *string    `json:"custom_end,omitempty" binding:"omitempty,hhmm"`
	CalendarNotes  *string    `json:"calendar_notes,omitempty"`
}

func (r ConfirmAssignmentRequest) ToInput() (commands.ConfirmAssignmentInput, error) {
	date, err := time.ParseInLocation("2006-01-02", r.Date, time.Local)
	if err != nil {
		return commands.ConfirmAssignmentInput{}, err
	}

	in := commands.ConfirmAssignmentInput{
		TechnicianID:  r.TechnicianID,
		Date:          date,
		Kind:          intervention.SlotKind(r.TimeSlot),
		CalendarNotes: r.CalendarNotes,
	}
	if r.TechnicianName != nil {
		in.TechnicianName = strings.TrimSpace(*r.TechnicianName)
	}
	if r.CustomStart != nil {
		in.CustomStart = *r.CustomStart
	}
	if r.CustomEnd != nil {
		in.CustomEnd = *r.CustomEnd
	}
	return in, nil
}

// DraftPatchRequest carries the auto-saved fields. Absent fields stay
// untouched; present ones overwrite, matching the watch semantics of
// the editing form.
type DraftPatchRequest struct {
	CallCode      *string `json:"call_code,omitempty"`
	InternalNotes *string `json:"internal_notes,omitempty"`
	CalendarNotes *string `json:"calendar_notes,omitempty"`
}

func (r DraftPatchRequest) ToPatch() intervention.Patch {
	return intervention.Patch{
		CallCode:      r.CallCode,
		InternalNotes: r.InternalNotes,
		CalendarNotes: r.CalendarNotes,
	}
}
