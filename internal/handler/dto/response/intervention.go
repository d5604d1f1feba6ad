package response

import (
	"time"

	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/usecase/queries"

	"github.com/google/uuid"
)

type InterventionResponse struct {
	ID              uuid.UUID                  `json:"id"`
	CustomerID      uuid.UUID                  `json:"customerId"`
	CustomerName    string                     `json:"customerName,omitempty"`
	ZoneID          uuid.UUID                  `json:"zoneId"`
	TypeID          uuid.UUID                  `json:"typeId"`
	AssignedTo      *uuid.UUID                 `json:"assignedTo,omitempty"`
	AssignedToName  string                     `json:"assignedToName,omitempty"`
	Date            *time.Time                 `json:"date,omitempty"`
	TimeSlot        intervention.SlotKind      `json:"timeSlot"`
	FromInstant     *time.Time                 `json:"fromInstant,omitempty"`
	ToInstant       *time.Time                 `json:"toInstant,omitempty"`
	ReportID        *uuid.UUID                 `json:"reportId,omitempty"`
	ReportFailed    *bool                      `json:"reportIsFailed,omitempty"`
	ApprovedBy      *uuid.UUID                 `json:"approvedBy,omitempty"`
	InvoicedBy      *uuid.UUID                 `json:"invoicedBy,omitempty"`
	CancelledBy     *uuid.UUID                 `json:"cancelledBy,omitempty"`
	CallCode        string                     `json:"callCode,omitempty"`
	InternalNotes   string                     `json:"internalNotes,omitempty"`
	CalendarNotes   string                     `json:"calendarNotes,omitempty"`
	Equipment       []uuid.UUID                `json:"connectedEquipment,omitempty"`
	Articles        []intervention.ArticleLine `json:"connectedArticles,omitempty"`
	Status          intervention.StatusKey     `json:"status"`
	StatusLabel     string                     `json:"statusLabel"`
	StatusColor     string                     `json:"statusColor"`
	StatusClass     string                     `json:"statusClass"`
	AssignmentLabel string                     `json:"assignmentLabel,omitempty"`
	DurationHours   int                        `json:"durationHours"`
	CreatedAt       time.Time                  `json:"createdAt"`
	UpdatedAt       time.Time                  `json:"updatedAt"`
}

func FromInterventionView(v *queries.InterventionView) *InterventionResponse {
	return &InterventionResponse{
		ID:              v.ID,
		CustomerID:      v.CustomerID,
		CustomerName:    v.CustomerName,
		ZoneID:          v.ZoneID,
		TypeID:          v.TypeID,
		AssignedTo:      v.AssignedTo,
		AssignedToName:  v.AssignedToName,
		Date:            v.Date,
		TimeSlot:        v.TimeSlot,
		FromInstant:     v.FromInstant,
		ToInstant:       v.ToInstant,
		ReportID:        v.ReportID,
		ReportFailed:    v.ReportFailed,
		ApprovedBy:      v.ApprovedBy,
		InvoicedBy:      v.InvoicedBy,
		CancelledBy:     v.CancelledBy,
		CallCode:        v.CallCode,
		InternalNotes:   v.InternalNotes,
		CalendarNotes:   v.CalendarNotes,
		Equipment:       v.Equipment,
		Articles:        v.Articles,
		Status:          v.Status,
		StatusLabel:     v.StatusLabel,
		StatusColor:     v.StatusColor,
		StatusClass:     v.StatusClass,
		AssignmentLabel: v.AssignmentLabel,
		DurationHours:   v.DurationHours,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

// AutosaveStateResponse surfaces the draft save flag without blocking
// the user's typing.
type AutosaveStateResponse struct {
	Dirty   bool       `json:"dirty"`
	Saving  bool       `json:"saving"`
	Error   *string    `json:"error,omitempty"`
	SavedAt *time.Time `json:"savedAt,omitempty"`
}

// StatusEntryResponse is one entry of the fixed status enumeration,
// shared by the list and calendar filter dropdowns.
type StatusEntryResponse struct {
	Key        intervention.StatusKey `json:"key"`
	Label      string                 `json:"label"`
	ColorClass string                 `json:"colorClass"`
	Color      string                 `json:"color"`
}

func StatusEntries() []StatusEntryResponse {
	out := make([]StatusEntryResponse, len(intervention.Statuses))
	for i, s := range intervention.Statuses {
		out[i] = StatusEntryResponse{Key: s.Key, Label: s.Label, ColorClass: s.ColorClass, Color: s.Color}
	}
	return out
}
