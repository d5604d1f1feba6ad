package queries

import (
	"context"
	"time"

	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/infra"
	"assistance-console/internal/pkg/errs"

	"github.com/google/uuid"
)

// InterventionView is the record as the console serves it: the stored
// fields plus everything derived on read (status, display labels).
type InterventionView struct {
	ID              uuid.UUID                 `json:"id"`
	CustomerID      uuid.UUID                 `json:"customer_id"`
	CustomerName    string                    `json:"customer_name,omitempty"`
	ZoneID          uuid.UUID                 `json:"zone_id"`
	TypeID          uuid.UUID                 `json:"type_id"`
	AssignedTo      *uuid.UUID                `json:"assigned_to,omitempty"`
	AssignedToName  string                    `json:"assigned_to_name,omitempty"`
	Date            *time.Time                `json:"date,omitempty"`
	TimeSlot        intervention.SlotKind     `json:"time_slot"`
	FromInstant     *time.Time                `json:"from_instant,omitempty"`
	ToInstant       *time.Time                `json:"to_instant,omitempty"`
	ReportID        *uuid.UUID                `json:"report_id,omitempty"`
	ReportFailed    *bool                     `json:"report_is_failed,omitempty"`
	ApprovedBy      *uuid.UUID                `json:"approved_by,omitempty"`
	InvoicedBy      *uuid.UUID                `json:"invoiced_by,omitempty"`
	CancelledBy     *uuid.UUID                `json:"cancelled_by,omitempty"`
	CallCode        string                    `json:"call_code,omitempty"`
	InternalNotes   string                    `json:"internal_notes,omitempty"`
	CalendarNotes   string                    `json:"calendar_notes,omitempty"`
	Equipment       []uuid.UUID               `json:"connected_equipment,omitempty"`
	Articles        []intervention.ArticleLine `json:"connected_articles,omitempty"`
	Status          intervention.StatusKey    `json:"status"`
	StatusLabel     string                    `json:"status_label"`
	StatusColor     string                    `json:"status_color"`
	StatusClass     string                    `json:"status_class"`
	AssignmentLabel string                    `json:"assignment_label,omitempty"`
	DurationHours   int                       `json:"duration_hours"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

type RecordReader interface {
	GetIntervention(ctx context.Context, id uuid.UUID) (*intervention.Record, error)
}

type InterventionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*InterventionView, error)
}

type interventionQueriesImpl struct {
	reader RecordReader
}

func NewInterventionQueries(reader RecordReader) InterventionQueries {
	return &interventionQueriesImpl{reader: reader}
}

func (q *interventionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*InterventionView, error) {
	rec, err := q.reader.GetIntervention(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInterventionNotFound
		}
		if infra.IsKind(err, infra.KindUnauthorized) {
			return nil, errs.Mark(err, errs.ErrBackendAuth)
		}
		return nil, errs.Wrap(err, "failed to fetch intervention")
	}
	return NewInterventionView(rec), nil
}

// NewInterventionView projects a record into its read view. Status is
// recomputed here on every read; it is never stored.
func NewInterventionView(rec *intervention.Record) *InterventionView {
	info := intervention.DeriveStatusInfo(rec)

	label := ""
	if rec.Date != nil {
		a := intervention.Assignment{Date: *rec.Date, Kind: rec.TimeSlot}
		if rec.FromInstant != nil {
			a.From = *rec.FromInstant
		}
		if rec.ToInstant != nil {
			a.To = *rec.ToInstant
		}
		label = intervention.FormatAssignmentLabel(a)
	}

	return &InterventionView{
		ID:              rec.ID,
		CustomerID:      rec.CustomerID,
		CustomerName:    rec.CustomerName,
		ZoneID:          rec.ZoneID,
		TypeID:          rec.TypeID,
		AssignedTo:      rec.AssignedTo,
		AssignedToName:  rec.AssignedToName,
		Date:            rec.Date,
		TimeSlot:        rec.TimeSlot,
		FromInstant:     rec.FromInstant,
		ToInstant:       rec.ToInstant,
		ReportID:        rec.ReportID,
		ReportFailed:    rec.ReportFailed,
		ApprovedBy:      rec.ApprovedBy,
		InvoicedBy:      rec.InvoicedBy,
		CancelledBy:     rec.CancelledBy,
		CallCode:        rec.CallCode,
		InternalNotes:   rec.InternalNotes,
		CalendarNotes:   rec.CalendarNotes,
		Equipment:       rec.Equipment,
		Articles:        rec.Articles,
		Status:          info.Key,
		StatusLabel:     info.Label,
		StatusColor:     info.Color,
		StatusClass:     info.ColorClass,
		AssignmentLabel: label,
		DurationHours:   intervention.DurationHours(rec.FromInstant, rec.ToInstant, rec.TimeSlot),
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
