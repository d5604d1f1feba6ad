package commands

import (
	"context"
	"time"

	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/infra"
	"assistance-console/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

var (
	ErrInterventionNotFound   = errs.New("intervention not found")
	ErrEmptyPatch             = errs.New("empty partial update")
	ErrDomainValidation       = errs.New("domain validation error")
	ErrBackendAuth            = errs.New("backend rejected credentials")
	ErrGatewayOperationFailed = errs.New("gateway operation failed")
)

// RecordGateway is the slice of the backend record API the assignment
// commands need. Put has full-replace semantics: the merged record is
// always resent whole.
type RecordGateway interface {
	GetIntervention(ctx context.Context, id uuid.UUID) (*intervention.Record, error)
	PutIntervention(ctx context.Context, id uuid.UUID, rec *intervention.Record) error
	CreateIntervention(ctx context.Context, rec *intervention.Record) (*intervention.Record, error)
}

type CreateInterventionInput struct {
	CustomerID    uuid.UUID
	ZoneID        uuid.UUID
	TypeID        uuid.UUID
	CallCode      string
	InternalNotes string
}

// ConfirmAssignmentInput is what the assignment dialog collects: a
// technician, a date and a slot kind, with explicit bounds only for
// custom slots.
type ConfirmAssignmentInput struct {
	TechnicianID   *uuid.UUID
	TechnicianName string
	Date           time.Time
	Kind           intervention.SlotKind
	CustomStart    string
	CustomEnd      string
	CalendarNotes  *string
}

type AssignmentCommands interface {
	Create(ctx context.Context, in CreateInterventionInput) (*intervention.Record, error)
	Replace(ctx context.Context, id uuid.UUID, rec *intervention.Record) (*intervention.Record, error)
	ApplyPartialUpdate(ctx context.Context, id uuid.UUID, patch intervention.Patch) (*intervention.Record, error)
	ConfirmAssignment(ctx context.Context, id uuid.UUID, in ConfirmAssignmentInput) (*intervention.Record, error)
}

type assignmentCommandsImpl struct {
	gateway RecordGateway
}

func NewAssignmentCommands(gateway RecordGateway) AssignmentCommands {
	return &assignmentCommandsImpl{gateway: gateway}
}

func (c *assignmentCommandsImpl) Create(ctx context.Context, in CreateInterventionInput) (*intervention.Record, error) {
	rec := intervention.NewRecord(in.CustomerID, in.ZoneID, in.TypeID)
	rec.CallCode = in.CallCode
	rec.InternalNotes = in.InternalNotes

	created, err := c.gateway.CreateIntervention(ctx, rec)
	if err != nil {
		return nil, c.mapGatewayErr(err)
	}
	return created, nil
}

// Replace pushes a caller-built full record through the backend's
// full-replace PUT and re-reads it, used by the detail form's save.
func (c *assignmentCommandsImpl) Replace(ctx context.Context, id uuid.UUID, rec *intervention.Record) (*intervention.Record, error) {
	if err := c.gateway.PutIntervention(ctx, id, rec); err != nil {
		return nil, c.mapGatewayErr(err)
	}
	return c.reread(ctx, id)
}

// ApplyPartialUpdate runs the read-modify-write cycle: fetch the
// current record, merge the patch over a copy, persist the whole body,
// then re-read so server-computed fields (auto-populated codes,
// timestamps) land back in the caller's state.
//
// There is no optimistic-concurrency check: the backend PUT carries no
// version to compare, so two concurrent editors silently overwrite each
// other and the last writer wins. Known gap, kept deliberately.
func (c *assignmentCommandsImpl) ApplyPartialUpdate(ctx context.Context, id uuid.UUID, patch intervention.Patch) (*intervention.Record, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	current, err := c.gateway.GetIntervention(ctx, id)
	if err != nil {
		return nil, c.mapGatewayErr(err)
	}

	var merged intervention.Record
	if err := copier.Copy(&merged, current); err != nil {
		return nil, errs.Mark(err, ErrGatewayOperationFailed)
	}
	patch.ApplyTo(&merged)

	if err := c.gateway.PutIntervention(ctx, id, &merged); err != nil {
		return nil, c.mapGatewayErr(err)
	}
	return c.reread(ctx, id)
}

// ConfirmAssignment is the dialog-confirm path: it resolves the slot to
// concrete instants and applies everything as one partial update.
func (c *assignmentCommandsImpl) ConfirmAssignment(ctx context.Context, id uuid.UUID, in ConfirmAssignmentInput) (*intervention.Record, error) {
	bounds, err := intervention.ResolveSlot(in.Date, in.Kind, in.CustomStart, in.CustomEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	date := in.Date
	kind := in.Kind
	patch := intervention.Patch{
		AssignedTo:    in.TechnicianID,
		Date:          &date,
		TimeSlot:      &kind,
		FromInstant:   &bounds.From,
		CalendarNotes: in.CalendarNotes,
	}
	if in.TechnicianName != "" {
		name := in.TechnicianName
		patch.AssignedToName = &name
	}
	if !bounds.To.IsZero() {
		to := bounds.To
		patch.ToInstant = &to
	}

	return c.ApplyPartialUpdate(ctx, id, patch)
}

func (c *assignmentCommandsImpl) reread(ctx context.Context, id uuid.UUID) (*intervention.Record, error) {
	rec, err := c.gateway.GetIntervention(ctx, id)
	if err != nil {
		return nil, c.mapGatewayErr(err)
	}
	return rec, nil
}

func (c *assignmentCommandsImpl) mapGatewayErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return ErrInterventionNotFound
	case infra.IsKind(err, infra.KindUnauthorized):
		return errs.Mark(err, ErrBackendAuth)
	default:
		return errs.Mark(err, ErrGatewayOperationFailed)
	}
}
