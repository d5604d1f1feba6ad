//go:build unit

package intervention_test

import (
	"testing"

	"assistance-console/internal/domain/intervention"
	"assistance-console/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusCase struct {
	name   string
	mutate func(*builder.InterventionBuilder)
	expect intervention.StatusKey
}

func runStatusCases(t *testing.T, cases []statusCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewInterventionBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			assert.Equal(t, tc.expect, intervention.DeriveStatus(b.BuildRecord()))
		})
	}
}

func TestDeriveStatus(t *testing.T) {
	t.Run("fully assigned record is in progress", func(t *testing.T) {
		rec := builder.NewInterventionBuilder().BuildRecord()
		assert.Equal(t, intervention.StatusInProgress, intervention.DeriveStatus(rec))
	})

	t.Run("missing assignment fields", func(t *testing.T) {
		runStatusCases(t, []statusCase{
			{
				name:   "nothing assigned",
				mutate: func(b *builder.InterventionBuilder) { b.Unassigned() },
				expect: intervention.StatusToAssign,
			},
			{
				name: "no technician",
				mutate: func(b *builder.InterventionBuilder) {
					b.AssignedTo = nil
					b.AssignedToName = ""
				},
				expect: intervention.StatusToAssign,
			},
			{
				name: "zero uuid technician counts as missing",
				mutate: func(b *builder.InterventionBuilder) {
					nilID := uuid.Nil
					b.AssignedTo = &nilID
					b.AssignedToName = ""
				},
				expect: intervention.StatusToAssign,
			},
			{
				name: "whitespace technician name counts as missing",
				mutate: func(b *builder.InterventionBuilder) {
					b.AssignedTo = nil
					b.AssignedToName = "   "
				},
				expect: intervention.StatusToAssign,
			},
			{
				name: "technician by display name only is enough",
				mutate: func(b *builder.InterventionBuilder) {
					b.AssignedTo = nil
					b.AssignedToName = "Mario Bianchi"
				},
				expect: intervention.StatusInProgress,
			},
			{
				name:   "no date",
				mutate: func(b *builder.InterventionBuilder) { b.Date = nil },
				expect: intervention.StatusToAssign,
			},
			{
				name:   "no slot kind",
				mutate: func(b *builder.InterventionBuilder) { b.TimeSlot = intervention.SlotNone },
				expect: intervention.StatusToAssign,
			},
			{
				name:   "no start instant",
				mutate: func(b *builder.InterventionBuilder) { b.FromInstant = nil },
				expect: intervention.StatusToAssign,
			},
			{
				name:   "no end instant",
				mutate: func(b *builder.InterventionBuilder) { b.ToInstant = nil },
				expect: intervention.StatusToAssign,
			},
		})
	})

	t.Run("report progression", func(t *testing.T) {
		failed := true
		succeeded := false
		runStatusCases(t, []statusCase{
			{
				name:   "linked report awaits confirmation",
				mutate: func(b *builder.InterventionBuilder) { b.WithReport(nil) },
				expect: intervention.StatusToConfirm,
			},
			{
				name:   "approved report completes",
				mutate: func(b *builder.InterventionBuilder) { b.WithReport(nil).ApprovedByActor() },
				expect: intervention.StatusCompleted,
			},
			{
				name:   "approved report with explicit success flag completes",
				mutate: func(b *builder.InterventionBuilder) { b.WithReport(&succeeded).ApprovedByActor() },
				expect: intervention.StatusCompleted,
			},
			{
				name:   "approved failed report is not completed",
				mutate: func(b *builder.InterventionBuilder) { b.WithReport(&failed).ApprovedByActor() },
				expect: intervention.StatusNotCompleted,
			},
			{
				name:   "failed flag without approval still awaits confirmation",
				mutate: func(b *builder.InterventionBuilder) { b.WithReport(&failed) },
				expect: intervention.StatusToConfirm,
			},
		})
	})

	t.Run("terminal states win over everything", func(t *testing.T) {
		failed := true
		runStatusCases(t, []statusCase{
			{
				name:   "cancelled beats to assign",
				mutate: func(b *builder.InterventionBuilder) { b.Unassigned().CancelledByActor() },
				expect: intervention.StatusCancelled,
			},
			{
				name: "cancelled beats completed",
				mutate: func(b *builder.InterventionBuilder) {
					b.WithReport(nil).ApprovedByActor().CancelledByActor()
				},
				expect: intervention.StatusCancelled,
			},
			{
				name:   "invoiced beats cancelled",
				mutate: func(b *builder.InterventionBuilder) { b.CancelledByActor().InvoicedByActor() },
				expect: intervention.StatusInvoiced,
			},
			{
				name:   "invoiced beats to assign",
				mutate: func(b *builder.InterventionBuilder) { b.Unassigned().InvoicedByActor() },
				expect: intervention.StatusInvoiced,
			},
			{
				name: "invoiced beats not completed",
				mutate: func(b *builder.InterventionBuilder) {
					b.WithReport(&failed).ApprovedByActor().InvoicedByActor()
				},
				expect: intervention.StatusInvoiced,
			},
		})
	})

	t.Run("new record starts at to assign", func(t *testing.T) {
		rec := intervention.NewRecord(uuid.New(), uuid.New(), uuid.New())
		assert.Equal(t, intervention.StatusToAssign, intervention.DeriveStatus(rec))
	})
}

func TestDeriveStatusInfo(t *testing.T) {
	rec := builder.NewInterventionBuilder().BuildRecord()
	info := intervention.DeriveStatusInfo(rec)

	assert.Equal(t, intervention.StatusInProgress, info.Key)
	assert.Equal(t, "In corso", info.Label)
	assert.NotEmpty(t, info.Color)
}

func TestStatusOf(t *testing.T) {
	t.Run("every table entry resolves", func(t *testing.T) {
		for _, info := range intervention.Statuses {
			got, ok := intervention.StatusOf(info.Key)
			require.True(t, ok)
			assert.Equal(t, info, got)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		_, ok := intervention.StatusOf(intervention.StatusKey("nonsense"))
		assert.False(t, ok)
	})
}
