package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/pkg/clock"
	"assistance-console/internal/pkg/config"
	"assistance-console/internal/usecase/commands"

	"github.com/google/uuid"
)

// AutoSaver is the debounced save path behind the notes and assignment
// fields: every queued edit restarts a fixed quiet-period timer, so at
// most one save is scheduled per window and it carries the last value
// of every edited field.
//
// Each record keeps a generation counter instead of the old boolean
// reentrancy flag: a save's outcome is applied only when its generation
// is still current, so a resync can never re-trigger a save and a stale
// in-flight response can never clobber a newer edit's state. Overlapping
// in-flight requests remain possible; the backend sees last-writer-wins
// either way.
//
// Failures stay soft: the error is parked on the record's state, the
// user keeps typing, and the next quiet period retries by carrying the
// failed fields forward. No automatic retry beyond that.
type AutoSaver struct {
	cmds   commands.AssignmentCommands
	delay  time.Duration
	clock  clock.Clock
	logger *slog.Logger

	mu     sync.Mutex
	states map[uuid.UUID]*autosaveState
}

type autosaveState struct {
	gen     uint64
	timer   *time.Timer
	pending intervention.Patch
	dirty   bool
	saving  bool
	lastErr error
	savedAt time.Time
}

// AutosaveState is the read-only snapshot the draft endpoint exposes.
type AutosaveState struct {
	Dirty   bool
	Saving  bool
	LastErr error
	SavedAt time.Time
}

func NewAutoSaver(cmds commands.AssignmentCommands, cfg config.AutosaveConfig, clk clock.Clock, logger *slog.Logger) *AutoSaver {
	return &AutoSaver{
		cmds:   cmds,
		delay:  cfg.Delay,
		clock:  clk,
		logger: logger,
		states: make(map[uuid.UUID]*autosaveState),
	}
}

// Queue merges the edit into the record's pending patch and restarts
// its debounce timer.
func (a *AutoSaver) Queue(id uuid.UUID, patch intervention.Patch) {
	if patch.IsEmpty() {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	st := a.states[id]
	if st == nil {
		st = &autosaveState{}
		a.states[id] = st
	}

	st.pending = st.pending.Merge(patch)
	st.dirty = true
	st.gen++
	gen := st.gen

	if st.timer != nil {
		st.timer.Stop()
	}
	st.timer = time.AfterFunc(a.delay, func() {
		a.flush(id, gen)
	})
}

// State reports the record's autosave status for the UI's inline flag.
func (a *AutoSaver) State(id uuid.UUID) AutosaveState {
	a.mu.Lock()
	defer a.mu.Unlock()

	st := a.states[id]
	if st == nil {
		return AutosaveState{}
	}
	return AutosaveState{
		Dirty:   st.dirty,
		Saving:  st.saving,
		LastErr: st.lastErr,
		SavedAt: st.savedAt,
	}
}

func (a *AutoSaver) flush(id uuid.UUID, gen uint64) {
	a.mu.Lock()
	st := a.states[id]
	if st == nil || st.gen != gen || !st.dirty {
		a.mu.Unlock()
		return
	}
	patch := st.pending
	st.pending = intervention.Patch{}
	st.dirty = false
	st.saving = true
	a.mu.Unlock()

	_, err := a.cmds.ApplyPartialUpdate(context.Background(), id, patch)

	a.mu.Lock()
	defer a.mu.Unlock()

	if st.gen != gen {
		// a newer edit arrived while this save was in flight; its own
		// flush owns the state now, this response is dropped
		if err != nil {
			st.pending = patch.Merge(st.pending)
			st.dirty = true
		}
		return
	}

	st.saving = false
	if err != nil {
		a.logger.Warn("auto-save failed", "intervention_id", id, "error", err)
		st.lastErr = err
		st.pending = patch.Merge(st.pending)
		st.dirty = true
		return
	}
	st.lastErr = nil
	st.savedAt = a.clock.Now()
}
