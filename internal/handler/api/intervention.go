package api

import (
	"errors"
	"net/http"

	"assistance-console/internal/domain/intervention"
	reqdto "assistance-console/internal/handler/dto/request"
	resdto "assistance-console/internal/handler/dto/response"
	"assistance-console/internal/handler/httperr"
	"assistance-console/internal/pkg/errs"
	"assistance-console/internal/usecase"
	"assistance-console/internal/usecase/commands"
	"assistance-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InterventionHandler struct {
	commands  commands.AssignmentCommands
	queries   queries.InterventionQueries
	autosaver *usecase.AutoSaver
}

func NewInterventionHandler(
	cmds commands.AssignmentCommands,
	qs queries.InterventionQueries,
	autosaver *usecase.AutoSaver,
) *InterventionHandler {
	return &InterventionHandler{
		commands:  cmds,
		queries:   qs,
		autosaver: autosaver,
	}
}

func (h *InterventionHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInterventionView(view))
}

func (h *InterventionHandler) Create(c *gin.Context) {
	var req reqdto.CreateInterventionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	rec, err := h.commands.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Location", "/api/interventions/"+rec.ID.String())
	c.JSON(http.StatusCreated, resdto.FromInterventionView(queries.NewInterventionView(rec)))
}

// Replace is the detail form's save: a full-body PUT, every field
// resent even for a one-field change, matching the backend's replace
// semantics.
func (h *InterventionHandler) Replace(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var rec intervention.Record
	if bindErr := c.ShouldBindJSON(&rec); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}
	rec.ID = id

	updated, err := h.commands.Replace(c.Request.Context(), id, &rec)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInterventionView(queries.NewInterventionView(updated)))
}

// ConfirmAssignment is the dialog confirm: immediate mode, one round
// trip, errors surface to the caller synchronously.
func (h *InterventionHandler) ConfirmAssignment(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.ConfirmAssignmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid assignment date", nil)
		return
	}

	rec, err := h.commands.ConfirmAssignment(c.Request.Context(), id, input)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInterventionView(queries.NewInterventionView(rec)))
}

// PatchDraft queues an edit on the debounced auto-save path and
// returns immediately; failures show up as the draft state's soft
// error flag, never as a blocking response.
func (h *InterventionHandler) PatchDraft(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var req reqdto.DraftPatchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	patch := req.ToPatch()
	if patch.IsEmpty() {
		httperr.AbortWithError(c, http.StatusBadRequest, commands.ErrEmptyPatch, "No fields to save", nil)
		return
	}

	h.autosaver.Queue(id, patch)
	c.JSON(http.StatusAccepted, gin.H{
		"queued": true,
	})
}

func (h *InterventionHandler) GetDraft(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	state := h.autosaver.State(id)
	resp := resdto.AutosaveStateResponse{
		Dirty:  state.Dirty,
		Saving: state.Saving,
	}
	if state.LastErr != nil {
		msg := state.LastErr.Error()
		resp.Error = &msg
	}
	if !state.SavedAt.IsZero() {
		savedAt := state.SavedAt
		resp.SavedAt = &savedAt
	}
	c.JSON(http.StatusOK, resp)
}

func (h *InterventionHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid intervention ID format", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (h *InterventionHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrInterventionNotFound) || errors.Is(err, errs.ErrInterventionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Intervention not found", nil)
	case errors.Is(err, commands.ErrBackendAuth) || errors.Is(err, errs.ErrBackendAuth):
		// session teardown is the client's job; no retry here
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "Backend session expired", nil)
	case errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid assignment", nil)
	case errors.Is(err, commands.ErrEmptyPatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No fields to save", nil)
	case errors.Is(err, commands.ErrGatewayOperationFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Backend unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
