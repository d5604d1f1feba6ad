package api

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"assistance-console/internal/domain/calendar"
	resdto "assistance-console/internal/handler/dto/response"
	"assistance-console/internal/handler/httperr"
	"assistance-console/internal/pkg/errs"
	"assistance-console/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	queries queries.CalendarQueries
}

func NewCalendarHandler(qs queries.CalendarQueries) *CalendarHandler {
	return &CalendarHandler{queries: qs}
}

// Week serves the laid-out weekly grid. start is any date inside the
// wanted week; technicians/statuses are comma-separated filter sets.
func (h *CalendarHandler) Week(c *gin.Context) {
	start, err := time.ParseInLocation("2006-01-02", c.Query("start"), time.Local)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid or missing start date, want YYYY-MM-DD", nil)
		return
	}

	filters := calendar.Filters{
		Technicians: splitFilter(c.Query("technicians")),
		Statuses:    splitFilter(c.Query("statuses")),
	}

	grid, err := h.queries.Week(c.Request.Context(), start, filters)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBackendAuth):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Backend session expired", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Backend unavailable", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekGrid(grid))
}

// Statuses serves the fixed status enumeration both views filter on.
func (h *CalendarHandler) Statuses(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.StatusEntries())
}

func splitFilter(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
