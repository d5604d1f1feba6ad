//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"assistance-console/internal/domain/calendar"
	"assistance-console/internal/domain/intervention"
	"assistance-console/internal/handler/api"
	resdto "assistance-console/internal/handler/dto/response"
	"assistance-console/internal/pkg/errs"
	"assistance-console/tests/common/httptest"
	queriesmock "assistance-console/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CalendarHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockCalendarQueries
}

func (s *CalendarHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockCalendarQueries(s.mockCtrl)
	h := api.NewCalendarHandler(s.mockQueries)

	s.router.GET("/calendar/week", h.Week)
	s.router.GET("/calendar/statuses", h.Statuses)
}

func (s *CalendarHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCalendarHandlerSuite(t *testing.T) {
	suite.Run(t, new(CalendarHandlerTestSuite))
}

func (s *CalendarHandlerTestSuite) weekGrid() *calendar.WeekGrid {
	monday := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.Local)
	grid := &calendar.WeekGrid{
		Rows:  []int{8, 9, 10},
		Cells: make(map[calendar.CellKey][]calendar.PositionedBooking),
	}
	for i := range grid.Days {
		grid.Days[i] = monday.AddDate(0, 0, i)
	}
	grid.Cells[calendar.CellKey{Day: 0, Hour: 8}] = []calendar.PositionedBooking{
		{
			Booking: calendar.Booking{
				ID:              uuid.New(),
				TechnicianLabel: "Mario Bianchi",
				StatusLabel:     "In corso",
			},
			TopOffsetPx: 4,
			HeightPx:    200,
			ZIndex:      10,
			Appearance:  calendar.ResolveAppearance("#3B82F6", "In corso"),
		},
	}
	return grid
}

func (s *CalendarHandlerTestSuite) TestWeek() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().Week(gomock.Any(), gomock.Any(), calendar.Filters{}).DoAndReturn(
			func(_ context.Context, start time.Time, _ calendar.Filters) (*calendar.WeekGrid, error) {
				s.Equal("2024-01-15", start.Format("2006-01-02"))
				return s.weekGrid(), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/week?start=2024-01-15", nil, "")

		s.Equal(http.StatusOK, w.Code)
		var resp resdto.CalendarWeekResponse
		_ = httptest.DecodeResponseBody(s.T(), w.Body, &resp)

		s.Equal([]string{"2024-01-15", "2024-01-16", "2024-01-17", "2024-01-18", "2024-01-19", "2024-01-20"}, resp.Days)
		s.Require().Contains(resp.Cells, "d0-h8")
		cell := resp.Cells["d0-h8"]
		s.Require().Len(cell, 1)
		s.Equal("Mario Bianchi", cell[0].TechnicianLabel)
		s.Equal(200, cell[0].HeightPx)
		s.Equal("rgba(59, 130, 246, 0.18)", cell[0].Background)
	})

	s.Run("filters are split on commas", func() {
		s.mockQueries.EXPECT().Week(gomock.Any(), gomock.Any(), calendar.Filters{
			Technicians: []string{"Mario Bianchi", "Luca Verdi"},
			Statuses:    []string{"In corso"},
		}).Return(s.weekGrid(), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/calendar/week?start=2024-01-15&technicians=Mario+Bianchi,+Luca+Verdi&statuses=In+corso", nil, "")
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("missing start date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/week", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("malformed start date", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/week?start=15-01-2024", nil, "")
		s.Equal(http.StatusBadRequest, w.Code)
	})

	s.Run("backend auth failure", func() {
		s.mockQueries.EXPECT().Week(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.New("401"), errs.ErrBackendAuth))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/week?start=2024-01-15", nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("backend unavailable", func() {
		s.mockQueries.EXPECT().Week(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.New("boom"))

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/week?start=2024-01-15", nil, "")
		s.Equal(http.StatusBadGateway, w.Code)
	})
}

func (s *CalendarHandlerTestSuite) TestStatuses() {
	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/calendar/statuses", nil, "")

	s.Equal(http.StatusOK, w.Code)
	var entries []resdto.StatusEntryResponse
	_ = httptest.DecodeResponseBody(s.T(), w.Body, &entries)

	s.Len(entries, len(intervention.Statuses))
	s.Equal(intervention.StatusDraft, entries[0].Key)
	s.Equal("Bozza", entries[0].Label)
}
