package response

import (
	"fmt"
	"time"

	"assistance-console/internal/domain/calendar"

	"github.com/google/uuid"
)

type CalendarWeekResponse struct {
	Days  []string                             `json:"days"`
	Rows  []int                                `json:"rows"`
	Cells map[string][]CalendarBookingResponse `json:"cells"`
}

type CalendarBookingResponse struct {
	ID              uuid.UUID  `json:"id"`
	TechnicianLabel string     `json:"technicianLabel,omitempty"`
	CustomerLabel   string     `json:"customerLabel,omitempty"`
	From            *time.Time `json:"from,omitempty"`
	To              *time.Time `json:"to,omitempty"`
	StatusLabel     string     `json:"statusLabel"`
	Notes           string     `json:"notes,omitempty"`
	TopOffsetPx     int        `json:"topOffsetPx"`
	HeightPx        int        `json:"heightPx"`
	ZIndex          int        `json:"zIndex"`
	Background      string     `json:"background,omitempty"`
	Border          string     `json:"border,omitempty"`
	Text            string     `json:"text,omitempty"`
	Class           string     `json:"class,omitempty"`
}

func FromWeekGrid(grid *calendar.WeekGrid) *CalendarWeekResponse {
	resp := &CalendarWeekResponse{
		Days:  make([]string, len(grid.Days)),
		Rows:  grid.Rows,
		Cells: make(map[string][]CalendarBookingResponse, len(grid.Cells)),
	}
	for i, d := range grid.Days {
		resp.Days[i] = d.Format("2006-01-02")
	}
	for key, cell := range grid.Cells {
		out := make([]CalendarBookingResponse, len(cell))
		for i, pb := range cell {
			out[i] = CalendarBookingResponse{
				ID:              pb.ID,
				TechnicianLabel: pb.TechnicianLabel,
				CustomerLabel:   pb.CustomerLabel,
				From:            pb.From,
				To:              pb.To,
				StatusLabel:     pb.StatusLabel,
				Notes:           pb.Notes,
				TopOffsetPx:     pb.TopOffsetPx,
				HeightPx:        pb.HeightPx,
				ZIndex:          pb.ZIndex,
				Background:      pb.Appearance.Background,
				Border:          pb.Appearance.Border,
				Text:            pb.Appearance.Text,
				Class:           pb.Appearance.Class,
			}
		}
		resp.Cells[cellKeyString(key)] = out
	}
	return resp
}

func cellKeyString(key calendar.CellKey) string {
	return fmt.Sprintf("d%d-h%d", key.Day, key.Hour)
}
