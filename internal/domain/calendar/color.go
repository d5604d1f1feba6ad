package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Appearance is the resolved rendering style for a booking chip.
type Appearance struct {
	Background string // rgba() when a hex color is set, otherwise empty
	Border     string
	Text       string
	Class      string // fallback CSS class when no hex color is set
}

const backgroundAlpha = 0.18

var hexColorRe = regexp.MustCompile(`^#?([0-9a-fA-F]{6})$`)

// statusClasses is the fallback label→class table for statuses that
// carry no hex color. Anything else gets the generic chip class.
var statusClasses = map[string]string{
	"completato":   "booking-completed",
	"annullato":    "booking-cancelled",
	"da assegnare": "booking-unassigned",
}

const defaultClass = "booking-default"

// ResolveAppearance maps a booking's status color to its chip style.
// A hex color yields a washed-out background (fixed alpha) with
// full-strength border and text; otherwise the class table applies.
func ResolveAppearance(statusColor, statusLabel string) Appearance {
	if m := hexColorRe.FindStringSubmatch(statusColor); m != nil {
		r, _ := strconv.ParseUint(m[1][0:2], 16, 8)
		g, _ := strconv.ParseUint(m[1][2:4], 16, 8)
		b, _ := strconv.ParseUint(m[1][4:6], 16, 8)
		full := "#" + strings.ToUpper(m[1])
		return Appearance{
			Background: fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, backgroundAlpha),
			Border:     full,
			Text:       full,
		}
	}

	if class, ok := statusClasses[normalizeStatus(statusLabel)]; ok {
		return Appearance{Class: class}
	}
	return Appearance{Class: defaultClass}
}
