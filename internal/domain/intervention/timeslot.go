package intervention

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrMissingCustomBounds = errors.New("custom slot requires both start and end times")
	ErrInvalidClockTime    = errors.New("invalid clock time, want HH:MM")
	ErrLabelWithoutDate    = errors.New("assignment label contains no date")
)

// SlotBounds are the concrete instants a (date, slot kind) pair resolves
// to. To stays zero for the unrecognized-kind fallback (see ResolveSlot).
type SlotBounds struct {
	From time.Time
	To   time.Time
}

// Assignment is the structured time assignment passed end-to-end. The
// free-text label is rendered from it for display only and never parsed
// back on the write path.
type Assignment struct {
	Date time.Time
	Kind SlotKind
	From time.Time
	To   time.Time
}

var (
	labelDateRe  = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{4})`)
	labelRangeRe = regexp.MustCompile(`dalle (\d{1,2}[:.]\d{2}) alle (\d{1,2}[:.]\d{2})`)
	clockRe      = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})$`)
)

// namedSlots is checked in this order before the generic dalle/alle
// grammar; matching is by case-sensitive substring, like the legacy
// labels were written.
var namedSlots = []struct {
	needle string
	kind   SlotKind
}{
	{"Mattina", SlotMorning},
	{"Pomeriggio", SlotAfternoon},
	{"Giornata", SlotFullDay},
}

// ResolveSlot turns a calendar date plus slot kind into concrete start
// and end instants in the date's location. Custom slots require both
// HH:MM bounds. An unrecognized or empty kind falls back to the morning
// start with no end; that permissive default is legacy behavior call
// sites depend on (they always get some instant back), kept as-is
// pending product confirmation.
func ResolveSlot(date time.Time, kind SlotKind, customStart, customEnd string) (SlotBounds, error) {
	switch kind {
	case SlotMorning:
		return SlotBounds{From: at(date, 8, 0), To: at(date, 13, 0)}, nil
	case SlotAfternoon:
		return SlotBounds{From: at(date, 14, 0), To: at(date, 18, 0)}, nil
	case SlotFullDay:
		return SlotBounds{From: at(date, 8, 0), To: at(date, 18, 0)}, nil
	case SlotCustom:
		if customStart == "" || customEnd == "" {
			return SlotBounds{}, ErrMissingCustomBounds
		}
		from, err := atClock(date, customStart)
		if err != nil {
			return SlotBounds{}, err
		}
		to, err := atClock(date, customEnd)
		if err != nil {
			return SlotBounds{}, err
		}
		return SlotBounds{From: from, To: to}, nil
	default:
		return SlotBounds{From: at(date, 8, 0)}, nil
	}
}

// ParseAssignmentLabel parses the two legacy label grammars:
//
//	"DD/MM/YYYY - <SlotName> (h:mm - h:mm)"
//	"DD/MM/YYYY dalle HH:MM alle HH:MM"
//
// Named slots win over the generic range; a label with no date is a
// parse failure. Kept only for importing labels written by the old
// system; new code renders with FormatAssignmentLabel and never
// round-trips through text.
func ParseAssignmentLabel(text string) (Assignment, error) {
	m := labelDateRe.FindStringSubmatch(text)
	if m == nil {
		return Assignment{}, ErrLabelWithoutDate
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)

	for _, ns := range namedSlots {
		if strings.Contains(text, ns.needle) {
			bounds, err := ResolveSlot(date, ns.kind, "", "")
			if err != nil {
				return Assignment{}, err
			}
			return Assignment{Date: date, Kind: ns.kind, From: bounds.From, To: bounds.To}, nil
		}
	}

	if r := labelRangeRe.FindStringSubmatch(text); r != nil {
		from, err := atClock(date, r[1])
		if err != nil {
			return Assignment{}, err
		}
		to, err := atClock(date, r[2])
		if err != nil {
			return Assignment{}, err
		}
		return Assignment{Date: date, Kind: SlotCustom, From: from, To: to}, nil
	}

	return Assignment{Date: date, Kind: SlotNone}, nil
}

// FormatAssignmentLabel renders the display-only assignment label.
func FormatAssignmentLabel(a Assignment) string {
	date := a.Date.Format("02/01/2006")
	switch a.Kind {
	case SlotMorning, SlotAfternoon, SlotFullDay:
		return fmt.Sprintf("%s - %s (%s - %s)", date, a.Kind.Label(), shortClock(a.From), shortClock(a.To))
	case SlotCustom:
		return fmt.Sprintf("%s dalle %s alle %s", date, a.From.Format("15:04"), a.To.Format("15:04"))
	default:
		return date
	}
}

// DurationHours is the rendered duration of a booking in whole hours.
// With both instants present it is the rounded span, floored at one
// hour; otherwise the fixed per-kind table applies.
func DurationHours(from, to *time.Time, kind SlotKind) int {
	if from != nil && to != nil {
		h := int(math.Round(to.Sub(*from).Hours()))
		if h < 1 {
			h = 1
		}
		return h
	}
	switch kind {
	case SlotMorning:
		return 5
	case SlotAfternoon:
		return 4
	case SlotFullDay:
		return 10
	default:
		return 1
	}
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

func atClock(date time.Time, clock string) (time.Time, error) {
	m := clockRe.FindStringSubmatch(clock)
	if m == nil {
		return time.Time{}, ErrInvalidClockTime
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return time.Time{}, ErrInvalidClockTime
	}
	return at(date, hour, minute), nil
}

func shortClock(t time.Time) string {
	return fmt.Sprintf("%d:%02d", t.Hour(), t.Minute())
}
