package intervention

// StatusKey identifies one stage of the intervention lifecycle. The set is
// fixed: list and calendar views share this table and must not diverge.
type StatusKey string

const (
	StatusDraft        StatusKey = "draft"
	StatusToAssign     StatusKey = "to_assign"
	StatusInProgress   StatusKey = "in_progress"
	StatusSuspended    StatusKey = "suspended"
	StatusToConfirm    StatusKey = "to_confirm"
	StatusCompleted    StatusKey = "completed"
	StatusNotCompleted StatusKey = "not_completed"
	StatusToInvoice    StatusKey = "to_invoice"
	StatusInvoiced     StatusKey = "invoiced"
	StatusCancelled    StatusKey = "cancelled"
)

type StatusInfo struct {
	Key        StatusKey
	Label      string
	ColorClass string
	Color      string
}

// Statuses is the outward-facing enumeration. DeriveStatus only ever
// produces seven of these; draft, suspended and to_invoice are tags the
// backend applies to list rows and are kept here so filters resolve them.
var Statuses = []StatusInfo{
	{Key: StatusDraft, Label: "Bozza", ColorClass: "status-draft", Color: "#9CA3AF"},
	{Key: StatusToAssign, Label: "Da assegnare", ColorClass: "status-to-assign", Color: "#F59E0B"},
	{Key: StatusInProgress, Label: "In corso", ColorClass: "status-in-progress", Color: "#3B82F6"},
	{Key: StatusSuspended, Label: "Sospeso", ColorClass: "status-suspended", Color: "#A78BFA"},
	{Key: StatusToConfirm, Label: "Da confermare", ColorClass: "status-to-confirm", Color: "#06B6D4"},
	{Key: StatusCompleted, Label: "Completato", ColorClass: "status-completed", Color: "#22C55E"},
	{Key: StatusNotCompleted, Label: "Non completato", ColorClass: "status-not-completed", Color: "#EF4444"},
	{Key: StatusToInvoice, Label: "Da fatturare", ColorClass: "status-to-invoice", Color: "#EAB308"},
	{Key: StatusInvoiced, Label: "Fatturato", ColorClass: "status-invoiced", Color: "#16A34A"},
	{Key: StatusCancelled, Label: "Annullato", ColorClass: "status-cancelled", Color: "#6B7280"},
}

var statusByKey = func() map[StatusKey]StatusInfo {
	m := make(map[StatusKey]StatusInfo, len(Statuses))
	for _, s := range Statuses {
		m[s.Key] = s
	}
	return m
}()

func StatusOf(key StatusKey) (StatusInfo, bool) {
	s, ok := statusByKey[key]
	return s, ok
}

// SlotKind is the category of a time assignment.
type SlotKind string

const (
	SlotNone      SlotKind = "none"
	SlotMorning   SlotKind = "morning"
	SlotAfternoon SlotKind = "afternoon"
	SlotFullDay   SlotKind = "full_day"
	SlotCustom    SlotKind = "custom"
)

func (k SlotKind) Label() string {
	switch k {
	case SlotMorning:
		return "Mattina"
	case SlotAfternoon:
		return "Pomeriggio"
	case SlotFullDay:
		return "Giornata intera"
	case SlotCustom:
		return "Personalizzato"
	default:
		return ""
	}
}

// IsAssigned reports whether the slot counts as set for status derivation.
func (k SlotKind) IsAssigned() bool {
	return k != "" && k != SlotNone
}
