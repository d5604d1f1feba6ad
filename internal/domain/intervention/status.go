package intervention

import "strings"

// DeriveStatus computes the lifecycle status from the record's fields.
// Pure and total: every well-formed record maps to exactly one key and
// malformed combinations (say both invoiced and cancelled set) are
// resolved by rule order, never reported as errors.
//
// The order is load-bearing:
//  1. invoiced wins over everything
//  2. then cancelled
//  3. then any missing assignment field means to_assign
//  4. fully assigned defaults to in_progress
//  5. a linked report moves it to to_confirm
//  6. an approved report lands on completed, or not_completed when the
//     report is flagged failed (nil counts as not failed)
func DeriveStatus(r *Record) StatusKey {
	if hasActor(r.InvoicedBy) {
		return StatusInvoiced
	}
	if hasActor(r.CancelledBy) {
		return StatusCancelled
	}
	if !r.IsFullyAssigned() {
		return StatusToAssign
	}
	if !hasActor(r.ReportID) {
		return StatusInProgress
	}
	if !hasActor(r.ApprovedBy) {
		return StatusToConfirm
	}
	if r.ReportFailed != nil && *r.ReportFailed {
		return StatusNotCompleted
	}
	return StatusCompleted
}

// DeriveStatusInfo resolves the derived key to its display entry.
func DeriveStatusInfo(r *Record) StatusInfo {
	info, _ := StatusOf(DeriveStatus(r))
	return info
}

func trimmedNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
