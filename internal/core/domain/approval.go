package domain

// ApprovalStatus is the shared lifecycle of daily reports, daily operations
// and discount requests: Pending -> {Approved, Rejected}, both terminal.
type ApprovalStatus string

const (
	// StatusDraft applies only to a daily operation while its discount is
	// still being composed, before the discount request is filed.
	StatusDraft    ApprovalStatus = "DRAFT"
	StatusPending  ApprovalStatus = "PENDING"
	StatusApproved ApprovalStatus = "APPROVED"
	StatusRejected ApprovalStatus = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s ApprovalStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}
