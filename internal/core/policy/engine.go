package policy

import (
	"github.com/2fiksen-ship-it/booking/internal/core/domain"
)

// Action enumerates every mutation the policy engine can be asked about.
// Read scoping goes through ReadFilter instead.
type Action string

const (
	// Tenant administration (super admin only).
	ActionCreateAgency Action = "CREATE_AGENCY"
	ActionUpdateAgency Action = "UPDATE_AGENCY"
	ActionDeleteAgency Action = "DELETE_AGENCY"
	ActionCreateUser   Action = "CREATE_USER"
	ActionUpdateUser   Action = "UPDATE_USER"
	ActionDeleteUser   Action = "DELETE_USER"

	// Review actions (general accountant or super admin).
	ActionApproveDailyReport    Action = "APPROVE_DAILY_REPORT"
	ActionRejectDailyReport     Action = "REJECT_DAILY_REPORT"
	ActionApproveDailyOperation Action = "APPROVE_DAILY_OPERATION"
	ActionRejectDailyOperation  Action = "REJECT_DAILY_OPERATION"
	ActionApproveDiscount       Action = "APPROVE_DISCOUNT"

	// Tenant writes (super admin anywhere, staff in their home agency).
	ActionCreateClient         Action = "CREATE_CLIENT"
	ActionUpdateClient         Action = "UPDATE_CLIENT"
	ActionDeleteClient         Action = "DELETE_CLIENT"
	ActionCreateSupplier       Action = "CREATE_SUPPLIER"
	ActionUpdateSupplier       Action = "UPDATE_SUPPLIER"
	ActionDeleteSupplier       Action = "DELETE_SUPPLIER"
	ActionCreateBooking        Action = "CREATE_BOOKING"
	ActionCreateInvoice        Action = "CREATE_INVOICE"
	ActionCreatePayment        Action = "CREATE_PAYMENT"
	ActionCreateDailyReport    Action = "CREATE_DAILY_REPORT"
	ActionCreateDailyOperation Action = "CREATE_DAILY_OPERATION"
	ActionCreateService        Action = "CREATE_SERVICE"
)

// Target identifies what a mutation acts on. AgencyID is the owning tenant of
// the record being written or reviewed; UserID is set for user-administration
// actions.
type Target struct {
	AgencyID string
	UserID   string
}

// Decision is the result of an authorization check. Denials are values, not
// errors: permission checks are expected and frequent.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow is the positive decision.
var Allow = Decision{Allowed: true}

// Deny creates a negative decision with the given reason.
func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Engine is the single chokepoint for scoping and mutation permissions.
// Every list endpoint applies ReadFilter and every write endpoint consults
// Authorize; no handler or service carries its own role comparison.
type Engine struct {
	// CrossAgencyReview lets a general accountant approve or reject records
	// of agencies other than their own. When false their review scope shrinks
	// to the home agency while their read scope stays global.
	CrossAgencyReview bool
}

// NewEngine creates a policy engine.
func NewEngine(crossAgencyReview bool) *Engine {
	return &Engine{CrossAgencyReview: crossAgencyReview}
}

// ReadFilter returns the tenant-visibility predicate for the caller. All-scope
// roles see every agency; Own-scope roles see only their home agency.
func (e *Engine) ReadFilter(caller domain.Caller) Filter {
	if caller.Role.ReadScope() == domain.ScopeAll {
		return Filter{All: true}
	}
	return Filter{AgencyID: caller.AgencyID}
}

// Authorize decides whether the caller may perform action on target.
// The rules are evaluated in order: tenant administration first, then review
// actions, then tenant writes, then default deny.
func (e *Engine) Authorize(caller domain.Caller, action Action, target Target) Decision {
	switch action {
	case ActionCreateAgency, ActionUpdateAgency, ActionDeleteAgency,
		ActionCreateUser, ActionUpdateUser, ActionDeleteUser:
		if caller.Role != domain.RoleSuperAdmin {
			return Deny("insufficient role")
		}
		if action == ActionDeleteUser && target.UserID == caller.UserID {
			return Deny("cannot delete own account")
		}
		return Allow

	case ActionApproveDailyReport, ActionRejectDailyReport,
		ActionApproveDailyOperation, ActionRejectDailyOperation,
		ActionApproveDiscount:
		switch caller.Role {
		case domain.RoleSuperAdmin:
			return Allow
		case domain.RoleGeneralAccountant:
			if e.CrossAgencyReview || target.AgencyID == caller.AgencyID {
				return Allow
			}
			return Deny("review restricted to home agency")
		default:
			return Deny("insufficient role")
		}

	case ActionCreateClient, ActionUpdateClient, ActionDeleteClient,
		ActionCreateSupplier, ActionUpdateSupplier, ActionDeleteSupplier,
		ActionCreateBooking, ActionCreateInvoice, ActionCreatePayment,
		ActionCreateDailyReport, ActionCreateDailyOperation, ActionCreateService:
		if caller.Role == domain.RoleSuperAdmin {
			return Allow
		}
		if target.AgencyID == caller.AgencyID {
			return Allow
		}
		return Deny("access denied to this agency's data")

	default:
		return Deny("insufficient role")
	}
}

// OwnAgencyFor returns the agency id a tenant write must be stored under for
// the caller. Staff writes are always forced onto the caller's home agency
// regardless of what the request body asked for; only a super admin may write
// into an arbitrary agency.
func (e *Engine) OwnAgencyFor(caller domain.Caller, requested string) string {
	if caller.Role == domain.RoleSuperAdmin && requested != "" {
		return requested
	}
	return caller.AgencyID
}
