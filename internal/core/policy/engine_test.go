package policy_test

import (
	"testing"

	"github.com/2fiksen-ship-it/booking/internal/core/domain"
	"github.com/2fiksen-ship-it/booking/internal/core/policy"
	"github.com/stretchr/testify/assert"
)

var (
	superAdmin = domain.Caller{UserID: "u-admin", Role: domain.RoleSuperAdmin, AgencyID: "hq"}
	accountant = domain.Caller{UserID: "u-acct", Role: domain.RoleGeneralAccountant, AgencyID: "agency-1"}
	staff      = domain.Caller{UserID: "u-staff", Role: domain.RoleAgencyStaff, AgencyID: "agency-1"}
)

func TestReadFilter(t *testing.T) {
	engine := policy.NewEngine(true)

	assert.True(t, engine.ReadFilter(superAdmin).All)
	assert.True(t, engine.ReadFilter(accountant).All)

	staffFilter := engine.ReadFilter(staff)
	assert.False(t, staffFilter.All)
	assert.Equal(t, "agency-1", staffFilter.AgencyID)
}

func TestAuthorize_TenantAdministration(t *testing.T) {
	engine := policy.NewEngine(true)
	adminActions := []policy.Action{
		policy.ActionCreateAgency,
		policy.ActionUpdateAgency,
		policy.ActionDeleteAgency,
		policy.ActionCreateUser,
		policy.ActionUpdateUser,
		policy.ActionDeleteUser,
	}

	for _, action := range adminActions {
		assert.True(t, engine.Authorize(superAdmin, action, policy.Target{AgencyID: "agency-2"}).Allowed, string(action))
		assert.False(t, engine.Authorize(accountant, action, policy.Target{AgencyID: "agency-1"}).Allowed, string(action))
		assert.False(t, engine.Authorize(staff, action, policy.Target{AgencyID: "agency-1"}).Allowed, string(action))
	}
}

func TestAuthorize_SelfDeleteDenied(t *testing.T) {
	engine := policy.NewEngine(true)

	decision := engine.Authorize(superAdmin, policy.ActionDeleteUser, policy.Target{UserID: superAdmin.UserID})
	assert.False(t, decision.Allowed)
	assert.Equal(t, "cannot delete own account", decision.Reason)

	assert.True(t, engine.Authorize(superAdmin, policy.ActionDeleteUser, policy.Target{UserID: "someone-else"}).Allowed)
}

func TestAuthorize_ReviewActions(t *testing.T) {
	reviewActions := []policy.Action{
		policy.ActionApproveDailyReport,
		policy.ActionRejectDailyReport,
		policy.ActionApproveDailyOperation,
		policy.ActionRejectDailyOperation,
		policy.ActionApproveDiscount,
	}

	withCross := policy.NewEngine(true)
	withoutCross := policy.NewEngine(false)

	for _, action := range reviewActions {
		// Super admin reviews anywhere regardless of the flag.
		assert.True(t, withCross.Authorize(superAdmin, action, policy.Target{AgencyID: "agency-9"}).Allowed, string(action))
		assert.True(t, withoutCross.Authorize(superAdmin, action, policy.Target{AgencyID: "agency-9"}).Allowed, string(action))

		// Accountant reviews their home agency always.
		assert.True(t, withCross.Authorize(accountant, action, policy.Target{AgencyID: "agency-1"}).Allowed, string(action))
		assert.True(t, withoutCross.Authorize(accountant, action, policy.Target{AgencyID: "agency-1"}).Allowed, string(action))

		// Foreign agencies only with the cross-agency flag.
		assert.True(t, withCross.Authorize(accountant, action, policy.Target{AgencyID: "agency-2"}).Allowed, string(action))
		foreign := withoutCross.Authorize(accountant, action, policy.Target{AgencyID: "agency-2"})
		assert.False(t, foreign.Allowed, string(action))
		assert.Equal(t, "review restricted to home agency", foreign.Reason)

		// Staff never review.
		assert.False(t, withCross.Authorize(staff, action, policy.Target{AgencyID: "agency-1"}).Allowed, string(action))
	}
}

func TestAuthorize_TenantWrites(t *testing.T) {
	engine := policy.NewEngine(true)
	writeActions := []policy.Action{
		policy.ActionCreateClient,
		policy.ActionCreateSupplier,
		policy.ActionCreateBooking,
		policy.ActionCreateInvoice,
		policy.ActionCreatePayment,
		policy.ActionCreateDailyReport,
		policy.ActionCreateDailyOperation,
		policy.ActionCreateService,
	}

	for _, action := range writeActions {
		assert.True(t, engine.Authorize(superAdmin, action, policy.Target{AgencyID: "agency-5"}).Allowed, string(action))
		assert.True(t, engine.Authorize(staff, action, policy.Target{AgencyID: "agency-1"}).Allowed, string(action))

		decision := engine.Authorize(staff, action, policy.Target{AgencyID: "agency-2"})
		assert.False(t, decision.Allowed, string(action))
		assert.Equal(t, "access denied to this agency's data", decision.Reason)
	}
}

func TestAuthorize_UnknownActionDenied(t *testing.T) {
	engine := policy.NewEngine(true)
	assert.False(t, engine.Authorize(superAdmin, policy.Action("LAUNCH_MISSILES"), policy.Target{}).Allowed)
}

func TestOwnAgencyFor(t *testing.T) {
	engine := policy.NewEngine(true)

	// Staff writes always land on the home agency, whatever was requested.
	assert.Equal(t, "agency-1", engine.OwnAgencyFor(staff, "agency-2"))
	assert.Equal(t, "agency-1", engine.OwnAgencyFor(staff, ""))
	assert.Equal(t, "agency-1", engine.OwnAgencyFor(accountant, "agency-2"))

	// Super admin may target any agency, falling back to home when omitted.
	assert.Equal(t, "agency-2", engine.OwnAgencyFor(superAdmin, "agency-2"))
	assert.Equal(t, "hq", engine.OwnAgencyFor(superAdmin, ""))
}

func TestFilter_Matches(t *testing.T) {
	all := policy.Filter{All: true}
	own := policy.Filter{AgencyID: "agency-1"}

	assert.True(t, all.Matches("anything"))
	assert.True(t, own.Matches("agency-1"))
	assert.False(t, own.Matches("agency-2"))
}

func TestFilter_Narrow(t *testing.T) {
	all := policy.Filter{All: true}
	own := policy.Filter{AgencyID: "agency-1"}

	// An all-scope filter passes the requested set through unchanged.
	assert.Nil(t, all.Narrow(nil))
	assert.Equal(t, []string{"a", "b"}, all.Narrow([]string{"a", "b"}))

	// An own-scope filter ignores the request entirely.
	assert.Equal(t, []string{"agency-1"}, own.Narrow(nil))
	assert.Equal(t, []string{"agency-1"}, own.Narrow([]string{"agency-2", "agency-3"}))
}

func TestFilter_SQLClause(t *testing.T) {
	clause, args := policy.Filter{All: true}.SQLClause("agency_id", 1)
	assert.Empty(t, clause)
	assert.Nil(t, args)

	clause, args = policy.Filter{AgencyID: "agency-1"}.SQLClause("agency_id", 3)
	assert.Equal(t, "agency_id = $3", clause)
	assert.Equal(t, []any{"agency-1"}, args)
}
