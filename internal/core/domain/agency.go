package domain

// Agency represents a travel-agency branch, the unit of data ownership.
// Every tenant-owned record carries an AgencyID foreign key back to one of
// these. Agencies are created and deleted only by a super admin, and never
// deleted while dependent records exist.
type Agency struct {
	AgencyID string `json:"agencyID"` // Primary key (UUID)
	Name     string `json:"name"`
	City     string `json:"city"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
	AuditFields
}
