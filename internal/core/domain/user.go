package domain

import "time"

// User represents a staff member of an agency (or a central role holder).
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	AgencyID     string `json:"agencyID"` // home agency
	PasswordHash string `json:"-"`
	AuditFields
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	DeletedAt              *time.Time `json:"deletedAt,omitempty"` // soft delete
}

// AsCaller derives the request identity from the user record.
func (u *User) AsCaller() Caller {
	return Caller{UserID: u.UserID, Role: u.Role, AgencyID: u.AgencyID}
}
