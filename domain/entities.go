package domain

import "time"

// User represents a registered account in the directory
type User struct {
	ID            uint
	Email         string
	Name          string
	PasswordHash  string `gorm:"column:password"`
	Role          string
	EmailVerified bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OTPCode is one row of the one-time-code ledger. Multiple rows per
// email are allowed over time; only the newest valid one matters.
type OTPCode struct {
	ID        uint
	Email     string
	Code      string
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// Valid reports whether the code can still be matched at the given instant.
func (c *OTPCode) Valid(now time.Time) bool {
	return !c.Used && now.Before(c.ExpiresAt)
}

// School represents a directory entry. OwnerID is nullable because
// legacy rows predate ownership tracking.
type School struct {
	ID        uint
	Name      string
	Address   string
	City      string
	State     string
	Contact   string
	Email     string
	Image     string
	OwnerID   *uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the given user may mutate this record.
// Rows without an owner are mutable by nobody.
func (s *School) OwnedBy(userID uint) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}

// SchoolFilter captures the list query: pagination plus the two
// optional filters the directory UI exposes.
type SchoolFilter struct {
	Page   int
	Limit  int
	Search string
	City   string
}

// Offset returns the SQL offset for the filter's page/limit.
func (f SchoolFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// SchoolPage is one page of list results together with the data the
// client needs to render pagination and the city filter.
type SchoolPage struct {
	Schools []*School
	Cities  []string
	Total   int64
	Page    int
	Limit   int
}

// HasMore reports whether pages remain after this one. Total and the
// page read are separate queries, so under concurrent writes this can
// be briefly stale; acceptable for a directory listing.
func (p *SchoolPage) HasMore() bool {
	offset := (p.Page - 1) * p.Limit
	return int64(offset+len(p.Schools)) < p.Total
}

// SessionClaims is the decoded identity carried by a session token.
type SessionClaims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
