package domain

import (
	"strings"
	"time"
)

// AdminCredential represents the single administrative principal's
// authentication state. There is one row per deployment, addressed by the
// username fixed in server configuration.
type AdminCredential struct {
	ID           uint
	Username     string
	PasswordHash string

	// OTP-based login state. CodeHash and ExpiresAt are both set while an
	// OTP is pending and both nil otherwise.
	OTPCodeHash       *string
	OTPExpiresAt      *time.Time
	OTPSentAt         *time.Time
	OTPAttemptCounter int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasPendingOTP reports whether an OTP has been issued and not yet consumed.
// Expiry and attempt exhaustion are computed at verification time, not here.
func (a *AdminCredential) HasPendingOTP() bool {
	return a.OTPCodeHash != nil && a.OTPExpiresAt != nil
}

// NormalizeUsername applies the canonical form used as the identity key.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// AuthResult represents a successful authentication outcome.
type AuthResult struct {
	Token     string
	ExpiresIn int64
}

// Enquiry statuses admins may assign.
const (
	EnquiryStatusNew        = "new"
	EnquiryStatusInProgress = "in_progress"
	EnquiryStatusClosed     = "closed"
)

// ValidEnquiryStatus reports whether s is one of the allowed statuses.
func ValidEnquiryStatus(s string) bool {
	switch s {
	case EnquiryStatusNew, EnquiryStatusInProgress, EnquiryStatusClosed:
		return true
	}
	return false
}

// Enquiry is a customer-submitted record. Created on submission, mutated only
// by admin status/read updates, deleted on explicit admin request.
type Enquiry struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Topic   string
	Message string

	// Legacy single-product reference.
	ProductID string

	// Category and multi-product selection.
	CategoryID            string
	CategoryName          string
	ProductIDs            []string
	AllProductsOfCategory bool

	Consent *bool

	Status string
	IsRead bool

	// Submitter metadata captured from the request.
	IP        string
	UserAgent string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnquiryUpdate carries the admin-editable fields. Nil means "leave as is".
type EnquiryUpdate struct {
	Status *string
	IsRead *bool
}

// Empty reports whether the update would change nothing.
func (u EnquiryUpdate) Empty() bool {
	return u.Status == nil && u.IsRead == nil
}

// Product is the read-side catalog record referenced by enquiries.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Category is the read-side catalog grouping.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EnquiryNotification is the material the notification gateway renders into
// the admin-facing enquiry email.
type EnquiryNotification struct {
	FromName  string
	FromEmail string
	Phone     string
	Topic     string
	Message   string

	CategoryID            string
	CategoryName          string
	ProductNames          []string
	AllProductsOfCategory bool

	Consent *bool

	ReceivedAt time.Time
	IP         string
	UserAgent  string
}
