package domain

import (
	"context"
	"time"
)

// AdminRepository defines data access for the single admin credential row.
// All OTP mutations must be single-statement updates so two concurrent
// requests cannot interleave a read-modify-write on the same row.
type AdminRepository interface {
	Create(ctx context.Context, admin *AdminCredential) error
	FindByUsername(ctx context.Context, username string) (*AdminCredential, error)
	FindFirst(ctx context.Context) (*AdminCredential, error)
	UpdateUsername(ctx context.Context, id uint, username string) error
	UpdatePasswordHash(ctx context.Context, username, passwordHash string) error

	// SetOTPState installs a freshly issued OTP: code hash, expiry and
	// issuance time are written and the attempt counter resets to zero in
	// one atomic update.
	SetOTPState(ctx context.Context, username string, state OTPState) error

	// IncrementOTPAttempts bumps the failed-attempt counter atomically.
	IncrementOTPAttempts(ctx context.Context, username string) error

	// ClearOTPState consumes the pending OTP. The update is conditional on
	// the stored code hash still matching expectedCodeHash; if another
	// verification consumed it first, ErrOTPNotFound is returned.
	ClearOTPState(ctx context.Context, username, expectedCodeHash string) error
}

// EnquiryRepository defines enquiry data access operations.
type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *Enquiry) error
	FindByID(ctx context.Context, id string) (*Enquiry, error)
	FindAll(ctx context.Context) ([]*Enquiry, error)
	Update(ctx context.Context, id string, update EnquiryUpdate) (*Enquiry, error)
	Delete(ctx context.Context, id string) error
}

// ProductRepository defines the read-side product lookups used when
// resolving enquiry references.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*Product, error)
	FindNamesByIDs(ctx context.Context, ids []string) ([]string, error)
	FindAll(ctx context.Context) ([]*Product, error)
}

// CategoryRepository defines the read-side category lookups.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]*Category, error)
}

// OTPService defines the one-time-passcode state machine.
type OTPService interface {
	// Request issues a new OTP for the configured admin and dispatches it
	// by email. A missing credential is a silent no-op (anti-enumeration);
	// only a cooldown violation returns a distinguishable error.
	Request(ctx context.Context) error

	// Verify checks a submitted code against the pending OTP and consumes
	// it on success.
	Verify(ctx context.Context, code string) error
}

// AuthService defines the admin authentication business logic.
type AuthService interface {
	Login(ctx context.Context, password string) (*AuthResult, error)
	ResetPassword(ctx context.Context, newPassword string) error
	RequestOTP(ctx context.Context) error
	VerifyOTP(ctx context.Context, code string) (*AuthResult, error)
}

// EnquiryService defines enquiry intake business logic.
type EnquiryService interface {
	// Create validates, persists and notifies. The returned flag reports
	// whether the notification email went out; mail failure is soft and
	// never fails the submission.
	Create(ctx context.Context, enquiry *Enquiry) (*Enquiry, bool, error)
	List(ctx context.Context) ([]*Enquiry, error)
	Update(ctx context.Context, id string, update EnquiryUpdate) (*Enquiry, error)
	Delete(ctx context.Context, id string) error
}

// PasswordService defines password hashing operations.
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines session token operations.
type TokenService interface {
	Generate(username string) (string, error)
	Validate(token string) (*TokenClaims, error)
}

// NotificationService defines the outbound email gateway.
type NotificationService interface {
	SendOTPCode(to, code string, ttlMinutes int) error
	SendEnquiry(to string, n EnquiryNotification) error
}

// OTPState is the persisted face of a freshly issued OTP.
type OTPState struct {
	CodeHash  string
	ExpiresAt time.Time
	SentAt    time.Time
}

// TokenClaims represents the signed session token claims.
type TokenClaims struct {
	Username  string `json:"sub"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}
