package mocks

import (
	"context"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// MockPasswordService implements domain.PasswordService for testing
type MockPasswordService struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hashedPassword, password string) bool
}

// NewMockPasswordService creates a new MockPasswordService with default behaviors
func NewMockPasswordService() *MockPasswordService {
	return &MockPasswordService{}
}

// Hash hashes a password
func (m *MockPasswordService) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	// Default: a recognizable fake hash
	return "hashed_" + password, nil
}

// Verify verifies a password against its hash
func (m *MockPasswordService) Verify(hashedPassword, password string) bool {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(hashedPassword, password)
	}
	return hashedPassword == "hashed_"+password
}

// MockTokenService implements domain.TokenService for testing
type MockTokenService struct {
	GenerateFunc func(username string) (string, error)
	ValidateFunc func(token string) (*domain.TokenClaims, error)
}

// NewMockTokenService creates a new MockTokenService with default behaviors
func NewMockTokenService() *MockTokenService {
	return &MockTokenService{}
}

// Generate issues a token for the given subject
func (m *MockTokenService) Generate(username string) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(username)
	}
	return "token_for_" + username, nil
}

// Validate parses and checks a token
func (m *MockTokenService) Validate(token string) (*domain.TokenClaims, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(token)
	}
	return nil, domain.ErrTokenInvalid
}

// MockNotificationService implements domain.NotificationService for testing
type MockNotificationService struct {
	SendOTPCodeFunc func(to, code string, ttlMinutes int) error
	SendEnquiryFunc func(to string, n domain.EnquiryNotification) error
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

// SendOTPCode sends an OTP email
func (m *MockNotificationService) SendOTPCode(to, code string, ttlMinutes int) error {
	if m.SendOTPCodeFunc != nil {
		return m.SendOTPCodeFunc(to, code, ttlMinutes)
	}
	// Default behavior: success (no actual email sent in tests)
	return nil
}

// SendEnquiry sends an enquiry notification email
func (m *MockNotificationService) SendEnquiry(to string, n domain.EnquiryNotification) error {
	if m.SendEnquiryFunc != nil {
		return m.SendEnquiryFunc(to, n)
	}
	return nil
}

// MockOTPService implements domain.OTPService for testing
type MockOTPService struct {
	RequestFunc func(ctx context.Context) error
	VerifyFunc  func(ctx context.Context, code string) error
}

// NewMockOTPService creates a new MockOTPService with default behaviors
func NewMockOTPService() *MockOTPService {
	return &MockOTPService{}
}

// Request issues a new OTP
func (m *MockOTPService) Request(ctx context.Context) error {
	if m.RequestFunc != nil {
		return m.RequestFunc(ctx)
	}
	return nil
}

// Verify checks and consumes a submitted code
func (m *MockOTPService) Verify(ctx context.Context, code string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, code)
	}
	// Default behavior: nothing pending
	return domain.ErrOTPNotFound
}

// MockAuthService implements domain.AuthService for testing
type MockAuthService struct {
	LoginFunc         func(ctx context.Context, password string) (*domain.AuthResult, error)
	ResetPasswordFunc func(ctx context.Context, newPassword string) error
	RequestOTPFunc    func(ctx context.Context) error
	VerifyOTPFunc     func(ctx context.Context, code string) (*domain.AuthResult, error)
}

// NewMockAuthService creates a new MockAuthService with default behaviors
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{}
}

// Login authenticates with the long-lived password
func (m *MockAuthService) Login(ctx context.Context, password string) (*domain.AuthResult, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, password)
	}
	return nil, domain.ErrInvalidCredentials
}

// ResetPassword replaces the stored password
func (m *MockAuthService) ResetPassword(ctx context.Context, newPassword string) error {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, newPassword)
	}
	return nil
}

// RequestOTP issues a new OTP
func (m *MockAuthService) RequestOTP(ctx context.Context) error {
	if m.RequestOTPFunc != nil {
		return m.RequestOTPFunc(ctx)
	}
	return nil
}

// VerifyOTP verifies a code and issues a token
func (m *MockAuthService) VerifyOTP(ctx context.Context, code string) (*domain.AuthResult, error) {
	if m.VerifyOTPFunc != nil {
		return m.VerifyOTPFunc(ctx, code)
	}
	return nil, domain.ErrOTPNotFound
}

// Compile-time interface compliance verification
var (
	_ domain.PasswordService     = (*MockPasswordService)(nil)
	_ domain.TokenService        = (*MockTokenService)(nil)
	_ domain.NotificationService = (*MockNotificationService)(nil)
	_ domain.OTPService          = (*MockOTPService)(nil)
	_ domain.AuthService         = (*MockAuthService)(nil)
)
