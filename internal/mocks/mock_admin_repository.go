package mocks

import (
	"context"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// MockAdminRepository implements domain.AdminRepository for testing
type MockAdminRepository struct {
	CreateFunc              func(ctx context.Context, admin *domain.AdminCredential) error
	FindByUsernameFunc      func(ctx context.Context, username string) (*domain.AdminCredential, error)
	FindFirstFunc           func(ctx context.Context) (*domain.AdminCredential, error)
	UpdateUsernameFunc      func(ctx context.Context, id uint, username string) error
	UpdatePasswordHashFunc  func(ctx context.Context, username, passwordHash string) error
	SetOTPStateFunc         func(ctx context.Context, username string, state domain.OTPState) error
	IncrementOTPAttemptsFunc func(ctx context.Context, username string) error
	ClearOTPStateFunc       func(ctx context.Context, username, expectedCodeHash string) error
}

// NewMockAdminRepository creates a new MockAdminRepository with default behaviors
func NewMockAdminRepository() *MockAdminRepository {
	return &MockAdminRepository{}
}

// Create creates the admin credential
func (m *MockAdminRepository) Create(ctx context.Context, admin *domain.AdminCredential) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}
	return nil
}

// FindByUsername finds the credential by its identity key
func (m *MockAdminRepository) FindByUsername(ctx context.Context, username string) (*domain.AdminCredential, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	// Default behavior: not found
	return nil, domain.ErrAdminNotFound
}

// FindFirst finds the oldest credential row
func (m *MockAdminRepository) FindFirst(ctx context.Context) (*domain.AdminCredential, error) {
	if m.FindFirstFunc != nil {
		return m.FindFirstFunc(ctx)
	}
	return nil, domain.ErrAdminNotFound
}

// UpdateUsername renames the credential
func (m *MockAdminRepository) UpdateUsername(ctx context.Context, id uint, username string) error {
	if m.UpdateUsernameFunc != nil {
		return m.UpdateUsernameFunc(ctx, id, username)
	}
	return nil
}

// UpdatePasswordHash replaces the stored password hash
func (m *MockAdminRepository) UpdatePasswordHash(ctx context.Context, username, passwordHash string) error {
	if m.UpdatePasswordHashFunc != nil {
		return m.UpdatePasswordHashFunc(ctx, username, passwordHash)
	}
	return nil
}

// SetOTPState installs a freshly issued OTP
func (m *MockAdminRepository) SetOTPState(ctx context.Context, username string, state domain.OTPState) error {
	if m.SetOTPStateFunc != nil {
		return m.SetOTPStateFunc(ctx, username, state)
	}
	return nil
}

// IncrementOTPAttempts bumps the failed-attempt counter
func (m *MockAdminRepository) IncrementOTPAttempts(ctx context.Context, username string) error {
	if m.IncrementOTPAttemptsFunc != nil {
		return m.IncrementOTPAttemptsFunc(ctx, username)
	}
	return nil
}

// ClearOTPState consumes the pending OTP
func (m *MockAdminRepository) ClearOTPState(ctx context.Context, username, expectedCodeHash string) error {
	if m.ClearOTPStateFunc != nil {
		return m.ClearOTPStateFunc(ctx, username, expectedCodeHash)
	}
	return nil
}

// Compile-time interface compliance verification
var _ domain.AdminRepository = (*MockAdminRepository)(nil)
