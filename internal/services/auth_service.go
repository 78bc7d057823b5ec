package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// AuthServiceImpl implements domain.AuthService for the single configured
// admin principal. The username is never taken from a request.
type AuthServiceImpl struct {
	adminRepo   domain.AdminRepository
	passwordSvc domain.PasswordService
	tokenSvc    domain.TokenService
	otpSvc      domain.OTPService
	username    string
	tokenTTLSec int64
	log         *logrus.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(
	adminRepo domain.AdminRepository,
	passwordSvc domain.PasswordService,
	tokenSvc domain.TokenService,
	otpSvc domain.OTPService,
	username string,
	tokenTTLSec int64,
	log *logrus.Logger,
) domain.AuthService {
	return &AuthServiceImpl{
		adminRepo:   adminRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
		otpSvc:      otpSvc,
		username:    domain.NormalizeUsername(username),
		tokenTTLSec: tokenTTLSec,
		log:         log,
	}
}

// Login implements domain.AuthService. Unknown admin and wrong password are
// deliberately indistinguishable.
func (s *AuthServiceImpl) Login(ctx context.Context, password string) (*domain.AuthResult, error) {
	admin, err := s.adminRepo.FindByUsername(ctx, s.username)
	if err != nil {
		if err == domain.ErrAdminNotFound {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if !s.passwordSvc.Verify(admin.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issueToken(admin.Username)
}

// ResetPassword implements domain.AuthService. Deliberately requires no
// re-authentication, matching the deployed contract.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, newPassword string) error {
	if len(newPassword) < 6 {
		return domain.ErrPasswordTooShort
	}

	hash, err := s.passwordSvc.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.adminRepo.UpdatePasswordHash(ctx, s.username, hash); err != nil {
		return err
	}

	s.log.WithField("username", s.username).Info("admin password reset")
	return nil
}

// RequestOTP implements domain.AuthService
func (s *AuthServiceImpl) RequestOTP(ctx context.Context) error {
	return s.otpSvc.Request(ctx)
}

// VerifyOTP implements domain.AuthService
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, code string) (*domain.AuthResult, error) {
	if err := s.otpSvc.Verify(ctx, code); err != nil {
		return nil, err
	}
	return s.issueToken(s.username)
}

func (s *AuthServiceImpl) issueToken(username string) (*domain.AuthResult, error) {
	token, err := s.tokenSvc.Generate(username)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	return &domain.AuthResult{
		Token:     token,
		ExpiresIn: s.tokenTTLSec,
	}, nil
}

// Compile-time interface compliance verification
var _ domain.AuthService = (*AuthServiceImpl)(nil)
