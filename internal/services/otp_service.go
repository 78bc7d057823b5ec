package services

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// OTPServiceImpl implements domain.OTPService. The passcode lifecycle is
// request -> throttle -> issue -> verify -> consume; expiry and lockout are
// computed at verification time from the persisted credential state, there is
// no separate expired or locked state on disk.
type OTPServiceImpl struct {
	adminRepo       domain.AdminRepository
	notificationSvc domain.NotificationService
	config          OTPConfig
	log             *logrus.Logger

	// now is swappable in tests.
	now func() time.Time
}

// OTPConfig carries the OTP engine tunables.
type OTPConfig struct {
	// Username is the fixed admin identity from deployment configuration.
	// Client input never selects the credential.
	Username string
	// Recipient is the fixed address codes are mailed to.
	Recipient   string
	Length      int
	TTL         time.Duration
	Cooldown    time.Duration
	MaxAttempts int
}

// NewOTPService creates a new OTP service
func NewOTPService(adminRepo domain.AdminRepository, notificationSvc domain.NotificationService, config OTPConfig, log *logrus.Logger) domain.OTPService {
	return &OTPServiceImpl{
		adminRepo:       adminRepo,
		notificationSvc: notificationSvc,
		config:          config,
		log:             log,
		now:             time.Now,
	}
}

// Request implements domain.OTPService.
func (s *OTPServiceImpl) Request(ctx context.Context) error {
	admin, err := s.adminRepo.FindByUsername(ctx, s.config.Username)
	if err != nil {
		if err == domain.ErrAdminNotFound {
			// Indistinguishable from success so the endpoint cannot be
			// used to probe whether the account exists.
			s.log.WithField("username", s.config.Username).Warn("otp requested for unseeded admin")
			return nil
		}
		return fmt.Errorf("find admin: %w", err)
	}

	now := s.now()
	if admin.OTPSentAt != nil && now.Sub(*admin.OTPSentAt) < s.config.Cooldown {
		return domain.ErrOTPThrottled
	}

	code, err := s.generateSecureCode()
	if err != nil {
		return fmt.Errorf("generate otp code: %w", err)
	}

	state := domain.OTPState{
		CodeHash:  hashCode(code),
		ExpiresAt: now.Add(s.config.TTL),
		SentAt:    now,
	}
	if err := s.adminRepo.SetOTPState(ctx, admin.Username, state); err != nil {
		return fmt.Errorf("store otp state: %w", err)
	}

	// Fire-and-forget: the response never waits on the mail relay and a
	// dispatch failure is logged, not surfaced.
	go func(code string) {
		ttlMinutes := int(s.config.TTL.Minutes())
		if err := s.notificationSvc.SendOTPCode(s.config.Recipient, code, ttlMinutes); err != nil {
			s.log.WithError(err).WithField("to", s.config.Recipient).Error("otp email dispatch failed")
		}
	}(code)

	return nil
}

// Verify implements domain.OTPService.
func (s *OTPServiceImpl) Verify(ctx context.Context, code string) error {
	admin, err := s.adminRepo.FindByUsername(ctx, s.config.Username)
	if err != nil {
		if err == domain.ErrAdminNotFound {
			return domain.ErrOTPNotFound
		}
		return fmt.Errorf("find admin: %w", err)
	}

	if !admin.HasPendingOTP() {
		return domain.ErrOTPNotFound
	}

	if admin.OTPAttemptCounter >= s.config.MaxAttempts {
		return domain.ErrOTPMaxAttempts
	}

	if !admin.OTPExpiresAt.After(s.now()) {
		return domain.ErrOTPExpired
	}

	if !digestsEqual(hashCode(code), *admin.OTPCodeHash) {
		if err := s.adminRepo.IncrementOTPAttempts(ctx, admin.Username); err != nil {
			return fmt.Errorf("record failed attempt: %w", err)
		}
		return domain.ErrOTPInvalid
	}

	// Consume before the caller can issue a token. The conditional clear
	// makes a concurrent duplicate verification lose cleanly.
	if err := s.adminRepo.ClearOTPState(ctx, admin.Username, *admin.OTPCodeHash); err != nil {
		return err
	}
	return nil
}

// generateSecureCode draws each digit independently from crypto/rand.
func (s *OTPServiceImpl) generateSecureCode() (string, error) {
	digits := make([]byte, s.config.Length)

	for i := 0; i < s.config.Length; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		digits[i] = byte('0' + num.Int64())
	}

	return string(digits), nil
}

// hashCode produces the at-rest form of a code. Plaintext codes exist only in
// the outbound email.
func hashCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// digestsEqual compares two digests without short-circuiting on a prefix
// match of the secret-derived material.
func digestsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// Compile-time interface compliance verification
var _ domain.OTPService = (*OTPServiceImpl)(nil)
