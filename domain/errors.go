package domain

import "errors"

// Authentication errors
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
)

// OTP errors
var (
	ErrOTPThrottled   = errors.New("otp was requested too recently")
	ErrOTPNotFound    = errors.New("no otp is pending")
	ErrOTPExpired     = errors.New("otp has expired")
	ErrOTPInvalid     = errors.New("invalid otp code")
	ErrOTPMaxAttempts = errors.New("maximum otp attempts exceeded")
)

// Token errors
var (
	ErrTokenInvalid   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token has expired")
	ErrTokenMalformed = errors.New("malformed token")
)

// Enquiry errors
var (
	ErrEnquiryNotFound      = errors.New("enquiry not found")
	ErrEnquiryInvalidStatus = errors.New("invalid status")
	ErrEnquiryNothingToDo   = errors.New("nothing to update")
	ErrEnquiryMissingFields = errors.New("name and message are required")
	ErrEnquiryMissingContact = errors.New("either email or phone is required")
)
