package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// AuthHandlers handles admin authentication HTTP requests
type AuthHandlers struct {
	authSvc domain.AuthService
}

// NewAuthHandlers creates new auth handlers
func NewAuthHandlers(authSvc domain.AuthService) *AuthHandlers {
	return &AuthHandlers{authSvc: authSvc}
}

// OTPVerifyRequest represents an OTP verification request
type OTPVerifyRequest struct {
	OTP string `json:"otp" binding:"required"`
}

// LoginRequest represents a password login request
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// ResetPasswordRequest represents a password reset request
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// RequestOTP handles OTP issuance. The response never reveals whether the
// admin credential exists; only an active cooldown is distinguishable.
func (h *AuthHandlers) RequestOTP(c *gin.Context) {
	if err := h.authSvc.RequestOTP(c.Request.Context()); err != nil {
		if err == domain.ErrOTPThrottled {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "OTP recently sent, please wait before retrying"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "If the account exists, a login code has been sent"})
}

// VerifyOTP handles OTP verification and session token issuance
func (h *AuthHandlers) VerifyOTP(c *gin.Context) {
	var req OTPVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OTP is required"})
		return
	}

	result, err := h.authSvc.VerifyOTP(c.Request.Context(), req.OTP)
	if err != nil {
		switch err {
		case domain.ErrOTPMaxAttempts:
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts, request a new code"})
		case domain.ErrOTPExpired:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Code has expired, request a new one"})
		case domain.ErrOTPInvalid, domain.ErrOTPNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid code"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

// Login handles legacy password login
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

// ResetPassword handles legacy password reset
func (h *AuthHandlers) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if err := h.authSvc.ResetPassword(c.Request.Context(), req.Password); err != nil {
		switch err {
		case domain.ErrPasswordTooShort:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		case domain.ErrAdminNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin account not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Password reset failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
