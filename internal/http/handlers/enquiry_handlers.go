package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

// EnquiryHandlers handles enquiry HTTP requests
type EnquiryHandlers struct {
	enquirySvc domain.EnquiryService
}

// NewEnquiryHandlers creates new enquiry handlers
func NewEnquiryHandlers(enquirySvc domain.EnquiryService) *EnquiryHandlers {
	return &EnquiryHandlers{enquirySvc: enquirySvc}
}

// flexBool accepts JSON booleans and the string forms "true"/"false" which
// older website builds submit.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*b = flexBool(s == "true")
	return nil
}

// stringList accepts a JSON array of strings or a single comma-separated
// string, another legacy client shape.
type stringList []string

func (l *stringList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*l = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

// CreateEnquiryRequest represents an enquiry submission, old and new shapes
type CreateEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Topic   string `json:"topic"`
	Message string `json:"message"`

	// Legacy single-product reference.
	Product string `json:"product"`

	CategoryID            string     `json:"categoryId"`
	CategoryName          string     `json:"categoryName"`
	ProductIDs            stringList `json:"productIds"`
	AllProductsOfCategory flexBool   `json:"allProductsOfCategory"`

	Consent *bool `json:"consent"`
}

// UpdateEnquiryRequest represents an admin status/read update
type UpdateEnquiryRequest struct {
	Status *string   `json:"status"`
	IsRead *flexBool `json:"isRead"`
}

type enquiryResponse struct {
	ID                    string    `json:"_id"`
	Name                  string    `json:"name"`
	Email                 string    `json:"email,omitempty"`
	Phone                 string    `json:"phone,omitempty"`
	Topic                 string    `json:"topic,omitempty"`
	Message               string    `json:"message"`
	Product               string    `json:"product,omitempty"`
	CategoryID            string    `json:"categoryId,omitempty"`
	CategoryName          string    `json:"categoryName,omitempty"`
	ProductIDs            []string  `json:"productIds,omitempty"`
	AllProductsOfCategory bool      `json:"allProductsOfCategory,omitempty"`
	Consent               *bool     `json:"consent,omitempty"`
	Status                string    `json:"status"`
	IsRead                bool      `json:"isRead"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func toEnquiryResponse(e *domain.Enquiry) enquiryResponse {
	return enquiryResponse{
		ID:                    e.ID,
		Name:                  e.Name,
		Email:                 e.Email,
		Phone:                 e.Phone,
		Topic:                 e.Topic,
		Message:               e.Message,
		Product:               e.ProductID,
		CategoryID:            e.CategoryID,
		CategoryName:          e.CategoryName,
		ProductIDs:            e.ProductIDs,
		AllProductsOfCategory: e.AllProductsOfCategory,
		Consent:               e.Consent,
		Status:                e.Status,
		IsRead:                e.IsRead,
		CreatedAt:             e.CreatedAt,
		UpdatedAt:             e.UpdatedAt,
	}
}

// clientIP prefers the X-Forwarded-For chain set by the reverse proxy.
func clientIP(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		return fwd
	}
	return c.ClientIP()
}

// Create handles a public enquiry submission
func (h *EnquiryHandlers) Create(c *gin.Context) {
	var req CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	enquiry := &domain.Enquiry{
		Name:                  req.Name,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Topic:                 req.Topic,
		Message:               req.Message,
		ProductID:             req.Product,
		CategoryID:            req.CategoryID,
		CategoryName:          req.CategoryName,
		ProductIDs:            req.ProductIDs,
		AllProductsOfCategory: bool(req.AllProductsOfCategory),
		Consent:               req.Consent,
		IP:                    clientIP(c),
		UserAgent:             c.GetHeader("User-Agent"),
	}

	created, emailSent, err := h.enquirySvc.Create(c.Request.Context(), enquiry)
	if err != nil {
		switch err {
		case domain.ErrEnquiryMissingFields:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name and message are required"})
		case domain.ErrEnquiryMissingContact:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide either email or phone"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enquiry"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"enquiry":   toEnquiryResponse(created),
		"emailSent": emailSent,
	})
}

// List handles the admin enquiry listing
func (h *EnquiryHandlers) List(c *gin.Context) {
	enquiries, err := h.enquirySvc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list enquiries"})
		return
	}

	out := make([]enquiryResponse, 0, len(enquiries))
	for _, e := range enquiries {
		out = append(out, toEnquiryResponse(e))
	}
	c.JSON(http.StatusOK, out)
}

// Update handles an admin status/read update
func (h *EnquiryHandlers) Update(c *gin.Context) {
	var req UpdateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	update := domain.EnquiryUpdate{Status: req.Status}
	if req.IsRead != nil {
		isRead := bool(*req.IsRead)
		update.IsRead = &isRead
	}

	updated, err := h.enquirySvc.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		switch err {
		case domain.ErrEnquiryInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		case domain.ErrEnquiryNothingToDo:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		case domain.ErrEnquiryNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enquiry"})
		}
		return
	}

	c.JSON(http.StatusOK, toEnquiryResponse(updated))
}

// Delete handles an admin enquiry deletion
func (h *EnquiryHandlers) Delete(c *gin.Context) {
	if err := h.enquirySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == domain.ErrEnquiryNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete enquiry"})
		return
	}

	c.Status(http.StatusNoContent)
}
