package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
	"github.com/Nakulpanchal-gamer/KubereshwarBackend/internal/mocks"
)

func TestFlexBool_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
		wantErr  bool
	}{
		{name: "json true", input: `true`, expected: true},
		{name: "json false", input: `false`, expected: false},
		{name: "string true", input: `"true"`, expected: true},
		{name: "string false", input: `"false"`, expected: false},
		{name: "other string", input: `"yes"`, expected: false},
		{name: "null leaves zero", input: `null`, expected: false},
		{name: "number rejected", input: `1`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b flexBool
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if bool(b) != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, bool(b))
			}
		})
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "array", input: `["a","b"]`, expected: []string{"a", "b"}},
		{name: "csv string", input: `"a, b ,c"`, expected: []string{"a", "b", "c"}},
		{name: "empty string", input: `""`, expected: nil},
		{name: "blank segments dropped", input: `"a,,b"`, expected: []string{"a", "b"}},
		{name: "null", input: `null`, expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l stringList
			if err := json.Unmarshal([]byte(tt.input), &l); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if !reflect.DeepEqual([]string(l), tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, []string(l))
			}
		})
	}
}

func performEnquiryRequest(t *testing.T, handler gin.HandlerFunc, method, rawBody string, headers map[string]string, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, "/", bytes.NewReader([]byte(rawBody)))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	c.Params = params
	handler(c)
	c.Writer.WriteHeaderNow()
	return w
}

func TestEnquiryHandlers_Create(t *testing.T) {
	t.Run("legacy shapes are normalized", func(t *testing.T) {
		enquirySvc := mocks.NewMockEnquiryService()
		var captured *domain.Enquiry
		enquirySvc.CreateFunc = func(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, bool, error) {
			captured = enquiry
			enquiry.ID = "enquiry-1"
			enquiry.Status = domain.EnquiryStatusNew
			return enquiry, true, nil
		}
		h := NewEnquiryHandlers(enquirySvc)

		body := `{"name":"Asha","message":"hello","email":"a@example.com","productIds":"p1, p2","allProductsOfCategory":"false","consent":true}`
		w := performEnquiryRequest(t, h.Create, http.MethodPost, body, map[string]string{
			"X-Forwarded-For": "203.0.113.7",
			"User-Agent":      "test-agent",
		}, nil)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if !reflect.DeepEqual(captured.ProductIDs, []string{"p1", "p2"}) {
			t.Errorf("csv product ids not normalized: %v", captured.ProductIDs)
		}
		if captured.AllProductsOfCategory {
			t.Error("string false should parse as false")
		}
		if captured.IP != "203.0.113.7" {
			t.Errorf("expected forwarded ip, got %q", captured.IP)
		}
		if captured.UserAgent != "test-agent" {
			t.Errorf("expected user agent captured, got %q", captured.UserAgent)
		}

		var resp struct {
			Enquiry   map[string]interface{} `json:"enquiry"`
			EmailSent bool                   `json:"emailSent"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if !resp.EmailSent {
			t.Error("expected emailSent true")
		}
		if resp.Enquiry["_id"] != "enquiry-1" {
			t.Errorf("expected enquiry id in response, got %v", resp.Enquiry)
		}
	})

	t.Run("email failure reported as flag", func(t *testing.T) {
		enquirySvc := mocks.NewMockEnquiryService()
		enquirySvc.CreateFunc = func(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, bool, error) {
			enquiry.ID = "enquiry-1"
			return enquiry, false, nil
		}
		h := NewEnquiryHandlers(enquirySvc)

		w := performEnquiryRequest(t, h.Create, http.MethodPost,
			`{"name":"Asha","message":"hello","email":"a@example.com"}`, nil, nil)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp struct {
			EmailSent bool `json:"emailSent"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.EmailSent {
			t.Error("expected emailSent false")
		}
	})

	t.Run("validation errors map to 400", func(t *testing.T) {
		tests := []struct {
			name       string
			serviceErr error
		}{
			{name: "missing fields", serviceErr: domain.ErrEnquiryMissingFields},
			{name: "missing contact", serviceErr: domain.ErrEnquiryMissingContact},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				enquirySvc := mocks.NewMockEnquiryService()
				enquirySvc.CreateFunc = func(ctx context.Context, enquiry *domain.Enquiry) (*domain.Enquiry, bool, error) {
					return nil, false, tt.serviceErr
				}
				h := NewEnquiryHandlers(enquirySvc)

				w := performEnquiryRequest(t, h.Create, http.MethodPost, `{"name":"x"}`, nil, nil)
				if w.Code != http.StatusBadRequest {
					t.Errorf("expected 400, got %d", w.Code)
				}
			})
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		h := NewEnquiryHandlers(mocks.NewMockEnquiryService())
		w := performEnquiryRequest(t, h.Create, http.MethodPost, `{"name":`, nil, nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestEnquiryHandlers_List(t *testing.T) {
	enquirySvc := mocks.NewMockEnquiryService()
	enquirySvc.ListFunc = func(ctx context.Context) ([]*domain.Enquiry, error) {
		return []*domain.Enquiry{
			{ID: "e1", Name: "Asha", Message: "hi", Status: domain.EnquiryStatusNew},
			{ID: "e2", Name: "Ravi", Message: "hello", Status: domain.EnquiryStatusClosed, IsRead: true},
		}, nil
	}
	h := NewEnquiryHandlers(enquirySvc)

	w := performEnquiryRequest(t, h.List, http.MethodGet, "", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 enquiries, got %d", len(resp))
	}
	if resp[0]["_id"] != "e1" || resp[1]["isRead"] != true {
		t.Errorf("unexpected payload: %v", resp)
	}
}

func TestEnquiryHandlers_Update(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "status update", body: `{"status":"closed"}`, expectedStatus: http.StatusOK},
		{name: "string isRead", body: `{"isRead":"true"}`, expectedStatus: http.StatusOK},
		{name: "invalid status", body: `{"status":"resolved"}`, serviceErr: domain.ErrEnquiryInvalidStatus, expectedStatus: http.StatusBadRequest},
		{name: "nothing to update", body: `{}`, serviceErr: domain.ErrEnquiryNothingToDo, expectedStatus: http.StatusBadRequest},
		{name: "missing record", body: `{"status":"closed"}`, serviceErr: domain.ErrEnquiryNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enquirySvc := mocks.NewMockEnquiryService()
			enquirySvc.UpdateFunc = func(ctx context.Context, id string, update domain.EnquiryUpdate) (*domain.Enquiry, error) {
				if tt.serviceErr != nil {
					return nil, tt.serviceErr
				}
				e := &domain.Enquiry{ID: id, Name: "Asha", Message: "hi", Status: domain.EnquiryStatusClosed}
				if update.IsRead != nil {
					e.IsRead = *update.IsRead
				}
				return e, nil
			}
			h := NewEnquiryHandlers(enquirySvc)

			w := performEnquiryRequest(t, h.Update, http.MethodPut, tt.body, nil,
				gin.Params{{Key: "id", Value: "e1"}})
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestEnquiryHandlers_Delete(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "deleted", expectedStatus: http.StatusNoContent},
		{name: "missing", serviceErr: domain.ErrEnquiryNotFound, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enquirySvc := mocks.NewMockEnquiryService()
			enquirySvc.DeleteFunc = func(ctx context.Context, id string) error { return tt.serviceErr }
			h := NewEnquiryHandlers(enquirySvc)

			w := performEnquiryRequest(t, h.Delete, http.MethodDelete, "", nil,
				gin.Params{{Key: "id", Value: "e1"}})
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}
