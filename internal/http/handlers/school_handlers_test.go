package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/domain"
	"github.com/Jasmitsingh01/school-management/internal/mocks"
)

func validSchoolBody() gin.H {
	return gin.H{
		"name":    "Green Valley High",
		"address": "12 Hill Road",
		"city":    "Pune",
		"state":   "Maharashtra",
		"contact": "9876543210",
		"email":   "office@greenvalley.edu",
	}
}

func performSchoolRequest(t *testing.T, handler gin.HandlerFunc, method, target string, body interface{}, userID uint, params gin.Params) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body failed: %v", err)
		}
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = params
	if userID != 0 {
		c.Set("user_id", userID)
	}

	handler(c)
	return w
}

func TestSchoolHandlers_List(t *testing.T) {
	ownerID := uint(3)
	svc := mocks.NewMockSchoolService()
	svc.ListFunc = func(ctx context.Context, filter domain.SchoolFilter) (*domain.SchoolPage, error) {
		if filter.Page != 2 || filter.Limit != 5 || filter.Search != "valley" || filter.City != "Pune" {
			t.Errorf("query not forwarded: %+v", filter)
		}
		return &domain.SchoolPage{
			Schools: []*domain.School{
				{ID: 6, Name: "Green Valley High", City: "Pune", OwnerID: &ownerID},
			},
			Cities: []string{"Mumbai", "Pune"},
			Total:  11,
			Page:   2,
			Limit:  5,
		}, nil
	}
	h := NewSchoolHandlers(svc)

	w := performSchoolRequest(t, h.List, http.MethodGet,
		"/schools?page=2&limit=5&search=valley&city=Pune", nil, 0, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	data := decodeBody(t, w)["data"].(map[string]interface{})
	schools := data["schools"].([]interface{})
	if len(schools) != 1 {
		t.Fatalf("expected 1 school, got %d", len(schools))
	}
	pagination := data["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 11 {
		t.Errorf("expected total 11, got %v", pagination["total"])
	}
	if pagination["has_more"] != true {
		t.Error("expected has_more true: 5 seen of 11")
	}
}

func TestSchoolHandlers_ListDefaults(t *testing.T) {
	svc := mocks.NewMockSchoolService()
	svc.ListFunc = func(ctx context.Context, filter domain.SchoolFilter) (*domain.SchoolPage, error) {
		if filter.Page != 1 || filter.Limit != 10 {
			t.Errorf("expected default page=1 limit=10, got %+v", filter)
		}
		return &domain.SchoolPage{Page: 1, Limit: 10}, nil
	}
	h := NewSchoolHandlers(svc)

	w := performSchoolRequest(t, h.List, http.MethodGet, "/schools", nil, 0, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// Empty results still serialize as arrays, not null.
	if bytes.Contains(w.Body.Bytes(), []byte(`"schools":null`)) {
		t.Error("schools must serialize as []")
	}
	if bytes.Contains(w.Body.Bytes(), []byte(`"cities":null`)) {
		t.Error("cities must serialize as []")
	}
}

func TestSchoolHandlers_Get(t *testing.T) {
	svc := mocks.NewMockSchoolService()
	svc.GetFunc = func(ctx context.Context, id uint) (*domain.School, error) {
		if id == 6 {
			return &domain.School{ID: 6, Name: "Green Valley High"}, nil
		}
		return nil, domain.ErrSchoolNotFound
	}
	h := NewSchoolHandlers(svc)

	tests := []struct {
		name           string
		target         string
		params         gin.Params
		expectedStatus int
	}{
		{
			name:           "found by path param",
			target:         "/schools/6",
			params:         gin.Params{{Key: "id", Value: "6"}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "found by query fallback",
			target:         "/schools?id=6",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing school",
			target:         "/schools/99",
			params:         gin.Params{{Key: "id", Value: "99"}},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "non-numeric id",
			target:         "/schools/abc",
			params:         gin.Params{{Key: "id", Value: "abc"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performSchoolRequest(t, h.Get, http.MethodGet, tt.target, nil, 0, tt.params)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestSchoolHandlers_Create(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		userID         uint
		create         func(ctx context.Context, school *domain.School, ownerID uint) error
		expectedStatus int
	}{
		{
			name:   "authenticated create",
			body:   validSchoolBody(),
			userID: 5,
			create: func(ctx context.Context, school *domain.School, ownerID uint) error {
				if ownerID != 5 {
					t.Errorf("expected owner 5, got %d", ownerID)
				}
				school.ID = 6
				return nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "anonymous caller",
			body:           validSchoolBody(),
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing required fields",
			body:           gin.H{"name": "No Address"},
			userID:         5,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "bad contact from service",
			body:   validSchoolBody(),
			userID: 5,
			create: func(ctx context.Context, school *domain.School, ownerID uint) error {
				return domain.ErrInvalidContact
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSchoolService()
			svc.CreateFunc = tt.create
			h := NewSchoolHandlers(svc)

			w := performSchoolRequest(t, h.Create, http.MethodPost, "/schools", tt.body, tt.userID, nil)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestSchoolHandlers_Update(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		update         func(ctx context.Context, id uint, school *domain.School, callerID uint) (*domain.School, error)
		expectedStatus int
	}{
		{
			name:   "owner updates",
			userID: 5,
			update: func(ctx context.Context, id uint, school *domain.School, callerID uint) (*domain.School, error) {
				school.ID = id
				return school, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "non-owner forbidden",
			userID: 9,
			update: func(ctx context.Context, id uint, school *domain.School, callerID uint) (*domain.School, error) {
				return nil, domain.ErrForbidden
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "missing school",
			userID: 5,
			update: func(ctx context.Context, id uint, school *domain.School, callerID uint) (*domain.School, error) {
				return nil, domain.ErrSchoolNotFound
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSchoolService()
			svc.UpdateFunc = tt.update
			h := NewSchoolHandlers(svc)

			w := performSchoolRequest(t, h.Update, http.MethodPut, "/schools/6",
				validSchoolBody(), tt.userID, gin.Params{{Key: "id", Value: "6"}})
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}

func TestSchoolHandlers_Delete(t *testing.T) {
	tests := []struct {
		name           string
		userID         uint
		del            func(ctx context.Context, id uint, callerID uint) error
		expectedStatus int
	}{
		{
			name:           "owner deletes",
			userID:         5,
			expectedStatus: http.StatusOK,
		},
		{
			name:   "non-owner forbidden",
			userID: 9,
			del: func(ctx context.Context, id uint, callerID uint) error {
				return domain.ErrForbidden
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "anonymous caller",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewMockSchoolService()
			svc.DeleteFunc = tt.del
			h := NewSchoolHandlers(svc)

			w := performSchoolRequest(t, h.Delete, http.MethodDelete, "/schools/6",
				nil, tt.userID, gin.Params{{Key: "id", Value: "6"}})
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
