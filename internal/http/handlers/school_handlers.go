package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Jasmitsingh01/school-management/domain"
	"github.com/Jasmitsingh01/school-management/internal/http/middleware"
)

// SchoolHandlers handles directory HTTP requests
type SchoolHandlers struct {
	schoolSvc domain.SchoolService
}

// NewSchoolHandlers creates new school handlers
func NewSchoolHandlers(schoolSvc domain.SchoolService) *SchoolHandlers {
	return &SchoolHandlers{schoolSvc: schoolSvc}
}

// SchoolRequest represents a create/update payload
type SchoolRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	Contact string `json:"contact" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Image   string `json:"image"`
}

// ListQuery represents the list endpoint's query parameters
type ListQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
	City   string `form:"city"`
}

// List handles the public, paginated directory listing
func (h *SchoolHandlers) List(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.schoolSvc.List(c.Request.Context(), domain.SchoolFilter{
		Page:   q.Page,
		Limit:  q.Limit,
		Search: q.Search,
		City:   q.City,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list schools"})
		return
	}

	schools := make([]gin.H, 0, len(page.Schools))
	for _, s := range page.Schools {
		schools = append(schools, schoolJSON(s))
	}

	cities := page.Cities
	if cities == nil {
		cities = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"schools": schools,
			"cities":  cities,
			"pagination": gin.H{
				"page":     page.Page,
				"limit":    page.Limit,
				"total":    page.Total,
				"has_more": page.HasMore(),
			},
		},
	})
}

// Get handles fetching a single school by ID (public)
func (h *SchoolHandlers) Get(c *gin.Context) {
	id, ok := schoolID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school id"})
		return
	}

	school, err := h.schoolSvc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSchoolNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get school"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": schoolJSON(school)})
}

// Create handles creating a school (requires authentication; the
// caller becomes the owner)
func (h *SchoolHandlers) Create(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	school := req.toDomain()
	if err := h.schoolSvc.Create(c.Request.Context(), school, userID); err != nil {
		h.writeSchoolError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": schoolJSON(school)})
}

// Update handles updating a school (owner only)
func (h *SchoolHandlers) Update(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, idOK := schoolID(c)
	if !idOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school id"})
		return
	}

	var req SchoolRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.schoolSvc.Update(c.Request.Context(), id, req.toDomain(), userID)
	if err != nil {
		h.writeSchoolError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": schoolJSON(updated)})
}

// Delete handles deleting a school (owner only)
func (h *SchoolHandlers) Delete(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, idOK := schoolID(c)
	if !idOK {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid school id"})
		return
	}

	if err := h.schoolSvc.Delete(c.Request.Context(), id, userID); err != nil {
		h.writeSchoolError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{"message": "School deleted"},
	})
}

func (h *SchoolHandlers) writeSchoolError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSchoolNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "School not found"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Only the owner may modify this school"})
	case errors.Is(err, domain.ErrInvalidContact):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Contact must be exactly 10 digits"})
	case errors.Is(err, domain.ErrInvalidEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Operation failed"})
	}
}

func (r *SchoolRequest) toDomain() *domain.School {
	return &domain.School{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Contact: r.Contact,
		Email:   r.Email,
		Image:   r.Image,
	}
}

// schoolID resolves the record ID from the path parameter, falling
// back to the id query parameter for clients using the flat routes.
func schoolID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	if raw == "" {
		raw = c.Query("id")
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func schoolJSON(s *domain.School) gin.H {
	return gin.H{
		"id":         s.ID,
		"name":       s.Name,
		"address":    s.Address,
		"city":       s.City,
		"state":      s.State,
		"contact":    s.Contact,
		"email":      s.Email,
		"image":      s.Image,
		"owner_id":   s.OwnerID,
		"created_at": s.CreatedAt,
		"updated_at": s.UpdatedAt,
	}
}
