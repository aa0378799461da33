package handlers

import (
	"net/http"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EmployeeHandler handles manager-facing employee views
type EmployeeHandler struct {
	users service.UserServiceInterface
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(users service.UserServiceInterface) *EmployeeHandler {
	return &EmployeeHandler{users: users}
}

// ListEmployees handles GET /api/v1/employees
// @Summary List employees visible to the caller
// @Description Managers see their direct reports, owners and admins see every employee in the organization. Each entry carries feedback aggregates.
// @Tags employees
// @Produce json
// @Success 200 {array} service.EmployeeResponse "Employees with feedback aggregates"
// @Failure 403 {object} map[string]interface{} "Role cannot list employees"
// @Security BearerAuth
// @Router /v1/employees [get]
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.users.ListEmployees(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetEmployee handles GET /api/v1/employees/:id
// @Summary Get a single employee
// @Description Managers can fetch their own direct reports, owners and admins anyone in the organization, employees only themselves.
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} service.UserResponse "Employee"
// @Failure 400 {object} map[string]interface{} "Invalid ID format"
// @Failure 403 {object} map[string]interface{} "Not a direct report"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /v1/employees/{id} [get]
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employee ID format"})
		return
	}

	resp, err := h.users.GetEmployee(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
