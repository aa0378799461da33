package handlers

import (
	"net/http"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FeedbackHandler handles feedback endpoints
type FeedbackHandler struct {
	feedback service.FeedbackServiceInterface
}

// NewFeedbackHandler creates a new feedback handler
func NewFeedbackHandler(feedback service.FeedbackServiceInterface) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// CreateFeedback handles POST /api/v1/feedback
// @Summary Give feedback to an employee
// @Description The caller must be a manager, admin or owner in the same organization and allowed to manage the employee.
// @Tags feedback
// @Accept json
// @Produce json
// @Param feedback body service.CreateFeedbackRequest true "Feedback data"
// @Success 201 {object} service.FeedbackResponse "Created feedback"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Not allowed to give feedback to this employee"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /v1/feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.feedback.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetFeedback handles GET /api/v1/feedback/:id
// @Summary Get a single feedback entry
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} service.FeedbackResponse "Feedback"
// @Failure 400 {object} map[string]interface{} "Invalid ID format"
// @Failure 403 {object} map[string]interface{} "Not allowed to read this feedback"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /v1/feedback/{id} [get]
func (h *FeedbackHandler) GetFeedback(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	resp, err := h.feedback.GetByID(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateFeedback handles PATCH /api/v1/feedback/:id
// @Summary Update a feedback entry
// @Description Only the manager who gave the feedback may edit it.
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param update body service.UpdateFeedbackRequest true "Fields to update"
// @Success 200 {object} service.FeedbackResponse "Updated feedback"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Only the author may edit"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /v1/feedback/{id} [patch]
func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	var req service.UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.feedback.Update(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcknowledgeFeedback handles POST /api/v1/feedback/:id/acknowledge
// @Summary Acknowledge a feedback entry
// @Description Only the employee who received the feedback may acknowledge it.
// @Tags feedback
// @Produce json
// @Param id path string true "Feedback ID"
// @Success 200 {object} service.FeedbackResponse "Acknowledged feedback"
// @Failure 400 {object} map[string]interface{} "Invalid ID format"
// @Failure 403 {object} map[string]interface{} "Only the recipient may acknowledge"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /v1/feedback/{id}/acknowledge [post]
func (h *FeedbackHandler) AcknowledgeFeedback(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	resp, err := h.feedback.Acknowledge(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CommentFeedback handles POST /api/v1/feedback/:id/comment
// @Summary Comment on a feedback entry
// @Description Only the employee who received the feedback may leave a comment.
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Feedback ID"
// @Param comment body service.CommentRequest true "Comment text"
// @Success 200 {object} service.FeedbackResponse "Feedback with comment"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Only the recipient may comment"
// @Failure 404 {object} map[string]interface{} "Feedback not found"
// @Security BearerAuth
// @Router /v1/feedback/{id}/comment [post]
func (h *FeedbackHandler) CommentFeedback(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feedback ID format"})
		return
	}

	var req service.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.feedback.Comment(actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListEmployeeFeedback handles GET /api/v1/employees/:id/feedback
// @Summary List feedback received by an employee
// @Description Employees see their own feedback, managers that of their direct reports, owners and admins anyone's in the organization.
// @Tags feedback
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {array} service.FeedbackResponse "Feedback entries, newest first"
// @Failure 400 {object} map[string]interface{} "Invalid ID format"
// @Failure 403 {object} map[string]interface{} "Not allowed to view this employee's feedback"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Security BearerAuth
// @Router /v1/employees/{id}/feedback [get]
func (h *FeedbackHandler) ListEmployeeFeedback(c *gin.Context) {
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

	resp, err := h.feedback.ListByEmployee(actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListMyFeedback handles GET /api/v1/feedback/received
// @Summary List feedback received by the caller
// @Tags feedback
// @Produce json
// @Success 200 {array} service.FeedbackResponse "Feedback entries, newest first"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /v1/feedback/received [get]
func (h *FeedbackHandler) ListMyFeedback(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.feedback.ListReceived(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
