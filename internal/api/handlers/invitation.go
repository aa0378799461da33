package handlers

import (
	"net/http"
	"strconv"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles invitation management endpoints
type InvitationHandler struct {
	invitations service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(invitations service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{invitations: invitations}
}

// CreateInvitation handles POST /api/v1/invitations
// @Summary Invite a user into the caller's organization
// @Description Owners and admins may invite any non-owner role, managers may only invite employees. The response carries the one-time token.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.CreateInvitationRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Created invitation with token"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 403 {object} map[string]interface{} "Role not allowed to invite"
// @Failure 409 {object} map[string]interface{} "User or active invitation already exists"
// @Security BearerAuth
// @Router /v1/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.invitations.Create(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListInvitations handles GET /api/v1/invitations
// @Summary List invitations in the caller's organization
// @Tags invitations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.InvitationListResponse "Invitations"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /v1/invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.invitations.List(actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
