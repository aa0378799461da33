package handlers

import (
	"net/http"

	"feedback-hub-backend/internal/auth"
	"feedback-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login, profile and invitation acceptance
type AuthHandler struct {
	accounts    service.AccountServiceInterface
	invitations service.InvitationServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(accounts service.AccountServiceInterface, invitations service.InvitationServiceInterface) *AuthHandler {
	return &AuthHandler{accounts: accounts, invitations: invitations}
}

// Register handles POST /api/auth/register
// @Summary Register the first user of an organization
// @Description Bootstrap an organization: the first registered user becomes its owner
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body service.RegisterRequest true "Registration data"
// @Success 201 {object} service.AuthResponse "Account created and logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 403 {object} map[string]interface{} "Organization already has members"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.accounts.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login handles POST /api/auth/login
// @Summary Log in with email and password
// @Description Verify credentials and issue an access token. organization_id disambiguates emails that exist in several organizations.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.AuthResponse "Logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.accounts.Login(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse "Current user"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, h.accounts.Me(actor))
}

// AcceptInvitation handles POST /api/auth/invitations/accept
// @Summary Accept an invitation
// @Description Redeem an invitation token, create the account with the invited role and log in
// @Tags auth
// @Accept json
// @Produce json
// @Param acceptance body service.AcceptInvitationRequest true "Invitation token, name and password"
// @Success 201 {object} service.AuthResponse "Account created and logged in"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid or expired invitation token"
// @Failure 409 {object} map[string]interface{} "User already exists"
// @Router /auth/invitations/accept [post]
func (h *AuthHandler) AcceptInvitation(c *gin.Context) {
	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.invitations.Accept(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
