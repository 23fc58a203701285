package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/techmagnet/seacheck/src/middleware"
	"github.com/techmagnet/seacheck/src/services"
)

// AdminHandler handles admin registration, authentication and the record panel
type AdminHandler struct {
	adminService    *services.AdminService
	sessionService  *services.SessionService
	giftCardService *services.GiftCardService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService, sessionService *services.SessionService, giftCardService *services.GiftCardService) *AdminHandler {
	return &AdminHandler{
		adminService:    adminService,
		sessionService:  sessionService,
		giftCardService: giftCardService,
	}
}

// CredentialsRequest represents the request body for register and login
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleAdminCheck reports whether an admin account exists
func (ah *AdminHandler) HandleAdminCheck(c *gin.Context) {
	exists, err := ah.adminService.AdminExists(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("admin existence check failed")
		c.JSON(http.StatusOK, gin.H{"adminExists": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"adminExists": exists})
}

// HandleRegister creates the admin account. Fails once any account exists.
func (ah *AdminHandler) HandleRegister(c *gin.Context) {
	var req CredentialsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	_, err := ah.adminService.RegisterAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAdminExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Admin already registered"})
			return
		}
		log.Error().Err(err).Msg("admin registration failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	log.Info().Str("email", req.Email).Msg("admin registered")
	c.JSON(http.StatusOK, gin.H{"message": "Admin account created successfully"})
}

// HandleLogin authenticates the admin and issues a session cookie
func (ah *AdminHandler) HandleLogin(c *gin.Context) {
	var req CredentialsRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	admin, err := ah.adminService.AuthenticateAdmin(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Error().Err(err).Msg("admin login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	session, err := ah.sessionService.CreateAdminSession(c.Request.Context(), admin.Email)
	if err != nil {
		log.Error().Err(err).Msg("failed to create admin session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := middleware.IssueSessionToken(session)
	if err != nil {
		log.Error().Err(err).Msg("failed to issue session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(ah.sessionService.TTL().Seconds()),
		"/",
		"",
		true, // Secure
		true, // HttpOnly
	)

	log.Info().Str("email", admin.Email).Msg("admin logged in")
	c.JSON(http.StatusOK, gin.H{"message": "Login successful"})
}

// HandleLogout destroys the session and clears the cookie
func (ah *AdminHandler) HandleLogout(c *gin.Context) {
	if session := middleware.GetSession(c); session != nil {
		if err := ah.sessionService.DestroySession(c.Request.Context(), session.ID); err != nil {
			log.Warn().Err(err).Msg("failed to destroy session")
		}
	}

	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// HandleHistory returns all stored records, newest first
func (ah *AdminHandler) HandleHistory(c *gin.Context) {
	records, err := ah.giftCardService.ListRecords(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// HandleDeleteRecord deletes one record by ID. A malformed or unknown ID is
// not found.
func (ah *AdminHandler) HandleDeleteRecord(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
		return
	}

	if err := ah.giftCardService.DeleteRecord(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Record not found"})
			return
		}
		log.Error().Err(err).Str("record_id", id.String()).Msg("failed to delete record")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete record"})
		return
	}

	log.Info().Str("record_id", id.String()).Msg("record deleted")
	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}
