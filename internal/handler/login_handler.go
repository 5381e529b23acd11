package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notesfe/notes-api/internal/dto"
	"github.com/notesfe/notes-api/internal/service"
	"go.uber.org/zap"
)

// LoginHandler handles authentication requests
type LoginHandler struct {
	loginService service.LoginService
	logger       *zap.Logger
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(loginService service.LoginService, logger *zap.Logger) *LoginHandler {
	return &LoginHandler{
		loginService: loginService,
		logger:       logger,
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a provider auth user and its mirrored application row
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration request"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/register [post]
func (h *LoginHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	response, err := h.loginService.Register(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("registration failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err, http.StatusBadRequest, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with email and password against the provider
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /api/login [post]
func (h *LoginHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	response, err := h.loginService.Login(c.Request.Context(), &req)
	if err != nil {
		h.logger.Warn("login failed", zap.String("email", req.Email), zap.Error(err))
		respondError(c, err, http.StatusUnauthorized, "Login failed")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUser resolves the caller from the bearer token
// @Summary Get current user
// @Description Resolve the user behind the supplied access token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /api/getUser [get]
func (h *LoginHandler) GetUser(c *gin.Context) {
	token, msg := bearerToken(c)
	if msg != "" {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Success: false, Error: msg})
		return
	}

	response, err := h.loginService.GetUser(c.Request.Context(), token)
	if err != nil {
		h.logger.Warn("get user failed", zap.Error(err))
		respondError(c, err, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	c.JSON(http.StatusOK, response)
}
