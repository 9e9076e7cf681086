package http

import (
	"net/http"
	"time"

	"github.com/nikhilpatil30sept-hash/vehicle-maintenance-tracker/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accountService ports.AccountService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

type AuthRequest struct {
	Username string `json:"username" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type RegisterResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type LoginResponse struct {
	User UserInfo `json:"user"`
}

func NewAccountHandler(
	accountService ports.AccountService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		logger:         logger,
		metrics:        metrics,
	}
}

// @Summary Register a user
// @Description Creates a new account with a unique username
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AuthRequest true "Credentials"
// @Success 201 {object} RegisterResponse "User created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 409 {object} errorResponse "Username taken"
// @Router /register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in register", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.accountService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("Failed to register user", map[string]interface{}{
			"error":    err.Error(),
			"username": req.Username,
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusCreated, RegisterResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// @Summary Log in
// @Description Verifies credentials and returns the user's public identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body AuthRequest true "Credentials"
// @Success 200 {object} LoginResponse "Authenticated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Invalid credentials"
// @Router /login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in login", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	user, err := h.accountService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("Failed login attempt", map[string]interface{}{
			"username": req.Username,
			"ip":       c.ClientIP(),
		})
		newServiceErrorResponse(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		User: UserInfo{
			ID:       user.ID,
			Username: user.Username,
		},
	})
}
