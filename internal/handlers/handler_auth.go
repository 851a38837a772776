package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/onmuhasebe/cari_ledger_app/internal/dto"
	"github.com/onmuhasebe/cari_ledger_app/internal/middleware"
	"github.com/onmuhasebe/cari_ledger_app/internal/platform/config"
)

// authHandler issues access tokens for the single operator account.
type authHandler struct {
	cfg *config.Config
}

func newAuthHandler(cfg *config.Config) *authHandler {
	return &authHandler{cfg: cfg}
}

// registerAuthRoutes registers the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config) {
	h := newAuthHandler(cfg)
	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", h.login)
	}
}

// login godoc
// @Summary Operator login
// @Description Validates the operator credentials and issues a JWT access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Operator credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Failed to issue token"
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if h.cfg.AdminPasswordHash == "" || req.Username != h.cfg.AdminUsername {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("Login rejected", slog.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   req.Username,
		Issuer:    h.cfg.JWTIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.cfg.JWTExpiryDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		logger.Error("Failed to sign token", slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	logger.Info("Operator logged in", slog.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     signed,
		ExpiresIn: int64(h.cfg.JWTExpiryDuration.Seconds()),
	})
}
