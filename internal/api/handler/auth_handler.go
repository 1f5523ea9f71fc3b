package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gwarranty/user-service/internal/api/metrics"
	"github.com/gwarranty/user-service/internal/api/middleware"
	"github.com/gwarranty/user-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Message      string   `json:"message"`
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserView `json:"user"`
}

type refreshRequest struct {
	Token string `json:"token"`
}

type refreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Login authenticates an email/password pair and returns a token pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pair, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()
	metrics.TokensIssuedTotal.WithLabelValues("refresh").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message:      "Login successful",
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         NewUserView(user),
	})
}

// Refresh exchanges a valid refresh token for a new access token.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh token"
// @Success      200   {object}  refreshResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "No refresh token provided")
	}

	access, err := h.authService.Refresh(req.Token)
	if err != nil {
		return err
	}
	metrics.TokensIssuedTotal.WithLabelValues("access").Inc()

	return c.JSON(http.StatusOK, refreshResponse{AccessToken: access})
}

// UserDashboard greets any authenticated user or admin.
//
// @Summary      Access the user dashboard
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/user-dashboard [get]
func (h *AuthHandler) UserDashboard(c echo.Context) error {
	claims := middleware.ClaimsFrom(c)
	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Welcome %s! This is your dashboard.", claims.Role),
	})
}

// AdminPanel greets admins only.
//
// @Summary      Access the admin panel
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/admin-panel [get]
func (h *AuthHandler) AdminPanel(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{
		Message: "Welcome Admin! You have full access.",
	})
}

// ShopkeeperZone greets shopkeepers and admins.
//
// @Summary      Access the shopkeeper zone
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /auth/shopkeeper-zone [get]
func (h *AuthHandler) ShopkeeperZone(c echo.Context) error {
	return c.JSON(http.StatusOK, messageResponse{
		Message: "Welcome Shopkeeper!",
	})
}
