package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gwarranty/user-service/internal/api/metrics"
	"github.com/gwarranty/user-service/internal/core/domain"
	"github.com/gwarranty/user-service/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a self-service account with the "user" role.
//
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, userResponse{
		Message: "User registered successfully",
		User:    NewUserView(user),
	})
}

// AdminCreate creates an account with any role from the closed set.
//
// @Summary      Create a user with an explicit role (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/admin-create [post]
func (h *UserHandler) AdminCreate(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateWithRole(c.Request().Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, userResponse{
		Message: "User created successfully",
		User:    NewUserView(user),
	})
}

// CreateShopkeeper creates an account with the "shopkeeper" role.
//
// @Summary      Create a shopkeeper (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registerRequest  true  "Shopkeeper details"
// @Success      201   {object}  userResponse
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/create-shopkeeper [post]
func (h *UserHandler) CreateShopkeeper(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.CreateWithRole(c.Request().Context(), req.Name, req.Email, req.Password, domain.RoleShopkeeper)
	if err != nil {
		return err
	}
	metrics.UsersCreatedTotal.WithLabelValues(user.Role).Inc()

	return c.JSON(http.StatusCreated, userResponse{
		Message: "Shopkeeper created successfully",
		User:    NewUserView(user),
	})
}

// List returns every user, ordered by id.
//
// @Summary      List all users (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   UserView
// @Failure      403  {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewUserViews(users))
}

// Get returns one user by id.
//
// @Summary      Get a user by id (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  UserView
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewUserView(user))
}

// Update replaces a user's profile and optionally its password.
//
// @Summary      Update a user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "User id"
// @Param        body  body      updateUserRequest  true  "Updated details"
// @Success      200   {object}  userResponse
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), id, req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User updated successfully",
		User:    NewUserView(user),
	})
}

// Delete removes a user and returns the deleted record.
//
// @Summary      Delete a user (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User id"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := userID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Delete(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{
		Message: "User deleted successfully",
		User:    NewUserView(user),
	})
}

// userID parses the :id path parameter. A non-numeric id can never match a
// row, so it reports the same not-found error a missing row does.
func userID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, domain.ErrUserNotFound
	}
	return id, nil
}
