package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoplane/commerce-api/internal/core/auth"
	"github.com/shoplane/commerce-api/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type createUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role"     validate:"omitempty,oneof=USER ADMIN"`
}

type updateProfileRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" validate:"omitempty,email"`
}

type updatePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
}

// List returns every account. Admin only.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create adds an account with an explicit role. Admin only.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      201   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.Create(c.Request().Context(), ports.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, user)
}

// Me returns the account behind the session token.
//
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims := sessionFrom(c)
	if d := auth.RequireRole(claims, auth.LevelUser); !d.Permitted {
		return deny(c, d)
	}

	user, err := h.userService.Get(c.Request().Context(), claims.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Get returns one account. Owner or admin.
//
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}
	if d := auth.RequireOwnerOrAdmin(sessionFrom(c), id); !d.Permitted {
		return deny(c, d)
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile changes name and/or email. Owner or admin.
//
// @Summary      Update profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "User id"
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}
	if d := auth.RequireOwnerOrAdmin(sessionFrom(c), id); !d.Permitted {
		return deny(c, d)
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), id, req.Name, req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdatePassword replaces the password after re-checking the current one.
// Owner or admin.
//
// @Summary      Update password
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "User id"
// @Param        body  body      updatePasswordRequest  true  "Password change"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}
	if d := auth.RequireOwnerOrAdmin(sessionFrom(c), id); !d.Permitted {
		return deny(c, d)
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.userService.UpdatePassword(c.Request().Context(), id, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

// Delete removes an account. Admin only.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if d := auth.RequireRole(sessionFrom(c), auth.LevelAdmin); !d.Permitted {
		return deny(c, d)
	}

	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid user id"})
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
