package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/household-store/admin-api/internal/api/metrics"
	"github.com/household-store/admin-api/internal/core/domain"
	"github.com/household-store/admin-api/internal/core/ports"
)

// UserHandler exposes the admin user management endpoints. Routes mounting
// it sit behind the Auth and RBAC middleware; per-target authorization
// happens in the service's access gate.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all users, optionally filtered by a search term or a role.
//
// @Summary      List users
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive substring matched against email, first name, or last name"
// @Param        role    query     string  false  "Filter by role"
// @Success      200     {object}  apiResponse
// @Failure      401     {object}  apiResponse
// @Failure      403     {object}  apiResponse
// @Router       /api/v1/admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	actorEmail, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	var users []*domain.User
	switch {
	case c.QueryParam("search") != "":
		users, err = h.userService.Search(ctx, actorEmail, c.QueryParam("search"))
	case c.QueryParam("role") != "":
		role, parseErr := domain.ParseRole(c.QueryParam("role"))
		if parseErr != nil {
			return parseErr
		}
		users, err = h.userService.ListByRole(ctx, actorEmail, role)
	default:
		users, err = h.userService.List(ctx, actorEmail)
	}
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "users retrieved", newUserListResponse(users))
}

// Create adds a new account with a caller-supplied role.
//
// @Summary      Create a user with a role
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "Account details"
// @Success      201   {object}  apiResponse
// @Failure      400   {object}  apiResponse
// @Failure      403   {object}  apiResponse
// @Router       /api/v1/admin/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actorEmail, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	birthDate, err := parseBirthDate(req.BirthDate)
	if err != nil {
		return err
	}

	created, err := h.userService.CreateWithRole(c.Request().Context(), actorEmail, ports.CreateUserInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Surname:   req.Surname,
		Telephone: req.Telephone,
		BirthDate: birthDate,
		Role:      role,
	})
	if err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues(string(created.Role)).Inc()

	return respond(c, http.StatusCreated, "user created", newUserResponse(created))
}

// Roles returns the roles the acting user may assign or manage.
//
// @Summary      List manageable roles
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  apiResponse
// @Failure      403  {object}  apiResponse
// @Router       /api/v1/admin/users/roles [get]
func (h *UserHandler) Roles(c echo.Context) error {
	actorEmail, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	roles, err := h.userService.ManageableRoles(c.Request().Context(), actorEmail)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "manageable roles retrieved", newRolesResponse(roles))
}

// ChangeRole assigns a new role to the target user.
//
// @Summary      Change a user's role
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Target user id"
// @Param        body  body      changeRoleRequest  true  "New role"
// @Success      200   {object}  apiResponse
// @Failure      403   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /api/v1/admin/users/{id}/role [put]
func (h *UserHandler) ChangeRole(c echo.Context) error {
	actorEmail, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	newRole, err := domain.ParseRole(req.NewRole)
	if err != nil {
		return err
	}

	updated, err := h.userService.ChangeRole(c.Request().Context(), actorEmail, c.Param("id"), newRole)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "role updated", newUserResponse(updated))
}

// SetStatus activates or deactivates the target user.
//
// @Summary      Activate or deactivate a user
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Target user id"
// @Param        body  body      updateStatusRequest  true  "Desired status"
// @Success      200   {object}  apiResponse
// @Failure      403   {object}  apiResponse
// @Failure      404   {object}  apiResponse
// @Router       /api/v1/admin/users/{id}/status [put]
func (h *UserHandler) SetStatus(c echo.Context) error {
	actorEmail, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.userService.SetActive(c.Request().Context(), actorEmail, c.Param("id"), *req.Active)
	if err != nil {
		return err
	}

	message := "user deactivated"
	if updated.Active {
		message = "user activated"
	}
	return respond(c, http.StatusOK, message, newUserResponse(updated))
}

// Delete removes the target user.
//
// @Summary      Delete a user
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Target user id"
// @Success      200  {object}  apiResponse
// @Failure      403  {object}  apiResponse
// @Failure      404  {object}  apiResponse
// @Router       /api/v1/admin/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actorEmail, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), actorEmail, c.Param("id")); err != nil {
		return err
	}

	metrics.UsersDeletedTotal.Inc()

	return respond(c, http.StatusOK, "user deleted", nil)
}
