package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/krishnasharma7/restaurant-management-system/internal/repository"
	"github.com/krishnasharma7/restaurant-management-system/internal/utils"
)

// UserHandler serves both user surfaces: the bare pass-through
// endpoints under /users, which insert and update exactly as given,
// and the admin endpoints under /admin/users, which additionally
// enforce username uniqueness. Both variants are intentional; see
// the dashboards that each one serves.
type UserHandler struct {
	Users      UserStore
	BcryptCost int
}

// NewUserHandler constructs a UserHandler.
func NewUserHandler(users UserStore, bcryptCost int) *UserHandler {
	if users == nil {
		panic("nil store passed to NewUserHandler")
	}
	return &UserHandler{Users: users, BcryptCost: bcryptCost}
}

// ----- pass-through surface -----

// CreateUser handles POST /users. No uniqueness check is made; this
// path mirrors the legacy collaborator exactly.
func (h *UserHandler) CreateUser(c echo.Context) error {
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username == nil || body.Password == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	hash, err := utils.HashPassword(*body.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	if _, err := h.Users.Create(c.Request().Context(), *body.Username, hash, "CUSTOMER"); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully"})
}

// UpdateUser handles PUT /users/:id. Omitted fields keep their
// stored value; a supplied password is re-hashed.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	u, err := h.Users.GetByID(ctx, id)
	if err == repository.ErrUserNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load user"})
	}
	if body.Username != nil {
		u.Username = *body.Username
	}
	if body.Password != nil {
		hash, err := utils.HashPassword(*body.Password, h.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
		}
		u.PasswordHash = hash
	}
	if err := h.Users.Update(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
}

// DeleteUser handles DELETE /users/:id.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	if err := h.Users.Delete(c.Request().Context(), id); err != nil {
		if err == repository.ErrUserNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not delete user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User deleted successfully"})
}

// ----- admin surface -----

type adminUserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// ListUsers handles GET /admin/users. Password hashes never leave
// the store.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.Users.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not list users"})
	}
	out := make([]adminUserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, adminUserResponse{ID: u.ID, Username: u.Username, Role: u.Role})
	}
	return c.JSON(http.StatusOK, out)
}

// AddUser handles POST /admin/users and refuses duplicate usernames.
func (h *UserHandler) AddUser(c echo.Context) error {
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Username == nil || body.Password == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username and password are required"})
	}
	username := strings.TrimSpace(*body.Username)
	if username == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username cannot be empty"})
	}
	role := "CUSTOMER"
	if body.Role != nil {
		if r := strings.ToUpper(strings.TrimSpace(*body.Role)); r == "ADMIN" || r == "STAFF" || r == "CUSTOMER" {
			role = r
		}
	}

	ctx := c.Request().Context()
	if _, err := h.Users.GetByUsername(ctx, username); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
	} else if err != repository.ErrUserNotFound {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}

	hash, err := utils.HashPassword(*body.Password, h.BcryptCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	id, err := h.Users.Create(ctx, username, hash, role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create user"})
	}
	return c.JSON(http.StatusCreated, adminUserResponse{ID: id, Username: username, Role: role})
}

// AdminUpdateUser handles PUT /admin/users/:id with the uniqueness
// check the pass-through variant omits.
func (h *UserHandler) AdminUpdateUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	var body struct {
		Username *string `json:"username"`
		Password *string `json:"password"`
		Role     *string `json:"role"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	u, err := h.Users.GetByID(ctx, id)
	if err == repository.ErrUserNotFound {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load user"})
	}

	if body.Username != nil {
		username := strings.TrimSpace(*body.Username)
		if username == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "username cannot be empty"})
		}
		if username != u.Username {
			if other, err := h.Users.GetByUsername(ctx, username); err == nil && other.ID != u.ID {
				return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
			} else if err != nil && err != repository.ErrUserNotFound {
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
			}
		}
		u.Username = username
	}
	if body.Password != nil {
		hash, err := utils.HashPassword(*body.Password, h.BcryptCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
		}
		u.PasswordHash = hash
	}
	if body.Role != nil {
		if r := strings.ToUpper(strings.TrimSpace(*body.Role)); r == "ADMIN" || r == "STAFF" || r == "CUSTOMER" {
			u.Role = r
		}
	}

	if err := h.Users.Update(ctx, u); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update user"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "User updated successfully"})
}
