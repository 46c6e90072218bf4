package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-users-api/internal/domain"
	"go-users-api/internal/service"
	mdw "go-users-api/internal/transport/http/middleware"
	resp "go-users-api/internal/transport/http/response"
)

type UserHandler struct {
	users *service.UserService
	log   *zap.Logger
}

func NewUserHandler(users *service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

type userIn struct {
	Name        string     `json:"name"        binding:"required,max=64"`
	LastName    string     `json:"lastName"    binding:"required,max=64"`
	Username    string     `json:"username"    binding:"required,max=64"`
	Email       string     `json:"email"       binding:"required,email"`
	Birthdate   *time.Time `json:"birthdate"   binding:"omitempty"`
	Address     string     `json:"address"     binding:"omitempty,max=191"`
	PhotoSource string     `json:"photoSource" binding:"omitempty,max=191"`
	Password    string     `json:"password"    binding:"omitempty"`
	StateID     *uint      `json:"stateId"     binding:"omitempty"`
}

func (in *userIn) toUser() *domain.User {
	return &domain.User{
		Name:        in.Name,
		LastName:    in.LastName,
		Username:    in.Username,
		Email:       in.Email,
		Birthdate:   in.Birthdate,
		Address:     in.Address,
		PhotoSource: in.PhotoSource,
		StateID:     in.StateID,
	}
}

// List handles GET /users. Without page/size it returns every row with its
// State, like the lookup-joined listing this API replaces.
func (h *UserHandler) List(c *gin.Context) {
	page := atoiDefault(c.Query("page"), 0)
	size := atoiDefault(c.Query("size"), 0)
	if size > 100 {
		size = 100
	}
	offset := 0
	if page > 1 && size > 0 {
		offset = (page - 1) * size
	}
	users, total, err := h.users.List(c.Request.Context(), offset, size)
	if err != nil {
		h.storeError(c, "list users failed", err)
		return
	}
	resp.OK(c, gin.H{"list": users, "total": total})
}

// Get handles GET /users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "user not found")
	case err != nil:
		h.storeError(c, "get user failed", err)
	default:
		resp.OK(c, u)
	}
}

// Create handles POST /users: administrative create, password required.
func (h *UserHandler) Create(c *gin.Context) {
	var in userIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if in.Password == "" {
		resp.Fail(c, http.StatusBadRequest, "password is required")
		return
	}
	u, err := h.users.Create(c.Request.Context(), in.toUser(), in.Password)
	switch {
	case err != nil && isDupKey(err):
		resp.Fail(c, http.StatusBadRequest, "username or email already taken")
	case err != nil:
		h.storeError(c, "create user failed", err)
	default:
		resp.Created(c, u)
	}
}

// Update handles PUT /users/:id as a full-record replace. A non-empty
// password in the body is re-hashed before it is stored.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in userIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.users.Update(c.Request.Context(), id, in.toUser(), in.Password)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "user not found")
	case err != nil && isDupKey(err):
		resp.Fail(c, http.StatusBadRequest, "username or email already taken")
	case err != nil:
		h.storeError(c, "update user failed", err)
	default:
		resp.OK(c, u)
	}
}

// Delete handles DELETE /users/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	err := h.users.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "user not found")
	case err != nil:
		h.storeError(c, "delete user failed", err)
	default:
		resp.OK(c, gin.H{"id": id})
	}
}

func (h *UserHandler) storeError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err), zap.String("rid", c.GetString(mdw.KeyRequestID)))
	resp.Fail(c, http.StatusInternalServerError, "")
}

func pathID(c *gin.Context) (uint, bool) {
	v, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.Fail(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(v), true
}

func atoiDefault(s string, def int) int {
	if v, err := strconv.Atoi(s); err == nil && v > 0 {
		return v
	}
	return def
}

// isDupKey matches unique-violation messages across drivers instead of
// depending on gorm.ErrDuplicatedKey, which varies by version.
func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
