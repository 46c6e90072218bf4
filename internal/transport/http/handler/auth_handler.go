package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-users-api/internal/domain"
	"go-users-api/internal/service"
	mdw "go-users-api/internal/transport/http/middleware"
	resp "go-users-api/internal/transport/http/response"
)

type AuthHandler struct {
	auth *service.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth *service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, log: log}
}

type registerIn struct {
	Name        string `json:"name"        binding:"required,max=64"`
	Username    string `json:"username"    binding:"required,max=64"`
	LastName    string `json:"lastName"    binding:"required,max=64"`
	Email       string `json:"email"       binding:"required,email"`
	PhotoSource string `json:"photoSource" binding:"omitempty,max=191"`
	Password    string `json:"password"    binding:"required,min=1"`
}

// Register handles POST /register. 201 with the created record, 400 when the
// username or email is already taken.
func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.auth.Register(c.Request.Context(), service.RegisterInput{
		Name:        in.Name,
		LastName:    in.LastName,
		Username:    in.Username,
		Email:       in.Email,
		PhotoSource: in.PhotoSource,
		Password:    in.Password,
	})
	switch {
	case errors.Is(err, domain.ErrUsernameTaken), errors.Is(err, domain.ErrEmailTaken):
		resp.Fail(c, http.StatusBadRequest, err.Error())
	case err != nil:
		h.storeError(c, "register failed", err)
	default:
		resp.Created(c, u)
	}
}

type loginIn struct {
	// Username accepts either a username or an email.
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /login. 404 when no user matches the identifier, 400 on
// a password mismatch, 200 with a bearer token otherwise.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	token, err := h.auth.Login(c.Request.Context(), in.Username, in.Password)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "user not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		resp.Fail(c, http.StatusBadRequest, "invalid credentials")
	case err != nil:
		h.storeError(c, "login failed", err)
	default:
		resp.OK(c, gin.H{"token": token})
	}
}

// Logout handles POST /logout. Tokens are self-contained, so there is no
// server-side session to destroy; the client discards its copy.
func (h *AuthHandler) Logout(c *gin.Context) {
	resp.OK(c, gin.H{"message": "logged out"})
}

// Me handles GET /me: the token subject's current record with its State.
func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := mdw.UserID(c)
	if !ok {
		resp.Fail(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	u, err := h.auth.Me(c.Request.Context(), uid)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		resp.Fail(c, http.StatusNotFound, "user not found")
	case err != nil:
		h.storeError(c, "load current user failed", err)
	default:
		resp.OK(c, u)
	}
}

func (h *AuthHandler) storeError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err), zap.String("rid", c.GetString(mdw.KeyRequestID)))
	resp.Fail(c, http.StatusInternalServerError, "")
}
