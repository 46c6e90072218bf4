package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-users-api/internal/service"
	mdw "go-users-api/internal/transport/http/middleware"
	resp "go-users-api/internal/transport/http/response"
)

type StateHandler struct {
	states *service.StateService
	log    *zap.Logger
}

func NewStateHandler(states *service.StateService, log *zap.Logger) *StateHandler {
	return &StateHandler{states: states, log: log}
}

// List handles GET /states.
func (h *StateHandler) List(c *gin.Context) {
	states, err := h.states.List(c.Request.Context())
	if err != nil {
		h.log.Error("list states failed", zap.Error(err), zap.String("rid", c.GetString(mdw.KeyRequestID)))
		resp.Fail(c, http.StatusInternalServerError, "")
		return
	}
	resp.OK(c, states)
}

type stateIn struct {
	Name string `json:"name" binding:"required,max=64"`
}

// Create handles POST /state.
func (h *StateHandler) Create(c *gin.Context) {
	var in stateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.Fail(c, http.StatusBadRequest, err.Error())
		return
	}
	st, err := h.states.Create(c.Request.Context(), in.Name)
	if err != nil {
		h.log.Error("create state failed", zap.Error(err), zap.String("rid", c.GetString(mdw.KeyRequestID)))
		resp.Fail(c, http.StatusInternalServerError, "")
		return
	}
	resp.Created(c, st)
}
