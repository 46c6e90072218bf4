package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-users-api/internal/core/auth"
	resp "go-users-api/internal/transport/http/response"
)

// CtxUserID is the gin context key carrying the verified subject id.
const CtxUserID = "userId"

// AuthJWT admits requests bearing a valid token and attaches the subject id
// to the request context. Absent token → 401; rejected token → 403. The gate
// holds no cross-request state and never touches the store.
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortFail(c, http.StatusUnauthorized, auth.ErrMissingToken.Error())
			return
		}
		uid, err := j.Verify(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortFail(c, http.StatusForbidden, err.Error())
			return
		}
		c.Set(CtxUserID, uid)
		c.Next()
	}
}

// UserID reads the subject id set by AuthJWT.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, false
	}
	uid, ok := v.(uint)
	return uid, ok
}
