package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Resp struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// New keeps data non-null in the serialized form.
func New(code int, msg string, data interface{}) Resp {
	if data == nil {
		data = struct{}{}
	}
	return Resp{Code: code, Msg: msg, Data: data}
}

// OK writes a 200 with the success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, New(CodeOK, CodeMsgMap[CodeOK], data))
}

// Created writes a 201 with the success envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, New(CodeOK, CodeMsgMap[CodeOK], data))
}

// Fail writes the error envelope with the real HTTP status so clients and
// tests can distinguish outcomes without parsing the body.
func Fail(c *gin.Context, status int, customMsg string) {
	msg := CodeMsgMap[status]
	if customMsg != "" {
		msg = customMsg
	}
	c.JSON(status, New(status, msg, struct{}{}))
}

// AbortFail is Fail for middleware; it stops the handler chain.
func AbortFail(c *gin.Context, status int, customMsg string) {
	msg := CodeMsgMap[status]
	if customMsg != "" {
		msg = customMsg
	}
	c.AbortWithStatusJSON(status, New(status, msg, struct{}{}))
}
