package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
	"github.com/NEMOzzzzzzzzzz/sms/internal/error/response"
)

// pathID extracts the :id path parameter. Ids are server-assigned integers;
// anything else is a validation failure, not a lookup miss.
func pathID(ctx *gin.Context) (uint, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, code.InvalidField("id", "must be a positive integer")
	}
	return uint(id), nil
}

// unknownMethod rejects a dispatch to a method the controller does not have.
// Reaching it means a route registration bug, not a client error.
func unknownMethod(ctx *gin.Context, method string) {
	response.Error(ctx, code.New(code.ErrNotImplemented, "unknown controller method %q", method))
}
