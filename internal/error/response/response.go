// Package response holds the gin response helpers shared by all
// controllers, so the wire format lives in exactly one place.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NEMOzzzzzzzzzz/sms/internal/error/code"
)

// OK writes a 200 with the given payload.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 with the created document.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Deleted writes the delete acknowledgement, e.g. {"message":"Resident deleted"}.
func Deleted(c *gin.Context, entity string) {
	c.JSON(http.StatusOK, gin.H{"message": entity + " deleted"})
}

// Error maps a service error onto its HTTP status and writes the
// {"error": message} body the SPA consumes.
func Error(c *gin.Context, err error) {
	errCode := code.CodeOf(err)
	msg := err.Error()
	if msg == "" {
		msg = code.GetMessage(errCode)
	}
	c.JSON(code.GetStatus(errCode), gin.H{"error": msg})
}

// BindError reports an undecodable request body.
func BindError(c *gin.Context, err error) {
	c.JSON(code.GetStatus(code.ErrBind), gin.H{"error": "invalid request body: " + err.Error()})
}
