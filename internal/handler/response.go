package handler

import (
	"github.com/gin-gonic/gin"
)

const (
	errTypeInvalidRequest     = "invalid_request"
	errTypeUpstream           = "upstream_error"
	errTypeNotFound           = "not_found"
	errTypeHistoryUnavailable = "history_unavailable"
	errTypeInternal           = "internal_error"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}
