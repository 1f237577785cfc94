package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIResponse standard API response envelope
type APIResponse struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination page metadata
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}

// NewPagination builds page metadata with ceiling division for totalPages
func NewPagination(page, limit int, total int64) *Pagination {
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// SuccessResponse writes a 200 success envelope
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// CreatedResponse writes a 201 success envelope
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// MessageResponse writes a 200 envelope with a message only
func MessageResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Message: message})
}

// PaginatedResponse writes a 200 envelope with page metadata
func PaginatedResponse(c *gin.Context, data interface{}, pagination *Pagination) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Pagination: pagination})
}

// ErrorResponse writes an error envelope with the given status
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Error: message})
}

var devMode bool

// SetDevMode controls whether internal error details are exposed in responses
func SetDevMode(enabled bool) {
	devMode = enabled
}

// FailFromError maps a business error to its HTTP status and writes the envelope.
// Unrecognized errors become 500 with the detail withheld outside development.
func FailFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrSelfConnection), errors.Is(err, ErrSelfConversation):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken), errors.Is(err, ErrExpiredToken):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden), errors.Is(err, ErrNotParticipant):
		ErrorResponse(c, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrConnectionNotFound), errors.Is(err, ErrConversationNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrConflict), errors.Is(err, ErrConnectionExists), errors.Is(err, ErrEmailTaken):
		ErrorResponse(c, http.StatusConflict, err.Error())
	default:
		msg := "internal server error"
		if devMode {
			msg = err.Error()
		}
		ErrorResponse(c, http.StatusInternalServerError, msg)
	}
}
