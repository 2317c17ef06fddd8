package handler

import (
	"errors"
	"net/http"

	"github.com/advisory/backend/internal/domain/shared"
	"github.com/advisory/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// OK sends a 200 response
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated sends a 200 response with pagination metadata
func (h *BaseHandler) Paginated(c *gin.Context, items any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewListResponse(items, total, page, pageSize))
}

// BindError converts a request binding failure into an error response.
// Validator failures produce a 422 with field-level messages; anything
// else (malformed JSON, wrong types) produces a 400 with a string detail.
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	if fields := dto.FieldErrors(err); fields != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewFieldDetail(fields))
		return
	}
	c.JSON(http.StatusBadRequest, dto.NewDetail(err.Error()))
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewDetail(domainErr.Message))
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewDetail("Internal server error"))
}

// parseID extracts and validates the id path parameter. On failure it
// writes a 422 and returns false.
func (h *BaseHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.NewFieldDetail(map[string]string{
			"id": "value must be a valid UUID",
		}))
		return uuid.Nil, false
	}
	return id, true
}
