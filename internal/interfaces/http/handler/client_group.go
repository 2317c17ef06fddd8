package handler

import (
	advisoryapp "github.com/advisory/backend/internal/application/advisory"
	"github.com/gin-gonic/gin"
)

// ClientGroupHandler handles client group API endpoints
type ClientGroupHandler struct {
	BaseHandler
	groupService *advisoryapp.ClientGroupService
}

// NewClientGroupHandler creates a new ClientGroupHandler
func NewClientGroupHandler(groupService *advisoryapp.ClientGroupService) *ClientGroupHandler {
	return &ClientGroupHandler{groupService: groupService}
}

// RegisterRoutes registers the client group routes on the given group
func (h *ClientGroupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	groups := rg.Group("/client-groups")
	{
		groups.POST("", h.Create)
		groups.GET("", h.List)
		groups.GET("/:id", h.Get)
		groups.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /client-groups
func (h *ClientGroupHandler) Create(c *gin.Context) {
	var req advisoryapp.CreateClientGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.groupService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /client-groups/:id
func (h *ClientGroupHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.groupService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// List handles GET /client-groups
func (h *ClientGroupHandler) List(c *gin.Context) {
	var filter advisoryapp.ClientGroupListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	responses, total, err := h.groupService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, responses, total, filter.Page, filter.PageSize)
}

// Delete handles DELETE /client-groups/:id
func (h *ClientGroupHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.groupService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
