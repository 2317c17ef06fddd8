package handler

import (
	advisoryapp "github.com/advisory/backend/internal/application/advisory"
	"github.com/gin-gonic/gin"
)

// AssociationHandler handles the junction endpoints linking product
// owners into client groups
type AssociationHandler struct {
	BaseHandler
	associationService *advisoryapp.AssociationService
}

// NewAssociationHandler creates a new AssociationHandler
func NewAssociationHandler(associationService *advisoryapp.AssociationService) *AssociationHandler {
	return &AssociationHandler{associationService: associationService}
}

// RegisterRoutes registers the junction routes on the given group
func (h *AssociationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	junctions := rg.Group("/client-group-product-owners")
	{
		junctions.POST("", h.Create)
		junctions.GET("", h.List)
		junctions.GET("/:id", h.Get)
		junctions.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /client-group-product-owners
func (h *AssociationHandler) Create(c *gin.Context) {
	var req advisoryapp.CreateAssociationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.associationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /client-group-product-owners/:id
func (h *AssociationHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.associationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// List handles GET /client-group-product-owners
func (h *AssociationHandler) List(c *gin.Context) {
	var filter advisoryapp.AssociationListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	responses, total, err := h.associationService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, responses, total, filter.Page, filter.PageSize)
}

// Delete handles DELETE /client-group-product-owners/:id
func (h *AssociationHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.associationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
