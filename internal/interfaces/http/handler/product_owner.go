package handler

import (
	advisoryapp "github.com/advisory/backend/internal/application/advisory"
	"github.com/gin-gonic/gin"
)

// ProductOwnerHandler handles product owner API endpoints
type ProductOwnerHandler struct {
	BaseHandler
	ownerService *advisoryapp.ProductOwnerService
}

// NewProductOwnerHandler creates a new ProductOwnerHandler
func NewProductOwnerHandler(ownerService *advisoryapp.ProductOwnerService) *ProductOwnerHandler {
	return &ProductOwnerHandler{ownerService: ownerService}
}

// RegisterRoutes registers the product owner routes on the given group
func (h *ProductOwnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	owners := rg.Group("/product-owners")
	{
		owners.POST("", h.Create)
		owners.GET("", h.List)
		owners.GET("/:id", h.Get)
		owners.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /product-owners
func (h *ProductOwnerHandler) Create(c *gin.Context) {
	var req advisoryapp.CreateProductOwnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.ownerService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /product-owners/:id
func (h *ProductOwnerHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.ownerService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// List handles GET /product-owners
func (h *ProductOwnerHandler) List(c *gin.Context) {
	var filter advisoryapp.ProductOwnerListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	responses, total, err := h.ownerService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, responses, total, filter.Page, filter.PageSize)
}

// Delete handles DELETE /product-owners/:id
func (h *ProductOwnerHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.ownerService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
