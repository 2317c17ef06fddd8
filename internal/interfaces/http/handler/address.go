package handler

import (
	advisoryapp "github.com/advisory/backend/internal/application/advisory"
	"github.com/gin-gonic/gin"
)

// AddressHandler handles address API endpoints
type AddressHandler struct {
	BaseHandler
	addressService *advisoryapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *advisoryapp.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// RegisterRoutes registers the address routes on the given group
func (h *AddressHandler) RegisterRoutes(rg *gin.RouterGroup) {
	addresses := rg.Group("/addresses")
	{
		addresses.POST("", h.Create)
		addresses.GET("", h.List)
		addresses.GET("/:id", h.Get)
		addresses.DELETE("/:id", h.Delete)
	}
}

// Create handles POST /addresses
func (h *AddressHandler) Create(c *gin.Context) {
	var req advisoryapp.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.addressService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get handles GET /addresses/:id
func (h *AddressHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.addressService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.OK(c, resp)
}

// List handles GET /addresses
func (h *AddressHandler) List(c *gin.Context) {
	var filter advisoryapp.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	responses, total, err := h.addressService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Paginated(c, responses, total, filter.Page, filter.PageSize)
}

// Delete handles DELETE /addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
