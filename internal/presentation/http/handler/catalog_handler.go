package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/application/service"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/request"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles service catalog, price matrix, and F&D HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// CreateServiceItem handles creating a service item
func (h *CatalogHandler) CreateServiceItem(c *gin.Context) {
	var req request.CreateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.CreateServiceItem(c.Request.Context(), &service.CreateServiceItemInput{
		Name:       req.Name,
		AppliesTo:  enum.VehicleCategory(req.AppliesTo),
		IsMainWash: req.IsMainWash,
		IsPremium:  req.IsPremium,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Service item created successfully", item)
}

// GetServiceItem handles getting a single service item
func (h *CatalogHandler) GetServiceItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service item ID")
		return
	}

	item, err := h.catalogService.GetServiceItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service item retrieved successfully", item)
}

// ListServiceItems handles listing service items
func (h *CatalogHandler) ListServiceItems(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	var appliesTo *enum.VehicleCategory
	if cat := c.Query("applies_to"); cat != "" {
		category := enum.VehicleCategory(cat)
		if !category.Valid() {
			response.BadRequest(c, "Unknown category")
			return
		}
		appliesTo = &category
	}

	items, err := h.catalogService.ListServiceItems(c.Request.Context(), activeOnly, appliesTo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service items retrieved successfully", items)
}

// UpdateServiceItem handles updating a service item
func (h *CatalogHandler) UpdateServiceItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service item ID")
		return
	}

	var req request.UpdateServiceItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateServiceItemInput{
		Name:       req.Name,
		IsMainWash: req.IsMainWash,
		IsPremium:  req.IsPremium,
		IsActive:   req.IsActive,
	}
	if req.AppliesTo != nil {
		category := enum.VehicleCategory(*req.AppliesTo)
		input.AppliesTo = &category
	}

	item, err := h.catalogService.UpdateServiceItem(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Service item updated successfully", item)
}

// DeleteServiceItem handles removing a service item
func (h *CatalogHandler) DeleteServiceItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid service item ID")
		return
	}

	if err := h.catalogService.DeleteServiceItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreatePriceMatrixRow handles adding a price matrix row
func (h *CatalogHandler) CreatePriceMatrixRow(c *gin.Context) {
	var req request.CreatePriceMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	row, err := h.catalogService.CreatePriceMatrixRow(c.Request.Context(), &service.CreatePriceMatrixInput{
		ServiceItemID: req.ServiceItemID,
		EngineClassID: req.EngineClassID,
		HelmetTypeID:  req.HelmetTypeID,
		CarSizeID:     req.CarSizeID,
		ApparelTypeID: req.ApparelTypeID,
		Price:         req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Price matrix row created successfully", row)
}

// ListPriceMatrix handles listing price matrix rows
func (h *CatalogHandler) ListPriceMatrix(c *gin.Context) {
	var serviceItemID *uuid.UUID
	if s := c.Query("service_item_id"); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			response.BadRequest(c, "Invalid service item ID")
			return
		}
		serviceItemID = &id
	}

	rows, err := h.catalogService.ListPriceMatrix(c.Request.Context(), serviceItemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price matrix retrieved successfully", rows)
}

// UpdatePriceMatrixRow handles changing the price on a matrix row
func (h *CatalogHandler) UpdatePriceMatrixRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price matrix row ID")
		return
	}

	var req request.UpdatePriceMatrixRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	row, err := h.catalogService.UpdatePriceMatrixRow(c.Request.Context(), id, req.Price)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price matrix row updated successfully", row)
}

// DeletePriceMatrixRow handles removing a price matrix row
func (h *CatalogHandler) DeletePriceMatrixRow(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid price matrix row ID")
		return
	}

	if err := h.catalogService.DeletePriceMatrixRow(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ResolvePrice handles price resolution for a service item and vehicle
// dimensions
func (h *CatalogHandler) ResolvePrice(c *gin.Context) {
	var req request.ResolvePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	price, err := h.catalogService.ResolvePrice(c.Request.Context(), &service.PriceLookup{
		ServiceItemID: req.ServiceItemID,
		EngineClassID: req.EngineClassID,
		HelmetTypeID:  req.HelmetTypeID,
		CarSizeID:     req.CarSizeID,
		ApparelTypeID: req.ApparelTypeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Price resolved successfully", gin.H{"price": price})
}

// CreateFdItem handles creating a food & drink item
func (h *CatalogHandler) CreateFdItem(c *gin.Context) {
	var req request.FdItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.CreateFdItem(c.Request.Context(), &service.CreateFdItemInput{
		Name:  req.Name,
		Price: req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "F&D item created successfully", item)
}

// ListFdItems handles listing food & drink items
func (h *CatalogHandler) ListFdItems(c *gin.Context) {
	activeOnly := c.Query("active_only") == "true"

	items, err := h.catalogService.ListFdItems(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "F&D items retrieved successfully", items)
}

// UpdateFdItem handles updating a food & drink item
func (h *CatalogHandler) UpdateFdItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid F&D item ID")
		return
	}

	var req request.UpdateFdItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.UpdateFdItem(c.Request.Context(), id, &service.UpdateFdItemInput{
		Name:     req.Name,
		Price:    req.Price,
		IsActive: req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "F&D item updated successfully", item)
}

// DeleteFdItem handles removing a food & drink item
func (h *CatalogHandler) DeleteFdItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid F&D item ID")
		return
	}

	if err := h.catalogService.DeleteFdItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListDimensions handles listing the pricing dimension tables
func (h *CatalogHandler) ListDimensions(c *gin.Context) {
	dims, err := h.catalogService.ListDimensions(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dimensions retrieved successfully", dims)
}
