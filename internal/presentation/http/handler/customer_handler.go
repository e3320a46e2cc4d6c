package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kilatwash/washpos-api/internal/application/service"
	"github.com/kilatwash/washpos-api/internal/domain/enum"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/request"
	"github.com/kilatwash/washpos-api/internal/presentation/http/dto/response"
	"github.com/kilatwash/washpos-api/pkg/pagination"
)

// CustomerHandler handles customer, vehicle, and membership HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), &service.CreateCustomerInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Get handles getting a single customer
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer retrieved successfully", customer)
}

// List handles listing customers
func (h *CustomerHandler) List(c *gin.Context) {
	params := paginationFromQuery(c)
	search := c.Query("search")

	result, err := h.customerService.ListCustomers(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, &service.UpdateCustomerInput{
		Name:        req.Name,
		Phone:       req.Phone,
		Address:     req.Address,
		DeviceToken: req.DeviceToken,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// AssignMembership handles attaching a membership tier to a customer
func (h *CustomerHandler) AssignMembership(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.AssignMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.AssignMembership(c.Request.Context(), id, &service.AssignMembershipInput{
		MembershipTypeID: req.MembershipTypeID,
		Status:           enum.MembershipStatus(req.Status),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership assigned successfully", customer)
}

// RevokeMembership handles clearing a customer's membership
func (h *CustomerHandler) RevokeMembership(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	customer, err := h.customerService.RevokeMembership(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership revoked successfully", customer)
}

// CreateVehicle handles registering a vehicle for a customer
func (h *CustomerHandler) CreateVehicle(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vehicle, err := h.customerService.CreateVehicle(c.Request.Context(), customerID, &service.CreateVehicleInput{
		Category:      enum.VehicleCategory(req.Category),
		Brand:         req.Brand,
		Model:         req.Model,
		Color:         req.Color,
		LicensePlate:  req.LicensePlate,
		EngineClassID: req.EngineClassID,
		HelmetTypeID:  req.HelmetTypeID,
		CarSizeID:     req.CarSizeID,
		ApparelTypeID: req.ApparelTypeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Vehicle registered successfully", vehicle)
}

// ListVehicles handles listing a customer's vehicles
func (h *CustomerHandler) ListVehicles(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	vehicles, err := h.customerService.ListVehicles(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicles retrieved successfully", vehicles)
}

// UpdateVehicle handles updating a registered vehicle
func (h *CustomerHandler) UpdateVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req request.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	vehicle, err := h.customerService.UpdateVehicle(c.Request.Context(), vehicleID, &service.UpdateVehicleInput{
		Brand:         req.Brand,
		Model:         req.Model,
		Color:         req.Color,
		LicensePlate:  req.LicensePlate,
		EngineClassID: req.EngineClassID,
		HelmetTypeID:  req.HelmetTypeID,
		CarSizeID:     req.CarSizeID,
		ApparelTypeID: req.ApparelTypeID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vehicle updated successfully", vehicle)
}

// DeleteVehicle handles removing a vehicle
func (h *CustomerHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := uuid.Parse(c.Param("vehicleId"))
	if err != nil {
		response.BadRequest(c, "Invalid vehicle ID")
		return
	}

	if err := h.customerService.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// CreateMembershipType handles creating a membership tier
func (h *CustomerHandler) CreateMembershipType(c *gin.Context) {
	var req request.MembershipTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mt, err := h.customerService.CreateMembershipType(c.Request.Context(), &service.CreateMembershipTypeInput{
		Name:         req.Name,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		IsPremium:    req.IsPremium,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Membership type created successfully", mt)
}

// ListMembershipTypes handles listing membership tiers
func (h *CustomerHandler) ListMembershipTypes(c *gin.Context) {
	types, err := h.customerService.ListMembershipTypes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership types retrieved successfully", types)
}

// UpdateMembershipType handles updating a membership tier
func (h *CustomerHandler) UpdateMembershipType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid membership type ID")
		return
	}

	var req request.MembershipTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mt, err := h.customerService.UpdateMembershipType(c.Request.Context(), id, &service.CreateMembershipTypeInput{
		Name:         req.Name,
		DurationDays: req.DurationDays,
		Price:        req.Price,
		IsPremium:    req.IsPremium,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Membership type updated successfully", mt)
}

// DeleteMembershipType handles removing a membership tier
func (h *CustomerHandler) DeleteMembershipType(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid membership type ID")
		return
	}

	if err := h.customerService.DeleteMembershipType(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// paginationFromQuery reads page/per_page query parameters
func paginationFromQuery(c *gin.Context) *pagination.PaginationParams {
	params := &pagination.PaginationParams{}
	if err := c.ShouldBindQuery(params); err != nil {
		return &pagination.PaginationParams{Page: 1, PerPage: 15}
	}
	params.Validate()
	return params
}
