package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name  string `json:"name" binding:"required,min=2,max=255"`
	Price int64  `json:"price" binding:"min=0"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=255"`
	Price    *int64  `json:"price" binding:"omitempty,min=0"`
	IsActive *bool   `json:"is_active"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search     string `form:"search"`
	ActiveOnly bool   `form:"active_only"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
