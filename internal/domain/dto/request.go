package dto

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// CreateCategoryRequest represents the JSON request body for creating a category.
//
// @Description Request to create a product category
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=80" example:"Fruit"`
	Description string `json:"description" binding:"required" example:"Fresh fruit"`
	ImageKey    string `json:"image_key,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
} // @name CreateCategoryRequest

// Validate performs custom validation on the request.
func (r *CreateCategoryRequest) Validate() error {
	if len(r.Name) < 2 || len(r.Name) > 80 {
		return &ValidationError{Field: "name", Message: "must be between 2 and 80 characters"}
	}
	if r.Description == "" {
		return &ValidationError{Field: "description", Message: "is required"}
	}
	return nil
}

// UpdateCategoryRequest represents the JSON request body for updating a category.
type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	ImageKey    string `json:"image_key,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
} // @name UpdateCategoryRequest

// UpdateStatusRequest toggles a document between active and inactive.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive" example:"inactive"`
} // @name UpdateStatusRequest

// Validate performs custom validation on the request.
func (r *UpdateStatusRequest) Validate() error {
	if r.Status != "active" && r.Status != "inactive" {
		return &ValidationError{Field: "status", Message: "must be active or inactive"}
	}
	return nil
}

// CreateProductRequest represents the JSON request body for creating a product.
//
// @Description Request to create a product
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=120" example:"Honeycrisp Apple"`
	Description string `json:"description" binding:"required"`
	Price       int64  `json:"price" binding:"required,gt=0" example:"349"`
	Stock       int    `json:"stock" binding:"gte=0" example:"120"`
	CategoryID  string `json:"category_id" binding:"required" example:"507f191e810c19729de860ea"`
	ImageKey    string `json:"image_key,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
} // @name CreateProductRequest

// Validate performs custom validation on the request.
func (r *CreateProductRequest) Validate() error {
	if len(r.Name) < 2 || len(r.Name) > 120 {
		return &ValidationError{Field: "name", Message: "must be between 2 and 120 characters"}
	}
	if r.Price <= 0 {
		return &ValidationError{Field: "price", Message: "must be a positive amount in minor units"}
	}
	if r.Stock < 0 {
		return &ValidationError{Field: "stock", Message: "must not be negative"}
	}
	if r.CategoryID == "" {
		return &ValidationError{Field: "category_id", Message: "is required"}
	}
	return nil
}

// UpdateProductRequest represents the JSON request body for updating a product.
type UpdateProductRequest struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price,omitempty"`
	Stock       *int   `json:"stock,omitempty"`
	ImageKey    string `json:"image_key,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
} // @name UpdateProductRequest

// OrderItemRequest is one product line in an order request.
type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CreateOrderRequest represents the JSON request body for placing an order.
//
// @Description Request to place an order
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
} // @name CreateOrderRequest

// Validate performs custom validation on the request.
func (r *CreateOrderRequest) Validate() error {
	if len(r.Items) == 0 {
		return &ValidationError{Field: "items", Message: "at least one item is required"}
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return &ValidationError{Field: "items.product_id", Message: "is required"}
		}
		if item.Quantity <= 0 {
			return &ValidationError{Field: "items.quantity", Message: "must be a positive integer"}
		}
	}
	return nil
}

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
} // @name UpdateOrderStatusRequest

// Validate performs custom validation on the request.
func (r *UpdateOrderStatusRequest) Validate() error {
	switch r.Status {
	case "pending", "processing", "shipped", "delivered", "cancelled":
		return nil
	}
	return &ValidationError{Field: "status", Message: "unknown order status"}
}

// CreateReviewRequest represents the JSON request body for creating a review.
//
// @Description Request to review a product
type CreateReviewRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5" example:"4"`
	Comment   string `json:"comment,omitempty"`
} // @name CreateReviewRequest

// Validate performs custom validation on the request.
func (r *CreateReviewRequest) Validate() error {
	if r.ProductID == "" {
		return &ValidationError{Field: "product_id", Message: "is required"}
	}
	if r.Rating < 1 || r.Rating > 5 {
		return &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	return nil
}

// UpdateReviewRequest represents the JSON request body for updating a review.
type UpdateReviewRequest struct {
	Rating  int    `json:"rating,omitempty"`
	Comment string `json:"comment,omitempty"`
} // @name UpdateReviewRequest

// Validate performs custom validation on the request.
func (r *UpdateReviewRequest) Validate() error {
	if r.Rating != 0 && (r.Rating < 1 || r.Rating > 5) {
		return &ValidationError{Field: "rating", Message: "must be between 1 and 5"}
	}
	return nil
}

// CreateStaffRequest represents the JSON request body for an admin creating
// a staff account.
type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=80"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin editor staff"`
	Phone    string `json:"phone,omitempty"`
	Gender   string `json:"gender,omitempty"`
} // @name CreateStaffRequest

// Validate performs custom validation on the request.
func (r *CreateStaffRequest) Validate() error {
	if len(r.Name) < 3 {
		return &ValidationError{Field: "name", Message: "must be at least 3 characters"}
	}
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if len(r.Password) < 8 {
		return &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	switch r.Role {
	case "admin", "editor", "staff":
	default:
		return &ValidationError{Field: "role", Message: "unknown role"}
	}
	return nil
}

// UpdateAccountRequest represents the JSON request body for updating a
// staff or user profile.
type UpdateAccountRequest struct {
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
} // @name UpdateAccountRequest
