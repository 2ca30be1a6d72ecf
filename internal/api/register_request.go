package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Username string `form:"username" validate:"required,max=100" example:"ana"`
	Email    string `form:"email" validate:"required,email" example:"ana@example.com"`
	Password string `form:"password" validate:"required,min=4" example:"Secret123!"`
}
