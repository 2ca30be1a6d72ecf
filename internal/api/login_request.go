package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email" example:"admin@admin.com"`
	Password string `form:"password" validate:"required" example:"1234567"`
}
