package api

type ContactRequest struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone"`
	Message string `form:"message" validate:"required"`
}
