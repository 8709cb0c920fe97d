package dto

// SignupDTO 注册入参
type SignupDTO struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	Username  string `json:"username" validate:"required,min=2"`
	Password  string `json:"password" validate:"required,min=6"`
}
