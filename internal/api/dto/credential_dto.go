package dto

// CredentialDTO 登录入参
type CredentialDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
