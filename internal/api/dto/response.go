package dto

// MessageResponse 操作成功的简单提示
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse 登录成功后签发的令牌
type TokenResponse struct {
	Token string `json:"token"`
}

// ErrorResponse 统一错误响应体
type ErrorResponse struct {
	Error string `json:"error"`
}
