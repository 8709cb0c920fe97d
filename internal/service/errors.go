package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid       = errors.New("invalid request parameters")
	ErrEmailExists        = errors.New("This email is already in use.")
	ErrInvalidCredentials = errors.New("Invalid credentials.")
	ErrPostNotFound       = errors.New("This post could not be found.")
	ErrAlreadyPublished   = errors.New("This post is already published.")
	UnExpectedError       = errors.New("unexpected server error")
)

// ErrorMap 业务错误到 HTTP 状态码的映射
var ErrorMap = map[error]int{
	ErrParamInvalid:       http.StatusBadRequest,
	ErrEmailExists:        http.StatusBadRequest,
	ErrInvalidCredentials: http.StatusUnauthorized,
	ErrPostNotFound:       http.StatusNotFound,
	ErrAlreadyPublished:   http.StatusBadRequest,
	UnExpectedError:       http.StatusInternalServerError,
}
