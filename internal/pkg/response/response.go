package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"Quill/internal/api/dto"
	"Quill/internal/pkg/util"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回资源本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 创建成功返回资源本身
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.ErrorResponse{Error: message})
}

// Error 处理错误，将业务错误映射为对应状态码
func Error(c *gin.Context, err error) {
	var vErr *util.ValidationError
	if errors.As(err, &vErr) {
		Fail(c, http.StatusBadRequest, vErr.Error())
		return
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error())
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		log.ErrorContext(c.Request.Context(), "Error", "err", err)
		Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
