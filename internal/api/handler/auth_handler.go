package handler

import (
	"Quill/internal/api/dto"
	"Quill/internal/pkg/response"
	"Quill/internal/pkg/util"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userSvc service.UserService
}

func NewAuthHandler(userSvc service.UserService) *AuthHandler {
	return &AuthHandler{
		userSvc: userSvc,
	}
}

func (s *AuthHandler) Signup(c *gin.Context) {
	var signupDTO dto.SignupDTO
	err := c.ShouldBind(&signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&signupDTO); err != nil {
		response.Error(c, err)
		return
	}
	err = s.userSvc.Register(c.Request.Context(), &signupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.MessageResponse{Message: "Successfully created user."})
}

func (s *AuthHandler) Signin(c *gin.Context) {
	var credentialDTO dto.CredentialDTO
	err := c.ShouldBind(&credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&credentialDTO); err != nil {
		response.Error(c, err)
		return
	}
	token, err := s.userSvc.Login(c.Request.Context(), &credentialDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.TokenResponse{Token: token})
}
