package handler

import (
	"Quill/internal/api/dto"
	"Quill/internal/pkg/response"
	"Quill/internal/pkg/util"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	var createDTO dto.PostCreateDTO
	err := c.ShouldBind(&createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&createDTO); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, &createDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, post)
}

func (s *PostHandler) UpdatePost(c *gin.Context) {
	userID := c.GetString("user_id")
	var updateDTO dto.PostUpdateDTO
	err := c.ShouldBind(&updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&updateDTO); err != nil {
		response.Error(c, err)
		return
	}
	post, err := s.postSvc.UpdatePost(c.Request.Context(), userID, c.Param("id"), &updateDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) PublishPost(c *gin.Context) {
	userID := c.GetString("user_id")
	post, err := s.postSvc.PublishPost(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetString("user_id")
	err := s.postSvc.DeletePost(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.MessageResponse{Message: "You've successfully deleted this blog."})
}

func (s *PostHandler) ListPublished(c *gin.Context) {
	var query dto.PublicListQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.postSvc.ListPublished(c.Request.Context(), &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) ListOwned(c *gin.Context) {
	userID := c.GetString("user_id")
	var query dto.OwnedListQueryDTO
	err := c.ShouldBindQuery(&query)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err = util.ValidateDTO(&query); err != nil {
		response.Error(c, err)
		return
	}
	page, err := s.postSvc.ListOwned(c.Request.Context(), userID, &query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}

func (s *PostHandler) GetPublished(c *gin.Context) {
	post, err := s.postSvc.GetPublished(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}
