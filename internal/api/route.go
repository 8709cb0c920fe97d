package api

import (
	"net/http"

	"Quill/internal/api/middleware"
	"Quill/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "pong",
			})
		})

		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/signup", group.AuthHandler.Signup)
			authGroup.POST("/signin", group.AuthHandler.Signin)
		}

		blogGroup := apiGroup.Group("/blogs")
		{
			// 无需登录即可访问的接口
			blogGroup.GET("", group.PostHandler.ListPublished)
			blogGroup.GET("/:id", group.PostHandler.GetPublished)

			protectedGroup := blogGroup.Group("")
			protectedGroup.Use(middleware.AuthMiddleware())
			{
				protectedGroup.POST("", group.PostHandler.CreatePost)
				protectedGroup.PUT("/:id", group.PostHandler.UpdatePost)
				protectedGroup.PATCH("/:id/publish", group.PostHandler.PublishPost)
				protectedGroup.DELETE("/:id", group.PostHandler.DeletePost)
			}
		}

		userGroup := apiGroup.Group("/user")
		{
			userGroup.Use(middleware.AuthMiddleware())
			{
				userGroup.GET("/blogs", group.PostHandler.ListOwned)
			}
		}
	}

	return r
}
