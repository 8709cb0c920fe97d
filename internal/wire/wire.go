package wire

import (
	"Quill/internal/api"
	"Quill/internal/api/handler"
	"Quill/internal/repository"
	"Quill/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *mongo.Database
}

func BuildApplication(db *mongo.Database) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo)

	handlers := &api.HandlersGroup{
		AuthHandler: handler.NewAuthHandler(userService),
		PostHandler: handler.NewPostHandler(postService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
