package service

import (
	"context"
	"time"

	"Quill/internal/api/dto"
	"Quill/internal/model"
	"Quill/internal/pkg/security"
	"Quill/internal/repository"

	"github.com/jinzhu/copier"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserService interface {
	Register(ctx context.Context, signupDTO *dto.SignupDTO) error
	Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error)
}

type userServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// Register 注册新用户。预检与唯一索引冲突都归一化为 ErrEmailExists
func (s *userServiceImpl) Register(ctx context.Context, signupDTO *dto.SignupDTO) error {
	findUser, err := s.userRepo.GetUserByEmail(ctx, signupDTO.Email)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrEmailExists
	}

	user := &model.User{}
	if err = copier.Copy(user, signupDTO); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(signupDTO.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash
	user.CreatedAt = time.Now()

	err = s.userRepo.CreateUser(ctx, user)
	// 预检通过后并发写入仍可能撞唯一索引，以插入结果为准
	if mongo.IsDuplicateKeyError(err) {
		return ErrEmailExists
	}
	return err
}

// Login 校验凭据并签发令牌。用户不存在与密码错误返回同一错误，不泄露差异
func (s *userServiceImpl) Login(ctx context.Context, credentialDTO *dto.CredentialDTO) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, credentialDTO.Email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}

	if err = security.CheckPasswordHash(credentialDTO.Password, user.Password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := security.GenerateToken(user.ID.Hex())
	if err != nil {
		return "", err
	}
	return token, nil
}
