package repository

import (
	"context"
	"regexp"

	"Quill/internal/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UserRepo interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error)
	GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error)
	FindOneByName(ctx context.Context, name string) (*model.User, error)
}

type userRepoImpl struct {
	col *mongo.Collection
}

func NewUserRepo(db *mongo.Database) UserRepo {
	return &userRepoImpl{
		col: db.Collection("users"),
	}
}

// CreateUser 插入新用户，email 冲突由唯一索引拦截并原样上抛
func (s *userRepoImpl) CreateUser(ctx context.Context, user *model.User) error {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		user.ID = oid
	}
	return nil
}

// GetUserByEmail 按 email 精确查找，未命中返回 nil
func (s *userRepoImpl) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}
	return &user, nil
}

func (s *userRepoImpl) GetUserByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	var user model.User
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by id")
	}
	return &user, nil
}

// GetUsersByIDs 批量查找，用于列表的作者展开
func (s *userRepoImpl) GetUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*model.User, error) {
	cursor, err := s.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, errors.Wrap(err, "find users by ids")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var users []*model.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode users")
	}
	return users, nil
}

// FindOneByName 按名或姓做大小写不敏感的字面子串匹配，未命中返回 nil
func (s *userRepoImpl) FindOneByName(ctx context.Context, name string) (*model.User, error) {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(name), Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"first_name": pattern},
		bson.M{"last_name": pattern},
	}}

	var user model.User
	err := s.col.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by name")
	}
	return &user, nil
}
