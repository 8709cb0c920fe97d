package repository

import (
	"context"

	"Quill/internal/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	GetOwned(ctx context.Context, id, author primitive.ObjectID) (*model.Post, error)
	UpdateOwned(ctx context.Context, id, author primitive.ObjectID, set bson.M) (*model.Post, error)
	DeleteOwned(ctx context.Context, id, author primitive.ObjectID) (*model.Post, error)
	GetPublishedAndIncrementRead(ctx context.Context, id primitive.ObjectID) (*model.Post, error)
	FindPage(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]*model.Post, error)
	CountPosts(ctx context.Context, filter bson.M) (int64, error)
}

type postRepoImpl struct {
	col *mongo.Collection
}

func NewPostRepo(db *mongo.Database) PostRepo {
	return &postRepoImpl{
		col: db.Collection("posts"),
	}
}

func (s *postRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	res, err := s.col.InsertOne(ctx, post)
	if err != nil {
		return errors.Wrap(err, "insert post")
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// GetOwned 归属限定查找：他人的文章与不存在的文章不可区分
func (s *postRepoImpl) GetOwned(ctx context.Context, id, author primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOne(ctx, bson.M{"_id": id, "author": author}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find owned post")
	}
	return &post, nil
}

// UpdateOwned 单次往返完成归属校验与字段更新，返回更新后的文档
func (s *postRepoImpl) UpdateOwned(ctx context.Context, id, author primitive.ObjectID, set bson.M) (*model.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "author": author},
		bson.M{"$set": set},
		opts,
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "update owned post")
	}
	return &post, nil
}

// DeleteOwned 原子的查找并删除，避免检查与删除之间的竞态
func (s *postRepoImpl) DeleteOwned(ctx context.Context, id, author primitive.ObjectID) (*model.Post, error) {
	var post model.Post
	err := s.col.FindOneAndDelete(ctx, bson.M{"_id": id, "author": author}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "delete owned post")
	}
	return &post, nil
}

// GetPublishedAndIncrementRead 读取已发布文章并在同一次往返中递增阅读数
func (s *postRepoImpl) GetPublishedAndIncrementRead(ctx context.Context, id primitive.ObjectID) (*model.Post, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var post model.Post
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "state": model.StatePublished},
		bson.M{"$inc": bson.M{"read_count": 1}},
		opts,
	).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "increment read count")
	}
	return &post, nil
}

// FindPage 按编译好的过滤器分页查询
func (s *postRepoImpl) FindPage(ctx context.Context, filter bson.M, sort bson.D, skip, limit int64) ([]*model.Post, error) {
	findOptions := options.Find().
		SetSort(sort).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errors.Wrap(err, "find posts")
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	posts := make([]*model.Post, 0, limit)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, errors.Wrap(err, "decode posts")
	}
	return posts, nil
}

// CountPosts 与 FindPage 使用同一过滤器，保证 totalPages 一致
func (s *postRepoImpl) CountPosts(ctx context.Context, filter bson.M) (int64, error) {
	count, err := s.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, errors.Wrap(err, "count posts")
	}
	return count, nil
}
