package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"Quill/internal/api/dto"
	"Quill/internal/model"
	"Quill/internal/pkg/util"
	"Quill/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// DefaultPage 分页默认页码
	DefaultPage = int64(1)
	// DefaultLimit 分页默认条数
	DefaultLimit = int64(20)
)

type PostService interface {
	CreatePost(ctx context.Context, authorID string, createDTO *dto.PostCreateDTO) (*model.Post, error)
	UpdatePost(ctx context.Context, authorID, postID string, updateDTO *dto.PostUpdateDTO) (*model.Post, error)
	PublishPost(ctx context.Context, authorID, postID string) (*model.Post, error)
	DeletePost(ctx context.Context, authorID, postID string) error
	ListPublished(ctx context.Context, query *dto.PublicListQueryDTO) (*dto.PostPageDTO, error)
	ListOwned(ctx context.Context, authorID string, query *dto.OwnedListQueryDTO) (*dto.OwnedPageDTO, error)
	GetPublished(ctx context.Context, postID string) (*dto.PostDTO, error)
}

type postServiceImpl struct {
	postRepo repository.PostRepo
	userRepo repository.UserRepo
}

func NewPostService(postRepo repository.PostRepo, userRepo repository.UserRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost 新文章始终以草稿入库，阅读时长由正文派生
func (s *postServiceImpl) CreatePost(ctx context.Context, authorID string, createDTO *dto.PostCreateDTO) (*model.Post, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, ErrParamInvalid
	}
	// 去空白后为空的正文不进入阅读时长计算
	if strings.TrimSpace(createDTO.Body) == "" {
		return nil, ErrParamInvalid
	}

	now := time.Now()
	post := &model.Post{
		Title:       util.StrVal(createDTO.Title),
		Description: util.StrVal(createDTO.Description),
		Tags:        util.SplitTags(util.StrVal(createDTO.Tags)),
		Body:        createDTO.Body,
		ReadingTime: util.CalcReadingTime(createDTO.Body),
		Author:      author,
		State:       model.StateDraft,
		ReadCount:   0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdatePost 只更新提交的字段，正文变更时重算阅读时长
func (s *postServiceImpl) UpdatePost(ctx context.Context, authorID, postID string, updateDTO *dto.PostUpdateDTO) (*model.Post, error) {
	id, author, err := parseOwnedIDs(authorID, postID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now()}
	if updateDTO.Title != nil {
		set["title"] = *updateDTO.Title
	}
	if updateDTO.Description != nil {
		set["description"] = *updateDTO.Description
	}
	if updateDTO.Tags != nil {
		set["tags"] = util.SplitTags(*updateDTO.Tags)
	}
	if updateDTO.Body != nil {
		if strings.TrimSpace(*updateDTO.Body) == "" {
			return nil, ErrParamInvalid
		}
		set["body"] = *updateDTO.Body
		set["reading_time"] = util.CalcReadingTime(*updateDTO.Body)
	}
	if len(set) == 1 {
		// 除时间戳外没有任何待更新字段
		return nil, ErrParamInvalid
	}

	post, err := s.postRepo.UpdateOwned(ctx, id, author, set)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// PublishPost 草稿到已发布的单向迁移，重复发布报错且不产生写入
func (s *postServiceImpl) PublishPost(ctx context.Context, authorID, postID string) (*model.Post, error) {
	id, author, err := parseOwnedIDs(authorID, postID)
	if err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetOwned(ctx, id, author)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.State == model.StatePublished {
		return nil, ErrAlreadyPublished
	}

	updated, err := s.postRepo.UpdateOwned(ctx, id, author, bson.M{
		"state":      model.StatePublished,
		"updated_at": time.Now(),
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrPostNotFound
	}
	return updated, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, authorID, postID string) error {
	id, author, err := parseOwnedIDs(authorID, postID)
	if err != nil {
		return err
	}

	post, err := s.postRepo.DeleteOwned(ctx, id, author)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	return nil
}

// ListPublished 公开列表：过滤、白名单排序、分页，并批量展开作者
func (s *postServiceImpl) ListPublished(ctx context.Context, query *dto.PublicListQueryDTO) (*dto.PostPageDTO, error) {
	page, limit := normalizePage(query.Page, query.Limit)

	filter, err := s.compileListFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.FindPage(ctx, filter, sortSpec(query.OrderBy, query.Order), (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	items, err := s.expandAuthors(ctx, posts)
	if err != nil {
		return nil, err
	}

	return &dto.PostPageDTO{
		Posts:       items,
		TotalPages:  totalPages(count, limit),
		CurrentPage: page,
	}, nil
}

// ListOwned 个人列表：固定按作者过滤，可选按状态精确匹配
func (s *postServiceImpl) ListOwned(ctx context.Context, authorID string, query *dto.OwnedListQueryDTO) (*dto.OwnedPageDTO, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return nil, ErrParamInvalid
	}
	page, limit := normalizePage(query.Page, query.Limit)

	filter := bson.M{"author": author}
	if query.State != "" {
		filter["state"] = query.State
	}

	posts, err := s.postRepo.FindPage(ctx, filter, sortSpec("", ""), (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	count, err := s.postRepo.CountPosts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &dto.OwnedPageDTO{
		Posts:       posts,
		TotalPages:  totalPages(count, limit),
		CurrentPage: page,
	}, nil
}

// GetPublished 公开详情：读取与阅读数递增在同一次原子操作内完成
func (s *postServiceImpl) GetPublished(ctx context.Context, postID string) (*dto.PostDTO, error) {
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetPublishedAndIncrementRead(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	author, err := s.userRepo.GetUserByID(ctx, post.Author)
	if err != nil {
		return nil, err
	}
	return toPostDTO(post, author), nil
}

// compileListFilter 两段式过滤编译：先把软引用（作者名）解析为硬 ID，再拼最终过滤器
func (s *postServiceImpl) compileListFilter(ctx context.Context, query *dto.PublicListQueryDTO) (bson.M, error) {
	filter := bson.M{"state": model.StatePublished}

	if query.Author != "" {
		author, err := s.userRepo.FindOneByName(ctx, query.Author)
		if err != nil {
			return nil, err
		}
		// 未命中作者时不追加约束，列表退化为不按作者过滤
		if author != nil {
			filter["author"] = author.ID
		}
	}

	if query.Title != "" {
		// 标题按字面子串匹配，客户端输入中的正则元字符先转义
		filter["title"] = primitive.Regex{Pattern: regexp.QuoteMeta(query.Title), Options: "i"}
	}

	if query.Tags != "" {
		filter["tags"] = bson.M{"$in": util.SplitTags(query.Tags)}
	}

	return filter, nil
}

// sortSpec 排序字段白名单，客户端的 orderBy 原串不会进入存储层
func sortSpec(orderBy, order string) bson.D {
	field := "created_at"
	switch orderBy {
	case "read_count":
		field = "read_count"
	case "reading_time":
		field = "reading_time"
	}

	direction := -1
	if order == "asc" {
		direction = 1
	}

	return bson.D{{Key: field, Value: direction}}
}

func normalizePage(page, limit int64) (int64, int64) {
	if page <= 0 {
		page = DefaultPage
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	return page, limit
}

func totalPages(count, limit int64) int64 {
	return (count + limit - 1) / limit
}

// expandAuthors 批量把 author 引用展开为公开的作者信息
func (s *postServiceImpl) expandAuthors(ctx context.Context, posts []*model.Post) ([]*dto.PostDTO, error) {
	idSet := make(map[primitive.ObjectID]struct{}, len(posts))
	ids := make([]primitive.ObjectID, 0, len(posts))
	for _, post := range posts {
		if _, ok := idSet[post.Author]; !ok {
			idSet[post.Author] = struct{}{}
			ids = append(ids, post.Author)
		}
	}

	authors := make(map[primitive.ObjectID]*model.User, len(ids))
	if len(ids) > 0 {
		users, err := s.userRepo.GetUsersByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, user := range users {
			authors[user.ID] = user
		}
	}

	items := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		items = append(items, toPostDTO(post, authors[post.Author]))
	}
	return items, nil
}

func toPostDTO(post *model.Post, author *model.User) *dto.PostDTO {
	item := &dto.PostDTO{
		ID:          post.ID.Hex(),
		Title:       post.Title,
		Description: post.Description,
		Tags:        post.Tags,
		Body:        post.Body,
		ReadingTime: post.ReadingTime,
		State:       post.State,
		ReadCount:   post.ReadCount,
		CreatedAt:   post.CreatedAt,
		UpdatedAt:   post.UpdatedAt,
	}
	if author != nil {
		item.Author = &dto.AuthorDTO{
			FirstName: author.FirstName,
			LastName:  author.LastName,
			Email:     author.Email,
		}
	}
	return item
}

// parseOwnedIDs 非法的文章 ID 与不存在的文章不可区分
func parseOwnedIDs(authorID, postID string) (primitive.ObjectID, primitive.ObjectID, error) {
	author, err := primitive.ObjectIDFromHex(authorID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrPostNotFound
	}
	id, err := primitive.ObjectIDFromHex(postID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, ErrPostNotFound
	}
	return id, author, nil
}
