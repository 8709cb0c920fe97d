package dto

import (
	"time"

	"Quill/internal/model"
)

// PostCreateDTO 创建文章入参，tags 为逗号分隔的原始表达式
type PostCreateDTO struct {
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description"`
	Tags        *string `json:"tags" validate:"omitempty,min=2"`
	Body        string  `json:"body" validate:"required"`
}

// PostUpdateDTO 更新文章入参，至少需要提供一个字段
type PostUpdateDTO struct {
	Title       *string `json:"title" validate:"omitempty,min=3"`
	Description *string `json:"description"`
	Tags        *string `json:"tags" validate:"omitempty,min=2"`
	Body        *string `json:"body"`
}

// AuthorDTO 公开列表中展开的作者信息，仅暴露三个字段
type AuthorDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// PostDTO 公开视图的文章，author 已展开
type PostDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Tags        []string   `json:"tags"`
	Body        string     `json:"body"`
	ReadingTime int        `json:"reading_time"`
	Author      *AuthorDTO `json:"author"`
	State       string     `json:"state"`
	ReadCount   int64      `json:"read_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// PublicListQueryDTO 公开列表的查询参数
type PublicListQueryDTO struct {
	Author  string `form:"author"`
	Title   string `form:"title"`
	Tags    string `form:"tags"`
	OrderBy string `form:"orderBy"`
	Order   string `form:"order"`
	Page    int64  `form:"page"`
	Limit   int64  `form:"limit"`
}

// OwnedListQueryDTO 个人列表的查询参数
type OwnedListQueryDTO struct {
	State string `form:"state" validate:"omitempty,oneof=draft published"`
	Page  int64  `form:"page"`
	Limit int64  `form:"limit"`
}

// PostPageDTO 公开列表分页响应
type PostPageDTO struct {
	Posts       []*PostDTO `json:"posts"`
	TotalPages  int64      `json:"totalPages"`
	CurrentPage int64      `json:"currentPage"`
}

// OwnedPageDTO 个人列表分页响应，作者已知故不展开
type OwnedPageDTO struct {
	Posts       []*model.Post `json:"posts"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int64         `json:"currentPage"`
}
