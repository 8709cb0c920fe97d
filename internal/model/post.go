package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// StateDraft 草稿，仅作者可见
	StateDraft = "draft"
	// StatePublished 已发布，公开可见，为终态
	StatePublished = "published"
)

// Post 博客文章。reading_time 为派生字段，read_count 只由公开详情读取递增
type Post struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Tags        []string           `bson:"tags" json:"tags"`
	Body        string             `bson:"body" json:"body"`
	ReadingTime int                `bson:"reading_time" json:"reading_time"`
	Author      primitive.ObjectID `bson:"author" json:"author"`
	State       string             `bson:"state" json:"state"`
	ReadCount   int64              `bson:"read_count" json:"read_count"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
