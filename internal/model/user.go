package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 注册用户。注册后不可变更，email 由唯一索引保证全局唯一
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	FirstName string             `bson:"first_name" json:"first_name"`
	LastName  string             `bson:"last_name" json:"last_name"`
	Username  string             `bson:"username" json:"username"`
	Password  string             `bson:"password" json:"-"` // bcrypt 哈希，永不对外序列化
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
