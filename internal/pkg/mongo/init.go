package mongo

import (
	"context"
	log "log/slog"
	"time"

	"Quill/internal/api/config"
	"Quill/internal/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// InitMongo 建立连接并返回 Database 引用，同时初始化索引
func InitMongo(cfg config.MongoConfig) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// 建立连接
	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cfg.URL).
		SetMonitor(logger.NewMongoMonitor()),
	)
	if err != nil {
		return nil, err
	}

	// 检查连通性
	if err = client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.Database)

	// email 唯一索引，注册去重的最终裁决点
	_, err = db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, err
	}

	log.Info("MongoDB initialized successfully", "db", cfg.Database)
	return db, nil
}
