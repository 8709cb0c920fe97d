package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Mongo  MongoConfig  `mapstructure:"mongo"`
	JWT    JWTConfig    `mapstructure:"jwt"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// MongoConfig 文档库配置
type MongoConfig struct {
	URL      string `mapstructure:"url"`
	Database string `mapstructure:"database"`
}

// JWTConfig 令牌签发配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpiryHours int    `mapstructure:"expiry_hours"`
}
