package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`
	MySQLDSN   string `env:"MYSQL_DSN" envDefault:"user:password@tcp(127.0.0.1:3306)/cms?charset=utf8mb4&parseTime=True"`

	// JWT_SECRET 不配置时退回默认值（和前端约定一致），生产必须覆盖
	JWTSecret string `env:"JWT_SECRET" envDefault:"fallback-secret"`
	// AdminPasswordHash 为空时登录永远失败（fail closed）
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH"`

	S3Endpoint  string `env:"S3_ENDPOINT"`
	S3AccessKey string `env:"S3_ACCESS_KEY"`
	S3SecretKey string `env:"S3_SECRET_KEY"`
	S3Bucket    string `env:"S3_BUCKET"`
	// S3PublicURL 对象的公网读地址前缀，如 https://cdn.example.com
	S3PublicURL string `env:"S3_PUBLIC_URL"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
