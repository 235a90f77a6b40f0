package main

import (
	"Lee_CMS/internal/config"
	"Lee_CMS/internal/model"
	"Lee_CMS/internal/pkg"
	"Lee_CMS/internal/repository/mysql"
	"Lee_CMS/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	pkg.SessionSecret = []byte(cfg.JWTSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.Notice{},
		&model.Event{},
		&model.Image{},
	)

	store, err := pkg.NewS3Store(pkg.S3Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		PublicURL: cfg.S3PublicURL,
	})
	if err != nil {
		panic(err)
	}

	r := router.InitRouter(store, cfg.AdminPasswordHash)
	if err := r.Run(cfg.ListenAddr); err != nil {
		return
	}
}
