package api

import (
	"context"
	"fmt"
	"log"
	"time"

	"wpcopyright/docs"
	"wpcopyright/internal/app/config"
	"wpcopyright/internal/app/copyright"
	"wpcopyright/internal/app/dsn"
	"wpcopyright/internal/app/handler"
	"wpcopyright/internal/app/hooks"
	"wpcopyright/internal/app/middleware"
	"wpcopyright/internal/app/redis"
	"wpcopyright/internal/app/repository"
	"wpcopyright/internal/app/storage"
	"wpcopyright/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")
	ctx := context.Background()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка чтения конфигурации: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logrus.Fatalf("ошибка подключения к redis: %v", err)
	}
	defer redisClient.Close()

	// MinIO опционален: без него нет выгрузки настроек и таблицы из bucket
	var minioClient *storage.MinIOClient
	var objects CatalogObjects
	if cfg.MinIO.Enabled() {
		minioClient, err = storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			logrus.Fatalf("ошибка подключения к minio: %v", err)
		}
		objects = minioClient
	}

	catalog, err := LoadCatalog(ctx, cfg, objects)
	if err != nil {
		logrus.Fatalf("ошибка загрузки таблицы лицензий: %v", err)
	}

	if _, err := copyright.Activate(ctx, repo, catalog); err != nil {
		logrus.Fatal(err)
	}

	service := copyright.NewService(catalog, repo, cfg.SiteName)
	registry := hooks.Register(hooks.NewRegistry(), service, repo)

	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)
	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, service, minioClient, authHandler)
	h := handler.NewHandler(repo, service, registry)

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	application := pkg.NewApp(cfg, router, h, apiHandler, authMiddleware)
	application.RunApp()

	log.Println("Server down")
}
