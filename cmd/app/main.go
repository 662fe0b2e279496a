package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BloggingApp/blog-service/internal/config"
	"github.com/BloggingApp/blog-service/internal/handler"
	"github.com/BloggingApp/blog-service/internal/repository/postgres"
	"github.com/BloggingApp/blog-service/internal/server"
	"github.com/BloggingApp/blog-service/internal/service"
	"github.com/BloggingApp/blog-service/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := loadEnv(); err != nil {
		logger.Sugar().Warnf("failed to load .env, using process environment: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Panicf("failed to initialize yaml config: %s", err.Error())
	}

	dbConfig := config.DBConfig{
		Username: os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		DBName:   os.Getenv("POSTGRES_DATABASE"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	db, err := postgres.DB(ctx, dbConfig)
	if err != nil {
		logger.Sugar().Panicf("failed to connect to postgres: %s", err.Error())
	}
	defer db.Close()
	if err := db.Ping(ctx); err != nil {
		logger.Sugar().Panicf("failed to ping postgres: %s", err.Error())
	}
	logger.Info("Successfully connected to PostgreSQL")

	if viper.GetBool("database.bootstrap-schema") {
		if err := postgres.Bootstrap(ctx, db); err != nil {
			logger.Sugar().Panicf("failed to bootstrap schema: %s", err.Error())
		}
	}

	images := storage.NewS3(config.StorageConfig{
		Endpoint:        os.Getenv("S3_ENDPOINT"),
		Region:          os.Getenv("S3_REGION"),
		AccessKeyID:     os.Getenv("S3_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("S3_SECRET_ACCESS_KEY"),
		Bucket:          os.Getenv("S3_BUCKET"),
		PublicURL:       viper.GetString("storage.public-url"),
	})

	appConfig := config.AppConfig{
		PageSize:     viper.GetInt("pagination.page-size"),
		LoginURL:     viper.GetString("auth.login-url"),
		ClientOrigin: viper.GetString("client.origin"),
		AccessSecret: []byte(os.Getenv("ACCESS_SECRET")),
	}

	repos := postgres.New(db)
	services := service.New(logger, repos, images, service.Options{PageSize: appConfig.PageSize})
	handlers := handler.New(services, logger, appConfig)

	gin.SetMode(viper.GetString("app.mode"))

	srv := server.New()
	serverConfig := config.ServerConfig{
		Port:           viper.GetString("app.port"),
		Handler:        handlers.InitRoutes(),
		MaxHeaderBytes: 1 << 20,
		ReadTimeout:    time.Second * 10,
		WriteTimeout:   time.Second * 10,
	}
	go func() {
		if err := srv.Run(serverConfig); err != nil {
			logger.Sugar().Panicf("failed to run http server: %s", err.Error())
		}
	}()

	logger.Info("Server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logger.Info("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
}

func loadEnv() error {
	return godotenv.Load()
}

func initConfig() error {
	viper.SetDefault("app.port", "8080")
	viper.SetDefault("app.mode", "release")
	viper.SetDefault("pagination.page-size", service.DefaultPageSize)
	viper.SetDefault("auth.login-url", "/auth/login")
	viper.SetDefault("database.bootstrap-schema", true)

	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}
