// @title        Personal Blog API
// @version      1.0
// @description  部落格的唯讀 JSON API
// @host         localhost:8080
// @BasePath     /api
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"personal-blog/internal/api"
	"personal-blog/internal/cache"
	"personal-blog/internal/database"
	"personal-blog/internal/handler"
	"personal-blog/internal/mail"
	"personal-blog/internal/router"
	"personal-blog/internal/service"
	"personal-blog/internal/view"
	"personal-blog/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "personal-blog/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

const (
	defaultAdminEmail    = "admin@admin.com"
	defaultAdminPassword = "1234567"
)

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	seedAdminFn     = service.SeedAdmin
	newRenderer     = view.New
	newSMTPSender   = func(cfg mail.SMTPConfig) (mail.Sender, error) { return mail.NewSMTPSender(cfg) }
	newSESSender    = func(from, to string) (mail.Sender, error) { return mail.NewSESSender(from, to) }
	startServer     = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool   = worker.NewPool
	exitFunc        = os.Exit
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func positiveInt(key string, def int, allowZero bool) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || (n == 0 && !allowZero) {
		return 0, fmt.Errorf("無效的 %s: %q", key, v)
	}
	return n, nil
}

func newMailer() (mail.Sender, error) {
	from := os.Getenv("MAIL_FROM")
	to := os.Getenv("MAIL_TO")
	if from == "" || to == "" {
		return nil, fmt.Errorf("環境變數 MAIL_FROM / MAIL_TO 未設定")
	}

	switch backend := envOr("MAIL_BACKEND", "smtp"); backend {
	case "smtp":
		host := os.Getenv("SMTP_HOST")
		if host == "" {
			return nil, fmt.Errorf("環境變數 SMTP_HOST 未設定")
		}
		port, err := positiveInt("SMTP_PORT", 465, false)
		if err != nil {
			return nil, err
		}
		return newSMTPSender(mail.SMTPConfig{
			Host:     host,
			Port:     port,
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     from,
			To:       to,
		})
	case "ses":
		return newSESSender(from, to)
	default:
		return nil, fmt.Errorf("無效的 MAIL_BACKEND: %q", backend)
	}
}

func run() error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("環境變數 REDIS_ADDR 未設定")
	}

	redisDBStr := os.Getenv("REDIS_DB")
	if redisDBStr == "" {
		return fmt.Errorf("環境變數 REDIS_DB 未設定")
	}
	redisIndex, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return fmt.Errorf("無效的 REDIS_DB: %v", err)
	}

	if os.Getenv("JWT_SECRET") == "" {
		return fmt.Errorf("環境變數 JWT_SECRET 未設定")
	}

	workerCount, err := positiveInt("WORKER_COUNT", 1, false)
	if err != nil {
		return err
	}
	maxPosts, err := positiveInt("MAX_POSTS", service.DefaultMaxPosts, true)
	if err != nil {
		return err
	}

	mailer, err := newMailer()
	if err != nil {
		return fmt.Errorf("Mailer 設定失敗: %v", err)
	}

	renderer, err := newRenderer()
	if err != nil {
		return fmt.Errorf("載入模板失敗: %v", err)
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("DB 連線失敗: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, os.Getenv("REDIS_PASSWORD"), redisIndex)
	if err != nil {
		return fmt.Errorf("Redis 連線失敗: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("Migration 執行失敗: %v", err)
	}

	created, err := seedAdminFn(context.Background(), db,
		envOr("ADMIN_EMAIL", defaultAdminEmail), envOr("ADMIN_PASSWORD", defaultAdminPassword))
	if err != nil {
		return fmt.Errorf("建立管理員失敗: %v", err)
	}
	if created {
		log.Print("已建立預設管理員帳號")
	}

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = api.NewValidator()
	e.Renderer = renderer
	e.HTTPErrorHandler = handler.ErrorHandler
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	router.Setup(e, router.Deps{
		DB:       db,
		Cache:    redis,
		Mailer:   mailer,
		Pool:     wp,
		MaxPosts: maxPosts,
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return startServer(e, envOr("LISTEN_ADDR", ":8080"))
}

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
