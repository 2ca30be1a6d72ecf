// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"personal-blog/internal/cache"
	"personal-blog/internal/database"
	"personal-blog/internal/handler"
	"personal-blog/internal/handler/auth"
	"personal-blog/internal/handler/comments"
	"personal-blog/internal/handler/posts"
	"personal-blog/internal/handler/users"
	"personal-blog/internal/mail"
	"personal-blog/internal/middleware"
	"personal-blog/internal/worker"
)

// Deps 路由需要的外部資源
type Deps struct {
	DB       database.DB
	Cache    cache.Cache
	Mailer   mail.Sender
	Pool     worker.Pool
	MaxPosts int
}

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, d Deps) {
	e.Use(middleware.LoadSession(d.Cache, d.DB))

	// 登入、登出、註冊
	e.GET("/login", auth.LoginFormHandler())
	e.POST("/login", auth.LoginHandler(d.DB, d.Cache))
	e.GET("/logout", auth.LogoutHandler(d.Cache))
	e.GET("/registrar", auth.RegisterFormHandler())
	e.POST("/registrar", auth.RegisterHandler(d.DB))

	// 公開頁面
	e.GET("/", posts.HomeHandler(d.DB, d.MaxPosts))
	e.GET("/all", posts.AllHandler(d.DB))
	e.GET("/noticia/:id", posts.ShowHandler(d.DB))
	e.GET("/sobre", handler.AboutHandler())
	e.GET("/contato", handler.ContactFormHandler())
	e.POST("/contato", handler.ContactHandler(d.Mailer))

	// 需登入
	e.POST("/coment", comments.AddHandler(d.DB), middleware.RequireAuth)
	e.GET("/delete/:comment_id/:post_id", comments.DeleteHandler(d.DB), middleware.RequireAuth)

	// 管理員專屬
	e.GET("/novo", posts.NewFormHandler(), middleware.RequireAdmin)
	e.POST("/novo", posts.CreateHandler(d.DB, d.Pool, d.MaxPosts), middleware.RequireAdmin)
	e.GET("/deletapost/:id", posts.DeleteHandler(d.DB), middleware.RequireAdmin)
	e.Match([]string{"GET", "POST"}, "/banir", users.ListHandler(d.DB), middleware.RequireAdmin)
	e.Match([]string{"GET", "POST"}, "/banir/:name", users.BanHandler(d.DB), middleware.RequireAdmin)

	// 唯讀 JSON API
	api := e.Group("/api")
	api.GET("/ping", handler.PingHandler(d.DB, d.Cache))
	api.GET("/posts", handler.ListPostsAPIHandler(d.DB))
	api.GET("/posts/:id", handler.GetPostAPIHandler(d.DB))
}
