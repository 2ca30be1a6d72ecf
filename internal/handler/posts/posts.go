// File: internal/handler/posts/posts.go
package posts

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"personal-blog/internal/api"
	"personal-blog/internal/database"
	"personal-blog/internal/handler"
	"personal-blog/internal/middleware"
	"personal-blog/internal/service"
	"personal-blog/internal/store"
	"personal-blog/internal/worker"

	"github.com/labstack/echo/v4"
)

// pruneTimeout 背景清理單次執行的上限
const pruneTimeout = 30 * time.Second

var (
	listPosts     = store.ListPosts
	deletePost    = store.DeletePost
	pruneOldPosts = service.PruneOldPosts
	postDetail    = service.PostDetail
	publishPost   = service.PublishPost
)

func postID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "Post não encontrado")
	}
	return id, nil
}

// HomeHandler 先清理超過上限的舊文章，再顯示最新三篇
func HomeHandler(db database.DB, maxPosts int) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if _, err := pruneOldPosts(ctx, db, maxPosts); err != nil {
			c.Logger().Errorf("prune on home: %v", err)
		}
		posts, err := listPosts(ctx, db, service.HomePageSize)
		if err != nil {
			return err
		}
		p := handler.NewPage(c, "Início")
		p.Posts = posts
		return c.Render(http.StatusOK, "index", p)
	}
}

// AllHandler 顯示所有文章，最新的在前
func AllHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		posts, err := listPosts(c.Request().Context(), db, 0)
		if err != nil {
			return err
		}
		p := handler.NewPage(c, "Todos os posts")
		p.Posts = posts
		return c.Render(http.StatusOK, "index", p)
	}
}

// ShowHandler 顯示單篇文章、留言與留言表單
func ShowHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := postID(c, "id")
		if err != nil {
			return err
		}
		post, comments, err := postDetail(c.Request().Context(), db, id)
		if err != nil {
			return err
		}
		p := handler.NewPage(c, post.Title)
		p.Post = post
		p.Comments = comments
		return c.Render(http.StatusOK, "post", p)
	}
}

// NewFormHandler 顯示新增文章表單 (管理員)
func NewFormHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "new_post", handler.NewPage(c, "Novo post"))
	}
}

// CreateHandler 發佈文章後在背景清理舊文章；連續發文只排一次清理
func CreateHandler(db database.DB, pool worker.Pool, maxPosts int) echo.HandlerFunc {
	prune := worker.NewTrigger(pool)
	return func(c echo.Context) error {
		var req api.PostRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido")
		}
		p := handler.NewPage(c, "Novo post")
		p.Form = map[string]string{"titulo": req.Title, "subtitulo": req.Subtitle, "body": req.Body}
		if err := c.Validate(&req); err != nil {
			p.Flash = "Título, subtítulo e conteúdo são obrigatórios"
			return c.Render(http.StatusBadRequest, "new_post", p)
		}

		author := middleware.CurrentUser(c)
		if author == nil {
			return service.ErrUnauthorized
		}
		if _, err := publishPost(c.Request().Context(), db, author.UserID, req.Title, req.Subtitle, req.Body); err != nil {
			return err
		}

		logger := c.Logger()
		queued := prune.Fire(func() {
			ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
			defer cancel()
			n, err := pruneOldPosts(ctx, db, maxPosts)
			if err != nil {
				logger.Errorf("prune after create: %v", err)
				return
			}
			if n > 0 {
				logger.Infof("pruned %d old posts", n)
			}
		})
		if !queued {
			logger.Debugf("prune already pending, skipped")
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}

// DeleteHandler 刪除文章 (連同留言) 後回首頁
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := postID(c, "id")
		if err != nil {
			return err
		}
		if err := deletePost(c.Request().Context(), db, id); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/")
	}
}
