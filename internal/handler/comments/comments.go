// File: internal/handler/comments/comments.go
package comments

import (
	"fmt"
	"net/http"
	"strconv"

	"personal-blog/internal/api"
	"personal-blog/internal/database"
	"personal-blog/internal/middleware"
	"personal-blog/internal/service"
	"personal-blog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	addComment    = service.AddComment
	deleteComment = store.DeleteComment
)

func postURL(postID int) string {
	return fmt.Sprintf("/noticia/%d", postID)
}

// AddHandler 新增留言後導回文章頁；post_id 取自 query string
func AddHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CommentRequest
		// POST 時 echo 的 Bind 不處理 query，需另外綁定
		if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Post não encontrado")
		}
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Formulário inválido")
		}
		if req.PostID <= 0 {
			return echo.NewHTTPError(http.StatusNotFound, "Post não encontrado")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Comentário vazio")
		}

		author := middleware.CurrentUser(c)
		if author == nil {
			return service.ErrUnauthorized
		}
		if _, err := addComment(c.Request().Context(), db, req.PostID, author.UserID, req.Body); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, postURL(req.PostID))
	}
}

// DeleteHandler 刪除留言後導回所屬文章
func DeleteHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		commentID, err := strconv.Atoi(c.Param("comment_id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Comentário não encontrado")
		}
		postID, err := strconv.Atoi(c.Param("post_id"))
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Post não encontrado")
		}
		if err := deleteComment(c.Request().Context(), db, commentID); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, postURL(postID))
	}
}
