// File: internal/handler/posts_api.go
package handler

import (
	"net/http"
	"strconv"

	"personal-blog/internal/database"
	"personal-blog/internal/dto"
	"personal-blog/internal/service"
	"personal-blog/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listPosts  = store.ListPosts
	postDetail = service.PostDetail
)

// ListPostsAPIHandler 列出文章 (新到舊)
// @Summary     List posts
// @Description 回傳所有文章，最新的在前；limit 大於 0 時只取前幾篇
// @Tags        posts
// @Produce     json
// @Param       limit query    int false "最多筆數"
// @Success     200   {array}  dto.PostResponse
// @Failure     400   {object} dto.HTTPError
// @Failure     500   {object} dto.HTTPError
// @Router      /posts [get]
func ListPostsAPIHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		limit := 0
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid limit"})
			}
			limit = n
		}
		posts, err := listPosts(c.Request().Context(), db, limit)
		if err != nil {
			return err
		}
		out := make([]dto.PostResponse, 0, len(posts))
		for _, p := range posts {
			out = append(out, dto.NewPostResponse(p, false))
		}
		return c.JSON(http.StatusOK, out)
	}
}

// GetPostAPIHandler 取得文章與留言
// @Summary     Get a post
// @Description 回傳文章內容、留言與回覆
// @Tags        posts
// @Produce     json
// @Param       id  path     int true "文章 ID"
// @Success     200 {object} dto.PostDetailResponse
// @Failure     400 {object} dto.HTTPError
// @Failure     404 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Router      /posts/{id} [get]
func GetPostAPIHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: "invalid post ID"})
		}
		post, comments, err := postDetail(c.Request().Context(), db, id)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, dto.NewPostDetailResponse(*post, comments))
	}
}
