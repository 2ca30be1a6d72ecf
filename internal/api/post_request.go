// File: internal/api/post_request.go
package api

// PostRequest 新增文章表單；body 為富文字 HTML
type PostRequest struct {
	Title    string `form:"titulo" validate:"required,max=200"`
	Subtitle string `form:"subtitulo" validate:"required,max=300"`
	Body     string `form:"body" validate:"required"`
}
