package api

// CommentRequest 留言表單，post_id 來自 query string
type CommentRequest struct {
	PostID int    `query:"post_id" validate:"required,gt=0"`
	Body   string `form:"comentario" validate:"required"`
}
