// File: internal/service/comments.go
package service

import (
	"context"
	"unicode/utf8"

	"personal-blog/internal/database"
	"personal-blog/internal/model"
	"personal-blog/internal/store"
)

var createComment = store.CreateComment

// AddComment 新增留言；內容會轉為純文字並限制長度
func AddComment(ctx context.Context, db database.DB, postID, authorID int, body string) (*model.Comment, error) {
	if authorID <= 0 {
		return nil, ErrUnauthorized
	}
	body = SanitizePlainText(body)
	if body == "" {
		return nil, ErrEmptyContent
	}
	if utf8.RuneCountInString(body) > model.CommentMaxLength {
		return nil, ErrCommentTooLong
	}
	return createComment(ctx, db, &model.Comment{
		Body:     body,
		AuthorID: authorID,
		PostID:   postID,
	})
}
