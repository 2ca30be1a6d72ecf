// File: internal/model/comment.go
package model

import "time"

// CommentMaxLength 留言與回覆的最大字數
const CommentMaxLength = 100

type Comment struct {
	ID          int       `db:"id" json:"id"`
	Body        string    `db:"body" json:"body"`
	AuthorID    int       `db:"author_id" json:"author_id"`
	AuthorName  string    `db:"author_name" json:"author_name"`
	// AuthorEmail 只用於頭像，不輸出到 API
	AuthorEmail string    `db:"author_email" json:"-"`
	PostID      int       `db:"post_id" json:"post_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Replies     []Reply   `db:"-" json:"replies,omitempty"`
}

type Reply struct {
	ID          int       `db:"id" json:"id"`
	Body        string    `db:"body" json:"body"`
	AuthorID    int       `db:"author_id" json:"author_id"`
	AuthorName  string    `db:"author_name" json:"author_name"`
	AuthorEmail string    `db:"author_email" json:"-"`
	CommentID   int       `db:"comment_id" json:"comment_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
