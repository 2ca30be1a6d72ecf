// File: internal/model/post.go
package model

import "time"

// PublishedOnLayout 文章日期格式 (例: 7/3/2024)
const PublishedOnLayout = "2/1/2006"

type Post struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Subtitle    string    `db:"subtitle" json:"subtitle"`
	Body        string    `db:"body" json:"body"`
	PublishedOn string    `db:"published_on" json:"published_on"`
	AuthorID    *int      `db:"author_id" json:"author_id,omitempty"`
	AuthorName  string    `db:"author_name" json:"author_name,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
