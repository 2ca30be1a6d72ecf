package store

import (
	"context"
	"fmt"

	"personal-blog/internal/database"
	"personal-blog/internal/model"
)

const commentSelect = `SELECT c.id, c.body, c.author_id, u.name, u.email, c.post_id, c.created_at
	 FROM comentarios c JOIN users u ON u.id = c.author_id`

func scanComment(row interface{ Scan(dest ...any) error }) (*model.Comment, error) {
	c := &model.Comment{}
	if err := row.Scan(
		&c.ID,
		&c.Body,
		&c.AuthorID,
		&c.AuthorName,
		&c.AuthorEmail,
		&c.PostID,
		&c.CreatedAt,
	); err != nil {
		return nil, err
	}
	return c, nil
}

// CreateComment 新增留言；post 或作者不存在時回傳 ErrNotFound
func CreateComment(ctx context.Context, db database.DB, c *model.Comment) (*model.Comment, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO comentarios (body, author_id, post_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.Body,
		c.AuthorID,
		c.PostID,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateComment: %w", translate(err))
	}
	return c, nil
}

func GetComment(ctx context.Context, db database.DB, commentID int) (*model.Comment, error) {
	c, err := scanComment(db.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, commentID))
	if err != nil {
		return nil, fmt.Errorf("GetComment: %w", translate(err))
	}
	return c, nil
}

func ListCommentsByPost(ctx context.Context, db database.DB, postID int) ([]model.Comment, error) {
	rows, err := db.Query(ctx, commentSelect+` WHERE c.post_id = $1 ORDER BY c.id`, postID)
	if err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("ListCommentsByPost: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCommentsByPost: %w", err)
	}
	return comments, nil
}

func DeleteComment(ctx context.Context, db database.DB, commentID int) error {
	tag, err := db.Exec(ctx, `DELETE FROM comentarios WHERE id = $1`, commentID)
	if err != nil {
		return fmt.Errorf("DeleteComment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteComment: %w", ErrNotFound)
	}
	return nil
}

// ListRepliesByPost 取出某篇文章底下所有留言的回覆
func ListRepliesByPost(ctx context.Context, db database.DB, postID int) ([]model.Reply, error) {
	rows, err := db.Query(ctx,
		`SELECT r.id, r.body, r.author_id, u.name, u.email, r.comment_id, r.created_at
		 FROM respostas r
		 JOIN comentarios c ON c.id = r.comment_id
		 JOIN users u ON u.id = r.author_id
		 WHERE c.post_id = $1
		 ORDER BY r.id`,
		postID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRepliesByPost: %w", err)
	}
	defer rows.Close()

	var replies []model.Reply
	for rows.Next() {
		var r model.Reply
		if err := rows.Scan(&r.ID, &r.Body, &r.AuthorID, &r.AuthorName, &r.AuthorEmail, &r.CommentID, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListRepliesByPost: %w", err)
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRepliesByPost: %w", err)
	}
	return replies, nil
}
