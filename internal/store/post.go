package store

import (
	"context"
	"fmt"

	"personal-blog/internal/database"
	"personal-blog/internal/model"
)

const postSelect = `SELECT p.id, p.title, p.subtitle, p.body, p.published_on, p.author_id,
		COALESCE(u.name, ''), p.created_at
	 FROM posts p LEFT JOIN users u ON u.id = p.author_id`

func scanPost(row interface{ Scan(dest ...any) error }) (*model.Post, error) {
	p := &model.Post{}
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Subtitle,
		&p.Body,
		&p.PublishedOn,
		&p.AuthorID,
		&p.AuthorName,
		&p.CreatedAt,
	); err != nil {
		return nil, err
	}
	return p, nil
}

func CreatePost(ctx context.Context, db database.DB, p *model.Post) (*model.Post, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO posts (title, subtitle, body, published_on, author_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		p.Title,
		p.Subtitle,
		p.Body,
		p.PublishedOn,
		p.AuthorID,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreatePost: %w", translate(err))
	}
	return p, nil
}

func GetPost(ctx context.Context, db database.DB, postID int) (*model.Post, error) {
	p, err := scanPost(db.QueryRow(ctx, postSelect+` WHERE p.id = $1`, postID))
	if err != nil {
		return nil, fmt.Errorf("GetPost: %w", translate(err))
	}
	return p, nil
}

// ListPosts 依建立順序由新到舊回傳文章，limit <= 0 表示全部
func ListPosts(ctx context.Context, db database.DB, limit int) ([]model.Post, error) {
	var lim any
	if limit > 0 {
		lim = limit
	}
	rows, err := db.Query(ctx, postSelect+` ORDER BY p.id DESC LIMIT $1`, lim)
	if err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	defer rows.Close()

	posts := []model.Post{}
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPosts: %w", err)
		}
		posts = append(posts, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPosts: %w", err)
	}
	return posts, nil
}

// ListPostIDs 回傳所有文章 id，由新到舊
func ListPostIDs(ctx context.Context, db database.DB) ([]int, error) {
	rows, err := db.Query(ctx, `SELECT id FROM posts ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("ListPostIDs: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListPostIDs: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPostIDs: %w", err)
	}
	return ids, nil
}

func DeletePost(ctx context.Context, db database.DB, postID int) error {
	tag, err := db.Exec(ctx, `DELETE FROM posts WHERE id = $1`, postID)
	if err != nil {
		return fmt.Errorf("DeletePost: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeletePost: %w", ErrNotFound)
	}
	return nil
}

// DeletePosts 一次刪除多篇文章，回傳實際刪除筆數
func DeletePosts(ctx context.Context, db database.DB, ids []int) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := db.Exec(ctx, `DELETE FROM posts WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("DeletePosts: %w", err)
	}
	return tag.RowsAffected(), nil
}
