// File: internal/service/posts.go
package service

import (
	"context"
	"fmt"
	"strings"

	"personal-blog/internal/database"
	"personal-blog/internal/model"
	"personal-blog/internal/store"
)

const (
	// HomePageSize 首頁顯示的文章數
	HomePageSize = 3
	// DefaultMaxPosts 預設保留的文章上限
	DefaultMaxPosts = 5
)

var (
	createPost         = store.CreatePost
	getPost            = store.GetPost
	listPostIDs        = store.ListPostIDs
	deletePosts        = store.DeletePosts
	listCommentsByPost = store.ListCommentsByPost
	listRepliesByPost  = store.ListRepliesByPost
)

// PublishPost 以今天日期建立文章，作者為目前登入的管理員
func PublishPost(ctx context.Context, db database.DB, authorID int, title, subtitle, body string) (*model.Post, error) {
	title = strings.TrimSpace(title)
	subtitle = strings.TrimSpace(subtitle)
	body = SanitizeRichText(body)
	if title == "" || subtitle == "" {
		return nil, ErrEmptyContent
	}
	p := &model.Post{
		Title:       title,
		Subtitle:    subtitle,
		Body:        body,
		PublishedOn: timeNow().Format(model.PublishedOnLayout),
	}
	if authorID > 0 {
		p.AuthorID = &authorID
	}
	return createPost(ctx, db, p)
}

// ExcessPostIDs 傳入由新到舊排序的 id，回傳超過 maxCount 的舊文章 id
func ExcessPostIDs(newestFirst []int, maxCount int) []int {
	if maxCount < 0 || len(newestFirst) <= maxCount {
		return nil
	}
	excess := make([]int, len(newestFirst)-maxCount)
	copy(excess, newestFirst[maxCount:])
	return excess
}

// PruneOldPosts 只保留最新的 maxCount 篇文章，回傳刪除筆數
func PruneOldPosts(ctx context.Context, db database.DB, maxCount int) (int64, error) {
	if maxCount < 0 {
		return 0, fmt.Errorf("PruneOldPosts: invalid max %d", maxCount)
	}
	ids, err := listPostIDs(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("PruneOldPosts: %w", err)
	}
	excess := ExcessPostIDs(ids, maxCount)
	if len(excess) == 0 {
		return 0, nil
	}
	n, err := deletePosts(ctx, db, excess)
	if err != nil {
		return 0, fmt.Errorf("PruneOldPosts: %w", err)
	}
	return n, nil
}

// PostDetail 回傳文章、留言與各留言的回覆
func PostDetail(ctx context.Context, db database.DB, postID int) (*model.Post, []model.Comment, error) {
	post, err := getPost(ctx, db, postID)
	if err != nil {
		return nil, nil, err
	}
	comments, err := listCommentsByPost(ctx, db, postID)
	if err != nil {
		return nil, nil, err
	}
	replies, err := listRepliesByPost(ctx, db, postID)
	if err != nil {
		return nil, nil, err
	}

	byComment := make(map[int][]model.Reply, len(replies))
	for _, r := range replies {
		byComment[r.CommentID] = append(byComment[r.CommentID], r)
	}
	for i := range comments {
		comments[i].Replies = byComment[comments[i].ID]
	}
	return post, comments, nil
}
