// File: internal/dto/post_response.go
package dto

import "personal-blog/internal/model"

// swagger:model dto.PostResponse
type PostResponse struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Primeiro post"`
	Subtitle    string `json:"subtitle" example:"Olá mundo"`
	Body        string `json:"body,omitempty" example:"<p>conteúdo</p>"`
	PublishedOn string `json:"published_on" example:"7/3/2024"`
	Author      string `json:"author" example:"administrador"`
}

// swagger:model dto.CommentResponse
type CommentResponse struct {
	ID      int             `json:"id" example:"1"`
	Author  string          `json:"author" example:"ana"`
	Body    string          `json:"body" example:"Adorei"`
	Replies []ReplyResponse `json:"replies"`
}

// swagger:model dto.ReplyResponse
type ReplyResponse struct {
	ID     int    `json:"id" example:"1"`
	Author string `json:"author" example:"bob"`
	Body   string `json:"body" example:"Eu também"`
}

// swagger:model dto.PostDetailResponse
type PostDetailResponse struct {
	Post     PostResponse      `json:"post"`
	Comments []CommentResponse `json:"comments"`
}

// NewPostResponse 轉換文章；withBody 為 false 時省略內文 (列表用)
func NewPostResponse(p model.Post, withBody bool) PostResponse {
	r := PostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Subtitle:    p.Subtitle,
		PublishedOn: p.PublishedOn,
		Author:      p.AuthorName,
	}
	if withBody {
		r.Body = p.Body
	}
	return r
}

func NewPostDetailResponse(p model.Post, comments []model.Comment) PostDetailResponse {
	out := PostDetailResponse{
		Post:     NewPostResponse(p, true),
		Comments: make([]CommentResponse, 0, len(comments)),
	}
	for _, c := range comments {
		cr := CommentResponse{ID: c.ID, Author: c.AuthorName, Body: c.Body, Replies: make([]ReplyResponse, 0, len(c.Replies))}
		for _, r := range c.Replies {
			cr.Replies = append(cr.Replies, ReplyResponse{ID: r.ID, Author: r.AuthorName, Body: r.Body})
		}
		out.Comments = append(out.Comments, cr)
	}
	return out
}
