package models

import (
	"time"
)

// DefaultArticleImgURL is used when a new article omits article_img_url
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Article represents a full article row plus the derived comment count
type Article struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	Body          string    `json:"body" db:"body"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
}

// ArticleSummary is a listing row: every article field except body, plus
// the derived comment count and the author's avatar
type ArticleSummary struct {
	ArticleID     int       `json:"article_id" db:"article_id"`
	Title         string    `json:"title" db:"title"`
	Topic         string    `json:"topic" db:"topic"`
	Author        string    `json:"author" db:"author"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	Votes         int       `json:"votes" db:"votes"`
	ArticleImgURL string    `json:"article_img_url" db:"article_img_url"`
	CommentCount  int       `json:"comment_count" db:"comment_count"`
	AvatarURL     string    `json:"avatar_url" db:"avatar_url"`
}

// ArticlePage is the response payload for the paginated listing
type ArticlePage struct {
	Articles   []ArticleSummary `json:"articles"`
	TotalCount int              `json:"total_count"`
}

// NewArticle is the request body for article creation
type NewArticle struct {
	Title         string `json:"title"`
	Topic         string `json:"topic"`
	Author        string `json:"author"`
	Body          string `json:"body"`
	ArticleImgURL string `json:"article_img_url"`
}

// VotePatch is the request body for vote-delta updates. VoteDifference is
// a pointer so a missing field is distinguishable from an explicit zero.
type VotePatch struct {
	VoteDifference *int `json:"voteDifference"`
}
