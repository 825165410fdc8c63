package query

import (
	"fmt"
	"strconv"
	"strings"
)

// Listing defaults
const (
	DefaultSortBy = "created_at"
	DefaultOrder  = "desc"
	DefaultLimit  = 10
	DefaultPage   = 1
)

// ListOptions holds normalized, validated article-listing parameters
type ListOptions struct {
	SortBy string
	Order  string
	Topic  string
	Limit  int
	Page   int
}

// Offset returns the row offset for the requested page
func (o ListOptions) Offset() int {
	return (o.Page - 1) * o.Limit
}

// NormalizeList fills defaults into raw listing parameters. sortBy, order,
// and topic must already have passed the Validator; limit and page fall
// back to defaults when absent or non-numeric, and limit is clamped to
// maxLimit.
func NormalizeList(sortBy, order, topic, rawLimit, rawPage string, defaultLimit, maxLimit int) ListOptions {
	opts := ListOptions{
		SortBy: DefaultSortBy,
		Order:  DefaultOrder,
		Topic:  topic,
		Limit:  defaultLimit,
		Page:   DefaultPage,
	}
	if sortBy != "" {
		opts.SortBy = sortBy
	}
	if order != "" {
		opts.Order = strings.ToLower(order)
	}
	if limit, err := strconv.Atoi(rawLimit); err == nil && limit > 0 {
		opts.Limit = limit
	}
	if opts.Limit > maxLimit {
		opts.Limit = maxLimit
	}
	if page, err := strconv.Atoi(rawPage); err == nil && page > 0 {
		opts.Page = page
	}
	return opts
}

// articleSummaryColumns are selected for listing rows: every article
// column except body, plus the author's avatar and the comment count.
const articleSummaryColumns = `
		articles.article_id, articles.title, articles.topic, articles.author,
		articles.created_at, articles.votes, articles.article_img_url,
		users.avatar_url,
		COUNT(comments.comment_id)::INT AS comment_count`

// ArticlePage builds the paginated listing statement. The sort column and
// direction are interpolated as identifier/keyword text, which is safe
// only because ListOptions comes out of NormalizeList after validation;
// topic, limit, and offset are bound parameters.
func ArticlePage(opts ListOptions) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, 3)

	sb.WriteString(`SELECT` + articleSummaryColumns + `
	FROM articles
	JOIN users ON users.username = articles.author
	LEFT JOIN comments ON comments.article_id = articles.article_id`)

	if opts.Topic != "" {
		args = append(args, opts.Topic)
		sb.WriteString(`
	WHERE articles.topic = $1`)
	}

	sb.WriteString(`
	GROUP BY articles.article_id, users.avatar_url`)

	// Ties within equal sort values retain storage order; a single result
	// set is consistent because there is exactly one ORDER BY.
	fmt.Fprintf(&sb, `
	ORDER BY %s %s`, sortExpr(opts.SortBy), strings.ToUpper(opts.Order))

	args = append(args, opts.Limit, opts.Offset())
	fmt.Fprintf(&sb, `
	LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	return sb.String(), args
}

// ArticleCount builds the total-count statement. It honors the topic
// filter only; pagination never affects total_count.
func ArticleCount(topic string) (string, []interface{}) {
	if topic == "" {
		return `SELECT COUNT(*)::INT FROM articles`, nil
	}
	return `SELECT COUNT(*)::INT FROM articles WHERE topic = $1`, []interface{}{topic}
}

// ArticleByID builds the single-article statement, including body and the
// same derived comment count as the listing.
func ArticleByID() string {
	return `SELECT
		articles.article_id, articles.title, articles.topic, articles.author,
		articles.body, articles.created_at, articles.votes, articles.article_img_url,
		COUNT(comments.comment_id)::INT AS comment_count
	FROM articles
	LEFT JOIN comments ON comments.article_id = articles.article_id
	WHERE articles.article_id = $1
	GROUP BY articles.article_id`
}

// CommentsByArticleID builds the per-article comment listing, newest first
func CommentsByArticleID() string {
	return `SELECT comment_id, body, author, article_id, votes, created_at
	FROM comments
	WHERE article_id = $1
	ORDER BY created_at DESC`
}

// sortExpr maps a validated sort column to its ORDER BY expression.
// comment_count sorts on the select alias; everything else is an articles
// column.
func sortExpr(sortBy string) string {
	if sortBy == "comment_count" {
		return "comment_count"
	}
	return "articles." + sortBy
}
