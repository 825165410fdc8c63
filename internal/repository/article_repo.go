package repository

import (
	"context"
	"database/sql"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/query"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Page retrieves one page of article summaries per the validated options
func (r *articleRepo) Page(ctx context.Context, opts query.ListOptions) ([]models.ArticleSummary, error) {
	stmt, args := query.ArticlePage(opts)

	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []models.ArticleSummary{}
	for rows.Next() {
		var a models.ArticleSummary
		err := rows.Scan(
			&a.ArticleID, &a.Title, &a.Topic, &a.Author,
			&a.CreatedAt, &a.Votes, &a.ArticleImgURL,
			&a.AvatarURL, &a.CommentCount,
		)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// Count returns the number of articles matching the topic filter only;
// pagination does not affect it
func (r *articleRepo) Count(ctx context.Context, topic string) (int, error) {
	stmt, args := query.ArticleCount(topic)

	var count int
	err := r.db.QueryRowContext(ctx, stmt, args...).Scan(&count)
	return count, err
}

// GetByID retrieves a full article with its comment count, nil when absent
func (r *articleRepo) GetByID(ctx context.Context, id int) (*models.Article, error) {
	var a models.Article
	err := r.db.QueryRowContext(ctx, query.ArticleByID(), id).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
		&a.CommentCount,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Insert creates a new article. created_at is set server-side; a fresh
// article has zero comments, so comment_count needs no join here.
func (r *articleRepo) Insert(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	stmt := `
		INSERT INTO articles (title, topic, author, body, article_img_url, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING article_id, title, topic, author, body, created_at, votes, article_img_url
	`

	var a models.Article
	err := r.db.QueryRowContext(ctx, stmt,
		article.Title, article.Topic, article.Author, article.Body, article.ArticleImgURL,
	).Scan(
		&a.ArticleID, &a.Title, &a.Topic, &a.Author,
		&a.Body, &a.CreatedAt, &a.Votes, &a.ArticleImgURL,
	)
	if err != nil {
		return nil, err
	}
	a.CommentCount = 0
	return &a, nil
}

// AddVotes applies an additive vote delta atomically in the store
func (r *articleRepo) AddVotes(ctx context.Context, id, delta int) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE articles SET votes = votes + $1 WHERE article_id = $2", delta, id)
	return err
}

// Exists checks if an article with the given id exists
func (r *articleRepo) Exists(ctx context.Context, id int) (bool, error) {
	return rowExists(ctx, r.db, "articles", "article_id", id)
}
