package repository

import (
	"context"
	"database/sql"

	"github.com/news-board-api/internal/database"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/query"
)

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// ListByArticle retrieves an article's comments, newest first
func (r *commentRepo) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	rows, err := r.db.QueryContext(ctx, query.CommentsByArticleID(), articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := []models.Comment{}
	for rows.Next() {
		var c models.Comment
		err := rows.Scan(&c.CommentID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Insert creates a new comment. A missing username surfaces as a
// foreign-key violation from the store.
func (r *commentRepo) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	stmt := `
		INSERT INTO comments (article_id, author, body, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING comment_id, body, author, article_id, votes, created_at
	`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, stmt, articleID, username, body).Scan(
		&c.CommentID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// AddVotes applies an additive vote delta atomically and returns the
// updated row, nil when the comment does not exist
func (r *commentRepo) AddVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	stmt := `
		UPDATE comments SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, body, author, article_id, votes, created_at
	`

	var c models.Comment
	err := r.db.QueryRowContext(ctx, stmt, delta, id).Scan(
		&c.CommentID, &c.Body, &c.Author, &c.ArticleID, &c.Votes, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Delete removes a comment, reporting whether a row was affected
func (r *commentRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM comments WHERE comment_id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Exists checks if a comment with the given id exists
func (r *commentRepo) Exists(ctx context.Context, id int) (bool, error) {
	return rowExists(ctx, r.db, "comments", "comment_id", id)
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}
