package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/news-board-api/internal/mocks"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/query"
)

func TestMockArticleRepository_PageAndCount(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 13; i++ {
		repo.Articles[i] = &models.Article{
			ArticleID: i,
			Title:     "Article",
			Topic:     "mitch",
			Author:    "butter_bridge",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}

	opts := query.NormalizeList("", "", "", "", "2", 10, 100)
	page, err := repo.Page(ctx, opts)
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if len(page) != 3 {
		t.Errorf("Expected 3 rows on page 2 of 13, got %d", len(page))
	}

	count, err := repo.Count(ctx, "mitch")
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 13 {
		t.Errorf("Expected count 13, got %d", count)
	}

	count, _ = repo.Count(ctx, "cats")
	if count != 0 {
		t.Errorf("Expected count 0 for cats, got %d", count)
	}
}

func TestMockArticleRepository_VotesAreAdditive(t *testing.T) {
	repo := mocks.NewMockArticleRepository()
	ctx := context.Background()

	repo.Articles[1] = &models.Article{ArticleID: 1, Votes: 10}

	if err := repo.AddVotes(ctx, 1, -25); err != nil {
		t.Fatalf("AddVotes failed: %v", err)
	}
	article, _ := repo.GetByID(ctx, 1)
	if article.Votes != -15 {
		t.Errorf("Expected votes -15, got %d", article.Votes)
	}
}

func TestMockCommentRepository_DeleteReportsAffectedRows(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	repo.Comments[1] = &models.Comment{CommentID: 1, ArticleID: 1}

	deleted, err := repo.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !deleted {
		t.Error("Expected first delete to affect a row")
	}

	deleted, err = repo.Delete(ctx, 1)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted {
		t.Error("Expected second delete to affect nothing")
	}

	exists, _ := repo.Exists(ctx, 1)
	if exists {
		t.Error("Deleted comment must not exist")
	}
}

func TestMockCommentRepository_ListByArticleNewestFirst(t *testing.T) {
	repo := mocks.NewMockCommentRepository()
	ctx := context.Background()

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.Comments[1] = &models.Comment{CommentID: 1, ArticleID: 7, CreatedAt: base}
	repo.Comments[2] = &models.Comment{CommentID: 2, ArticleID: 7, CreatedAt: base.Add(time.Hour)}
	repo.Comments[3] = &models.Comment{CommentID: 3, ArticleID: 8, CreatedAt: base.Add(2 * time.Hour)}

	comments, err := repo.ListByArticle(ctx, 7)
	if err != nil {
		t.Fatalf("ListByArticle failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments for article 7, got %d", len(comments))
	}
	if comments[0].CommentID != 2 {
		t.Errorf("Expected newest comment first, got id %d", comments[0].CommentID)
	}
}
