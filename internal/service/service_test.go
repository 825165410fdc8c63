package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/config"
	"github.com/news-board-api/internal/mocks"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/news-board-api/internal/service"
	"github.com/rs/zerolog"
)

type testEnv struct {
	services *service.Services
	topics   *mocks.MockTopicRepository
	users    *mocks.MockUserRepository
	articles *mocks.MockArticleRepository
	comments *mocks.MockCommentRepository
}

// setupServices wires the services over seeded mock repositories: three
// topics, two users, 13 articles (9 mitch, 4 cats), and two comments on
// article 1.
func setupServices(t *testing.T) *testEnv {
	t.Helper()

	topics := mocks.NewMockTopicRepository(
		models.Topic{Slug: "mitch", Description: "The man, the Mitch, the legend"},
		models.Topic{Slug: "cats", Description: "Not dogs"},
		models.Topic{Slug: "paper", Description: "what books are made of"},
	)

	users := mocks.NewMockUserRepository()
	users.Users["butter_bridge"] = &models.User{Username: "butter_bridge", Name: "jonny", AvatarURL: "https://example.com/butter.jpg"}
	users.Users["icellusedkars"] = &models.User{Username: "icellusedkars", Name: "sam", AvatarURL: "https://example.com/sam.jpg"}

	comments := mocks.NewMockCommentRepository()
	comments.KnownUsers = map[string]bool{"butter_bridge": true, "icellusedkars": true}

	articles := mocks.NewMockArticleRepository()
	articles.Comments = comments
	articles.KnownTopics = map[string]bool{"mitch": true, "cats": true, "paper": true}
	articles.KnownUsers = map[string]bool{"butter_bridge": true, "icellusedkars": true}

	base := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= 13; i++ {
		topic := "mitch"
		if i%3 == 0 {
			topic = "cats"
		}
		articles.Articles[i] = &models.Article{
			ArticleID:     i,
			Title:         fmt.Sprintf("Article %d", i),
			Topic:         topic,
			Author:        "butter_bridge",
			Body:          "some text",
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
			Votes:         100,
			ArticleImgURL: models.DefaultArticleImgURL,
		}
	}
	articles.NextID = 14

	comments.Comments[1] = &models.Comment{CommentID: 1, Body: "first", Author: "icellusedkars", ArticleID: 1, CreatedAt: base.Add(time.Minute)}
	comments.Comments[2] = &models.Comment{CommentID: 2, Body: "second", Author: "butter_bridge", ArticleID: 1, CreatedAt: base.Add(2 * time.Minute)}
	comments.NextID = 3

	repos := &repository.Repositories{
		Topic:   topics,
		User:    users,
		Article: articles,
		Comment: comments,
	}
	cfg := &config.Config{API: config.APIConfig{DefaultPageSize: 10, MaxPageSize: 100}}

	services, err := service.NewServices(context.Background(), repos, cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewServices failed: %v", err)
	}

	return &testEnv{
		services: services,
		topics:   topics,
		users:    users,
		articles: articles,
		comments: comments,
	}
}

func wantRejection(t *testing.T, err error, status int, msg string) {
	t.Helper()
	gotStatus, gotMsg := apierr.Translate(err)
	if gotStatus != status {
		t.Errorf("Expected status %d, got %d (err: %v)", status, gotStatus, err)
	}
	if gotMsg != msg {
		t.Errorf("Expected msg %q, got %q", msg, gotMsg)
	}
}

func TestListArticles_SecondPageOfThirteen(t *testing.T) {
	env := setupServices(t)

	page, err := env.services.Article.List(context.Background(), "", "", "", "", "2")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(page.Articles) != 3 {
		t.Errorf("Expected 3 articles on page 2 of 13, got %d", len(page.Articles))
	}
	if page.TotalCount != 13 {
		t.Errorf("Expected total_count 13, got %d", page.TotalCount)
	}
}

func TestListArticles_PageBeyondRangeIsEmptyNotError(t *testing.T) {
	env := setupServices(t)

	page, err := env.services.Article.List(context.Background(), "", "", "", "", "9")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(page.Articles) != 0 {
		t.Errorf("Expected empty page, got %d articles", len(page.Articles))
	}
	if page.TotalCount != 13 {
		t.Errorf("Expected total_count 13, got %d", page.TotalCount)
	}
}

func TestListArticles_TopicFilterScopesTotalCount(t *testing.T) {
	env := setupServices(t)

	page, err := env.services.Article.List(context.Background(), "", "", "cats", "", "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if page.TotalCount != 4 {
		t.Errorf("Expected total_count 4 for cats, got %d", page.TotalCount)
	}
	for _, a := range page.Articles {
		if a.Topic != "cats" {
			t.Errorf("Expected only cats articles, got topic %q", a.Topic)
		}
	}
}

func TestListArticles_RejectsDisallowedParameters(t *testing.T) {
	env := setupServices(t)

	tests := []struct {
		name    string
		sortBy  string
		order   string
		topic   string
		wantMsg string
	}{
		{"bad sort column", "bananas", "", "", "Bad Request: Invalid Sort_By Query"},
		{"bad order", "", "sideways", "", "Bad Request: Invalid Order Query"},
		{"unknown topic", "", "", "dogs", "Bad Request: Invalid Topic Query"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.services.Article.List(context.Background(), tt.sortBy, tt.order, tt.topic, "", "")
			if err == nil {
				t.Fatal("Expected a rejection")
			}
			wantRejection(t, err, 400, tt.wantMsg)
		})
	}
}

func TestGetArticle_NotFound(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Article.GetByID(context.Background(), 999)
	wantRejection(t, err, 404, service.MsgArticleNotFound)
}

func TestGetArticle_CommentCountMatchesLiveComments(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	article, err := env.services.Article.GetByID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if article.CommentCount != 2 {
		t.Errorf("Expected comment_count 2, got %d", article.CommentCount)
	}

	// Posting a comment bumps the derived count
	_, err = env.services.Comment.Create(ctx, 1, &models.NewComment{Username: "butter_bridge", Body: "This is just a test comment"})
	if err != nil {
		t.Fatalf("Create comment failed: %v", err)
	}
	article, _ = env.services.Article.GetByID(ctx, 1)
	if article.CommentCount != 3 {
		t.Errorf("Expected comment_count 3 after posting, got %d", article.CommentCount)
	}

	// Deleting one lowers it again
	if err := env.services.Comment.Delete(ctx, 1); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	article, _ = env.services.Article.GetByID(ctx, 1)
	if article.CommentCount != 2 {
		t.Errorf("Expected comment_count 2 after deleting, got %d", article.CommentCount)
	}
}

func TestCreateArticle_DefaultsImageURL(t *testing.T) {
	env := setupServices(t)

	created, err := env.services.Article.Create(context.Background(), &models.NewArticle{
		Title:  "Fresh",
		Topic:  "mitch",
		Author: "butter_bridge",
		Body:   "text",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ArticleImgURL != models.DefaultArticleImgURL {
		t.Errorf("Expected placeholder image URL, got %q", created.ArticleImgURL)
	}
	if created.CommentCount != 0 {
		t.Errorf("Expected comment_count 0 on a new article, got %d", created.CommentCount)
	}
	if created.Votes != 0 {
		t.Errorf("Expected votes 0 on a new article, got %d", created.Votes)
	}
}

func TestCreateArticle_MissingRequiredField(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Article.Create(context.Background(), &models.NewArticle{
		Title:  "No body",
		Topic:  "mitch",
		Author: "butter_bridge",
	})
	wantRejection(t, err, 400, apierr.MsgBadRequest)
}

func TestCreateArticle_UnknownTopicIsBadRequestNotNotFound(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Article.Create(context.Background(), &models.NewArticle{
		Title:  "Stray",
		Topic:  "dogs",
		Author: "butter_bridge",
		Body:   "text",
	})
	wantRejection(t, err, 400, apierr.MsgBadRequest)
}

func TestArticleVotes_DeltaIsInvertible(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	before, _ := env.services.Article.GetByID(ctx, 1)

	down, err := env.services.Article.UpdateVotes(ctx, 1, -50)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if down.Votes != before.Votes-50 {
		t.Errorf("Expected votes %d, got %d", before.Votes-50, down.Votes)
	}

	up, err := env.services.Article.UpdateVotes(ctx, 1, 50)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if up.Votes != before.Votes {
		t.Errorf("Expected votes restored to %d, got %d", before.Votes, up.Votes)
	}
}

func TestArticleVotes_VotesMayGoNegative(t *testing.T) {
	env := setupServices(t)

	updated, err := env.services.Article.UpdateVotes(context.Background(), 2, -150)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if updated.Votes != -50 {
		t.Errorf("Expected votes -50, got %d", updated.Votes)
	}
}

func TestArticleVotes_MissingArticle(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Article.UpdateVotes(context.Background(), 999, 1)
	wantRejection(t, err, 404, service.MsgArticleNotFound)
}

func TestListComments_ExistingArticleWithNoComments(t *testing.T) {
	env := setupServices(t)

	comments, err := env.services.Comment.ListForArticle(context.Background(), 2)
	if err != nil {
		t.Fatalf("ListForArticle failed: %v", err)
	}
	if len(comments) != 0 {
		t.Errorf("Expected no comments, got %d", len(comments))
	}
}

func TestListComments_MissingArticleBeatsEmptyResult(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Comment.ListForArticle(context.Background(), 999)
	wantRejection(t, err, 404, service.MsgArticleNotFound)
}

func TestListComments_NewestFirst(t *testing.T) {
	env := setupServices(t)

	comments, err := env.services.Comment.ListForArticle(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListForArticle failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].CommentID != 2 || comments[1].CommentID != 1 {
		t.Errorf("Expected newest first, got order %d, %d", comments[0].CommentID, comments[1].CommentID)
	}
}

func TestCreateComment_Succeeds(t *testing.T) {
	env := setupServices(t)

	created, err := env.services.Comment.Create(context.Background(), 1, &models.NewComment{
		Username: "butter_bridge",
		Body:     "This is just a test comment",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Votes != 0 {
		t.Errorf("Expected votes 0, got %d", created.Votes)
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected a server-assigned created_at")
	}
	if created.Author != "butter_bridge" || created.ArticleID != 1 {
		t.Errorf("Unexpected comment: %+v", created)
	}
}

func TestCreateComment_EmptyFields(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Comment.Create(context.Background(), 1, &models.NewComment{Username: "butter_bridge"})
	wantRejection(t, err, 400, apierr.MsgBadRequest)

	_, err = env.services.Comment.Create(context.Background(), 1, &models.NewComment{Body: "no author"})
	wantRejection(t, err, 400, apierr.MsgBadRequest)
}

func TestCreateComment_UnknownUserIsBadRequestNotNotFound(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Comment.Create(context.Background(), 1, &models.NewComment{
		Username: "nobody",
		Body:     "hello",
	})
	wantRejection(t, err, 400, apierr.MsgBadRequest)
}

func TestCreateComment_MissingArticleWinsOverInsertFailure(t *testing.T) {
	env := setupServices(t)

	// Both the existence check and the insert reject here; the article's
	// 404 must be the one reported regardless of which finished first.
	_, err := env.services.Comment.Create(context.Background(), 999, &models.NewComment{
		Username: "nobody",
		Body:     "hello",
	})
	wantRejection(t, err, 404, service.MsgArticleNotFound)
}

func TestCommentVotes_DeltaIsInvertible(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	down, err := env.services.Comment.UpdateVotes(ctx, 1, -50)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if down.Votes != -50 {
		t.Errorf("Expected votes -50, got %d", down.Votes)
	}

	up, err := env.services.Comment.UpdateVotes(ctx, 1, 50)
	if err != nil {
		t.Fatalf("UpdateVotes failed: %v", err)
	}
	if up.Votes != 0 {
		t.Errorf("Expected votes restored to 0, got %d", up.Votes)
	}
}

func TestCommentVotes_MissingComment(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.Comment.UpdateVotes(context.Background(), 999, 1)
	wantRejection(t, err, 404, service.MsgCommentNotFound)
}

func TestDeleteComment_TwiceIsNotFoundSecondTime(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	if err := env.services.Comment.Delete(ctx, 1); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}

	err := env.services.Comment.Delete(ctx, 1)
	wantRejection(t, err, 404, service.MsgCommentNotFound)
}

func TestDeleteComment_FirstDeleteAlwaysSucceeds(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	// Deleting an existing comment must deterministically succeed; seed
	// and delete repeatedly to catch any nondeterminism in the pipeline.
	for i := 0; i < 500; i++ {
		created, err := env.services.Comment.Create(ctx, 1, &models.NewComment{
			Username: "butter_bridge",
			Body:     "short-lived",
		})
		if err != nil {
			t.Fatalf("iteration %d: Create failed: %v", i, err)
		}

		if err := env.services.Comment.Delete(ctx, created.CommentID); err != nil {
			t.Fatalf("iteration %d: first delete of an existing comment failed: %v", i, err)
		}
	}
}

func TestGetUser_NotFound(t *testing.T) {
	env := setupServices(t)

	_, err := env.services.User.GetByUsername(context.Background(), "nobody")
	wantRejection(t, err, 404, service.MsgUserNotFound)
}

func TestGetUser_Found(t *testing.T) {
	env := setupServices(t)

	user, err := env.services.User.GetByUsername(context.Background(), "butter_bridge")
	if err != nil {
		t.Fatalf("GetByUsername failed: %v", err)
	}
	if user.Name != "jonny" {
		t.Errorf("Expected name jonny, got %q", user.Name)
	}
}

func TestStats_Counts(t *testing.T) {
	env := setupServices(t)
	ctx := context.Background()

	articles, err := env.services.Stats.GetCount(ctx, "articles")
	if err != nil {
		t.Fatalf("GetCount failed: %v", err)
	}
	if articles != 13 {
		t.Errorf("Expected 13 articles, got %d", articles)
	}

	if _, err := env.services.Stats.GetCount(ctx, "bananas"); err == nil {
		t.Error("Expected an error for an unknown resource")
	}
}

func TestParseID(t *testing.T) {
	if _, err := service.ParseID("not-a-number"); err == nil {
		t.Error("Expected a rejection for a non-integer id")
	} else {
		wantRejection(t, err, 400, apierr.MsgBadRequest)
	}

	id, err := service.ParseID("42")
	if err != nil || id != 42 {
		t.Errorf("Expected 42, got %d (err %v)", id, err)
	}
}

func TestNewServices_SlugLoadFailure(t *testing.T) {
	topics := mocks.NewMockTopicRepository()
	topics.SlugsErr = errors.New("connection refused")

	repos := &repository.Repositories{
		Topic:   topics,
		User:    mocks.NewMockUserRepository(),
		Article: mocks.NewMockArticleRepository(),
		Comment: mocks.NewMockCommentRepository(),
	}
	cfg := &config.Config{API: config.APIConfig{DefaultPageSize: 10, MaxPageSize: 100}}

	if _, err := service.NewServices(context.Background(), repos, cfg, zerolog.Nop()); err == nil {
		t.Error("Expected NewServices to fail when topic slugs cannot load")
	}
}
