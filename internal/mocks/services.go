package mocks

import (
	"context"

	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/service"
)

// MockTopicService is a mock implementation of TopicService
type MockTopicService struct {
	Topics  []models.Topic
	ListErr error
}

// Verify interface compliance
var _ service.TopicService = (*MockTopicService)(nil)

func NewMockTopicService() *MockTopicService {
	return &MockTopicService{Topics: []models.Topic{}}
}

func (m *MockTopicService) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Topics, nil
}

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	Users []models.User
}

// Verify interface compliance
var _ service.UserService = (*MockUserService)(nil)

func NewMockUserService() *MockUserService {
	return &MockUserService{Users: []models.User{}}
}

func (m *MockUserService) List(ctx context.Context) ([]models.User, error) {
	return m.Users, nil
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for i := range m.Users {
		if m.Users[i].Username == username {
			return &m.Users[i], nil
		}
	}
	return nil, apierr.NotFound(service.MsgUserNotFound)
}

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc func(ctx context.Context, sortBy, order, topic, limit, page string) (*models.ArticlePage, error)
	Page     *models.ArticlePage
	Articles map[int]*models.Article
	NextID   int

	CreatedArticles []*models.NewArticle
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Page:     &models.ArticlePage{Articles: []models.ArticleSummary{}},
		Articles: make(map[int]*models.Article),
		NextID:   1,
	}
}

func (m *MockArticleService) List(ctx context.Context, sortBy, order, topic, limit, page string) (*models.ArticlePage, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, sortBy, order, topic, limit, page)
	}
	return m.Page, nil
}

func (m *MockArticleService) GetByID(ctx context.Context, id int) (*models.Article, error) {
	article, ok := m.Articles[id]
	if !ok {
		return nil, apierr.NotFound(service.MsgArticleNotFound)
	}
	return article, nil
}

func (m *MockArticleService) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	if article.Title == "" || article.Topic == "" || article.Author == "" || article.Body == "" {
		return nil, apierr.BadRequest(apierr.MsgBadRequest)
	}
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}
	m.CreatedArticles = append(m.CreatedArticles, article)

	created := &models.Article{
		ArticleID:     m.NextID,
		Title:         article.Title,
		Topic:         article.Topic,
		Author:        article.Author,
		Body:          article.Body,
		ArticleImgURL: article.ArticleImgURL,
	}
	m.Articles[created.ArticleID] = created
	m.NextID++
	return created, nil
}

func (m *MockArticleService) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	article, ok := m.Articles[id]
	if !ok {
		return nil, apierr.NotFound(service.MsgArticleNotFound)
	}
	article.Votes += delta
	return article, nil
}

// MockCommentService is a mock implementation of CommentService
type MockCommentService struct {
	CommentsByArticle map[int][]models.Comment
	Comments          map[int]*models.Comment
	KnownArticles     map[int]bool
	NextID            int
}

// Verify interface compliance
var _ service.CommentService = (*MockCommentService)(nil)

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		CommentsByArticle: make(map[int][]models.Comment),
		Comments:          make(map[int]*models.Comment),
		KnownArticles:     make(map[int]bool),
		NextID:            1,
	}
}

func (m *MockCommentService) ListForArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	if !m.KnownArticles[articleID] {
		return nil, apierr.NotFound(service.MsgArticleNotFound)
	}
	comments, ok := m.CommentsByArticle[articleID]
	if !ok {
		return []models.Comment{}, nil
	}
	return comments, nil
}

func (m *MockCommentService) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if comment.Username == "" || comment.Body == "" {
		return nil, apierr.BadRequest(apierr.MsgBadRequest)
	}
	if !m.KnownArticles[articleID] {
		return nil, apierr.NotFound(service.MsgArticleNotFound)
	}

	created := &models.Comment{
		CommentID: m.NextID,
		Body:      comment.Body,
		Author:    comment.Username,
		ArticleID: articleID,
	}
	m.Comments[created.CommentID] = created
	m.NextID++
	return created, nil
}

func (m *MockCommentService) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	comment, ok := m.Comments[id]
	if !ok {
		return nil, apierr.NotFound(service.MsgCommentNotFound)
	}
	comment.Votes += delta
	return comment, nil
}

func (m *MockCommentService) Delete(ctx context.Context, id int) error {
	if _, ok := m.Comments[id]; !ok {
		return apierr.NotFound(service.MsgCommentNotFound)
	}
	delete(m.Comments, id)
	return nil
}

// MockStatsService is a mock implementation of StatsService
type MockStatsService struct {
	Counts map[string]int
	Errs   map[string]error
}

// Verify interface compliance
var _ service.StatsService = (*MockStatsService)(nil)

func NewMockStatsService() *MockStatsService {
	return &MockStatsService{
		Counts: map[string]int{
			"users":    0,
			"articles": 0,
			"comments": 0,
		},
		Errs: make(map[string]error),
	}
}

func (m *MockStatsService) GetCount(ctx context.Context, resource string) (int, error) {
	if err := m.Errs[resource]; err != nil {
		return 0, err
	}
	return m.Counts[resource], nil
}
