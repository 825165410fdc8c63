package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/lib/pq"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/query"
	"github.com/news-board-api/internal/repository"
)

// MockTopicRepository is a mock implementation of TopicRepository
type MockTopicRepository struct {
	Topics   []models.Topic
	ListErr  error
	SlugsErr error
}

// Verify interface compliance
var _ repository.TopicRepository = (*MockTopicRepository)(nil)

func NewMockTopicRepository(topics ...models.Topic) *MockTopicRepository {
	return &MockTopicRepository{Topics: topics}
}

func (m *MockTopicRepository) List(ctx context.Context) ([]models.Topic, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.Topics, nil
}

func (m *MockTopicRepository) Slugs(ctx context.Context) ([]string, error) {
	if m.SlugsErr != nil {
		return nil, m.SlugsErr
	}
	slugs := make([]string, 0, len(m.Topics))
	for _, topic := range m.Topics {
		slugs = append(slugs, topic.Slug)
	}
	return slugs, nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users map[string]*models.User
}

// Verify interface compliance
var _ repository.UserRepository = (*MockUserRepository)(nil)

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{Users: make(map[string]*models.User)}
}

func (m *MockUserRepository) List(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, user := range m.Users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.Users[username], nil
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	return len(m.Users), nil
}

// MockArticleRepository is a mock implementation of ArticleRepository. It
// holds articles in memory and, when Comments is set, derives comment
// counts from it the way the real queries do.
type MockArticleRepository struct {
	Articles map[int]*models.Article
	Comments *MockCommentRepository
	NextID   int

	// Set to simulate foreign-key enforcement; nil accepts everything
	KnownTopics map[string]bool
	KnownUsers  map[string]bool

	PageFunc   func(ctx context.Context, opts query.ListOptions) ([]models.ArticleSummary, error)
	CountFunc  func(ctx context.Context, topic string) (int, error)
	ExistsFunc func(ctx context.Context, id int) (bool, error)
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[int]*models.Article),
		NextID:   1,
	}
}

// fkViolation mirrors the driver error a missing referenced row produces
func fkViolation() error {
	return &pq.Error{Code: "23503", Message: "foreign key violation"}
}

func (m *MockArticleRepository) sorted() []*models.Article {
	articles := make([]*models.Article, 0, len(m.Articles))
	for _, a := range m.Articles {
		articles = append(articles, a)
	}
	sort.Slice(articles, func(i, j int) bool { return articles[i].ArticleID < articles[j].ArticleID })
	return articles
}

func (m *MockArticleRepository) commentCount(articleID int) int {
	if m.Comments == nil {
		return 0
	}
	count := 0
	for _, c := range m.Comments.Comments {
		if c.ArticleID == articleID {
			count++
		}
	}
	return count
}

func (m *MockArticleRepository) Page(ctx context.Context, opts query.ListOptions) ([]models.ArticleSummary, error) {
	if m.PageFunc != nil {
		return m.PageFunc(ctx, opts)
	}

	matching := []models.ArticleSummary{}
	for _, a := range m.sorted() {
		if opts.Topic != "" && a.Topic != opts.Topic {
			continue
		}
		matching = append(matching, models.ArticleSummary{
			ArticleID:     a.ArticleID,
			Title:         a.Title,
			Topic:         a.Topic,
			Author:        a.Author,
			CreatedAt:     a.CreatedAt,
			Votes:         a.Votes,
			ArticleImgURL: a.ArticleImgURL,
			CommentCount:  m.commentCount(a.ArticleID),
		})
	}

	offset := opts.Offset()
	if offset >= len(matching) {
		return []models.ArticleSummary{}, nil
	}
	end := offset + opts.Limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], nil
}

func (m *MockArticleRepository) Count(ctx context.Context, topic string) (int, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, topic)
	}
	count := 0
	for _, a := range m.Articles {
		if topic == "" || a.Topic == topic {
			count++
		}
	}
	return count, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id int) (*models.Article, error) {
	stored, ok := m.Articles[id]
	if !ok {
		return nil, nil
	}
	article := *stored
	article.CommentCount = m.commentCount(id)
	return &article, nil
}

func (m *MockArticleRepository) Insert(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	if m.KnownTopics != nil && !m.KnownTopics[article.Topic] {
		return nil, fkViolation()
	}
	if m.KnownUsers != nil && !m.KnownUsers[article.Author] {
		return nil, fkViolation()
	}

	created := &models.Article{
		ArticleID:     m.NextID,
		Title:         article.Title,
		Topic:         article.Topic,
		Author:        article.Author,
		Body:          article.Body,
		CreatedAt:     time.Now(),
		Votes:         0,
		ArticleImgURL: article.ArticleImgURL,
	}
	m.Articles[created.ArticleID] = created
	m.NextID++
	return created, nil
}

func (m *MockArticleRepository) AddVotes(ctx context.Context, id, delta int) error {
	if article, ok := m.Articles[id]; ok {
		article.Votes += delta
	}
	return nil
}

func (m *MockArticleRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	_, ok := m.Articles[id]
	return ok, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments map[int]*models.Comment
	NextID   int

	// Set to simulate foreign-key enforcement; nil accepts everything
	KnownUsers map[string]bool

	ExistsFunc func(ctx context.Context, id int) (bool, error)
	InsertFunc func(ctx context.Context, articleID int, username, body string) (*models.Comment, error)
}

// Verify interface compliance
var _ repository.CommentRepository = (*MockCommentRepository)(nil)

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) ListByArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	comments := []models.Comment{}
	for _, c := range m.Comments {
		if c.ArticleID == articleID {
			comments = append(comments, *c)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].CreatedAt.After(comments[j].CreatedAt) })
	return comments, nil
}

func (m *MockCommentRepository) Insert(ctx context.Context, articleID int, username, body string) (*models.Comment, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, articleID, username, body)
	}
	if m.KnownUsers != nil && !m.KnownUsers[username] {
		return nil, fkViolation()
	}

	created := &models.Comment{
		CommentID: m.NextID,
		Body:      body,
		Author:    username,
		ArticleID: articleID,
		Votes:     0,
		CreatedAt: time.Now(),
	}
	m.Comments[created.CommentID] = created
	m.NextID++
	return created, nil
}

func (m *MockCommentRepository) AddVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	comment.Votes += delta
	updated := *comment
	return &updated, nil
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int) (bool, error) {
	if _, ok := m.Comments[id]; !ok {
		return false, nil
	}
	delete(m.Comments, id)
	return true, nil
}

func (m *MockCommentRepository) Exists(ctx context.Context, id int) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	_, ok := m.Comments[id]
	return ok, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}
