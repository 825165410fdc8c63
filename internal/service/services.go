package service

import (
	"context"
	"fmt"

	"github.com/news-board-api/internal/config"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/query"
	"github.com/news-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// TopicService defines the interface for topic operations
type TopicService interface {
	List(ctx context.Context) ([]models.Topic, error)
}

// UserService defines the interface for user operations
type UserService interface {
	List(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// ArticleService defines the interface for article operations
type ArticleService interface {
	List(ctx context.Context, sortBy, order, topic, limit, page string) (*models.ArticlePage, error)
	GetByID(ctx context.Context, id int) (*models.Article, error)
	Create(ctx context.Context, article *models.NewArticle) (*models.Article, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	ListForArticle(ctx context.Context, articleID int) ([]models.Comment, error)
	Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error)
	UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error)
	Delete(ctx context.Context, id int) error
}

// StatsService reports row counts for the metrics endpoint
type StatsService interface {
	GetCount(ctx context.Context, resource string) (int, error)
}

// Services holds all service interfaces
type Services struct {
	Topic   TopicService
	User    UserService
	Article ArticleService
	Comment CommentService
	Stats   StatsService
}

// NewServices creates all services. The listing validator's topic
// allow-list is loaded from the topics table once here; topics are seed
// data and do not change while the process runs.
func NewServices(ctx context.Context, repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) (*Services, error) {
	slugs, err := repos.Topic.Slugs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load topic slugs: %w", err)
	}
	validator := query.NewValidator(slugs)

	return &Services{
		Topic:   newTopicService(repos.Topic, log),
		User:    newUserService(repos.User, log),
		Article: newArticleService(repos.Article, validator, &cfg.API, log),
		Comment: newCommentService(repos.Comment, repos.Article, log),
		Stats:   newStatsService(repos, log),
	}, nil
}
