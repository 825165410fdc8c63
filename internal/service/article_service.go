package service

import (
	"context"
	"strconv"

	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/config"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/query"
	"github.com/news-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// MsgArticleNotFound is the rejection message for a missing article
const MsgArticleNotFound = "Article Not Found"

// articleService is the concrete implementation of ArticleService
type articleService struct {
	articles  repository.ArticleRepository
	validator *query.Validator
	api       *config.APIConfig
	log       zerolog.Logger
}

func newArticleService(articles repository.ArticleRepository, validator *query.Validator, api *config.APIConfig, log zerolog.Logger) ArticleService {
	return &articleService{
		articles:  articles,
		validator: validator,
		api:       api,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// List validates the listing parameters, then fetches the requested page
// and the filter-wide total concurrently
func (s *articleService) List(ctx context.Context, sortBy, order, topic, limit, page string) (*models.ArticlePage, error) {
	if err := s.validator.Validate(sortBy, order, topic); err != nil {
		return nil, err
	}
	opts := query.NormalizeList(sortBy, order, topic, limit, page, s.api.DefaultPageSize, s.api.MaxPageSize)

	var (
		articles []models.ArticleSummary
		total    int
	)
	err := fanout(ctx,
		func(ctx context.Context) error {
			var err error
			articles, err = s.articles.Page(ctx, opts)
			return err
		},
		func(ctx context.Context) error {
			var err error
			total, err = s.articles.Count(ctx, opts.Topic)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	s.log.Debug().
		Str("sort_by", opts.SortBy).
		Str("order", opts.Order).
		Str("topic", opts.Topic).
		Int("page", opts.Page).
		Int("returned", len(articles)).
		Int("total", total).
		Msg("Listed articles")

	return &models.ArticlePage{Articles: articles, TotalCount: total}, nil
}

// GetByID returns one article with its comment count or a NotFound rejection
func (s *articleService) GetByID(ctx context.Context, id int) (*models.Article, error) {
	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apierr.NotFound(MsgArticleNotFound)
	}
	return article, nil
}

// Create inserts a new article. Title, topic, author, and body are
// required; a missing topic or author row surfaces as a foreign-key
// violation from the store and translates to a 400.
func (s *articleService) Create(ctx context.Context, article *models.NewArticle) (*models.Article, error) {
	if article.Title == "" || article.Topic == "" || article.Author == "" || article.Body == "" {
		return nil, apierr.BadRequest(apierr.MsgBadRequest)
	}
	if article.ArticleImgURL == "" {
		article.ArticleImgURL = models.DefaultArticleImgURL
	}

	created, err := s.articles.Insert(ctx, article)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("article_id", created.ArticleID).Str("topic", created.Topic).Msg("Article created")
	return created, nil
}

// UpdateVotes applies an additive vote delta concurrently with the
// existence check, then re-fetches the row so the response carries the
// derived comment count. The existence rejection takes priority over the
// update's outcome.
func (s *articleService) UpdateVotes(ctx context.Context, id, delta int) (*models.Article, error) {
	err := fanout(ctx,
		s.existsCall(id),
		func(ctx context.Context) error {
			return s.articles.AddVotes(ctx, id, delta)
		},
	)
	if err != nil {
		return nil, err
	}

	article, err := s.articles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, apierr.NotFound(MsgArticleNotFound)
	}

	s.log.Info().Int("article_id", id).Int("delta", delta).Int("votes", article.Votes).Msg("Article votes updated")
	return article, nil
}

// existsCall wraps the existence check as a fan-out call
func (s *articleService) existsCall(id int) func(context.Context) error {
	return func(ctx context.Context) error {
		exists, err := s.articles.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.NotFound(MsgArticleNotFound)
		}
		return nil
	}
}

// ParseID parses a path identifier, rejecting non-integer values before
// they reach storage
func ParseID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apierr.BadRequest(apierr.MsgBadRequest)
	}
	return id, nil
}
