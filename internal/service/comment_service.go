package service

import (
	"context"

	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/repository"
	"github.com/rs/zerolog"
)

// MsgCommentNotFound is the rejection message for a missing comment
const MsgCommentNotFound = "Comment Not Found"

// commentService is the concrete implementation of CommentService
type commentService struct {
	comments repository.CommentRepository
	articles repository.ArticleRepository
	log      zerolog.Logger
}

func newCommentService(comments repository.CommentRepository, articles repository.ArticleRepository, log zerolog.Logger) CommentService {
	return &commentService{
		comments: comments,
		articles: articles,
		log:      log.With().Str("service", "comment").Logger(),
	}
}

// ListForArticle fetches an article's comments concurrently with the
// article existence check. The existence rejection wins even when the
// fetch would have returned an empty list.
func (s *commentService) ListForArticle(ctx context.Context, articleID int) ([]models.Comment, error) {
	var comments []models.Comment
	err := fanout(ctx,
		s.articleExistsCall(articleID),
		func(ctx context.Context) error {
			var err error
			comments, err = s.comments.ListByArticle(ctx, articleID)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// Create posts a comment on an article. Username and body are required;
// an unknown username surfaces as a foreign-key violation from the store
// and translates to a 400, while a missing article is the existence
// check's 404.
func (s *commentService) Create(ctx context.Context, articleID int, comment *models.NewComment) (*models.Comment, error) {
	if comment.Username == "" || comment.Body == "" {
		return nil, apierr.BadRequest(apierr.MsgBadRequest)
	}

	var created *models.Comment
	err := fanout(ctx,
		s.articleExistsCall(articleID),
		func(ctx context.Context) error {
			var err error
			created, err = s.comments.Insert(ctx, articleID, comment.Username, comment.Body)
			return err
		},
	)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int("comment_id", created.CommentID).Int("article_id", articleID).Msg("Comment created")
	return created, nil
}

// UpdateVotes applies an additive vote delta concurrently with the
// existence check and returns the updated row
func (s *commentService) UpdateVotes(ctx context.Context, id, delta int) (*models.Comment, error) {
	var updated *models.Comment
	err := fanout(ctx,
		s.commentExistsCall(id),
		func(ctx context.Context) error {
			var err error
			updated, err = s.comments.AddVotes(ctx, id, delta)
			return err
		},
	)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apierr.NotFound(MsgCommentNotFound)
	}

	s.log.Info().Int("comment_id", id).Int("delta", delta).Int("votes", updated.Votes).Msg("Comment votes updated")
	return updated, nil
}

// Delete removes a comment. No concurrent existence check here: it would
// race the delete of the very row it reads, turning a successful delete
// into a spurious NotFound. The rows-affected result already distinguishes
// a real delete from a missing comment.
func (s *commentService) Delete(ctx context.Context, id int) error {
	deleted, err := s.comments.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apierr.NotFound(MsgCommentNotFound)
	}

	s.log.Info().Int("comment_id", id).Msg("Comment deleted")
	return nil
}

// articleExistsCall wraps the parent-article existence check as a fan-out call
func (s *commentService) articleExistsCall(articleID int) func(context.Context) error {
	return func(ctx context.Context) error {
		exists, err := s.articles.Exists(ctx, articleID)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.NotFound(MsgArticleNotFound)
		}
		return nil
	}
}

// commentExistsCall wraps the comment existence check as a fan-out call
func (s *commentService) commentExistsCall(id int) func(context.Context) error {
	return func(ctx context.Context) error {
		exists, err := s.comments.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return apierr.NotFound(MsgCommentNotFound)
		}
		return nil
	}
}
