package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/service"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListForArticle handles GET /api/articles/:article_id/comments
func (h *CommentHandler) ListForArticle(c *gin.Context) {
	articleID, err := service.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	comments, err := h.services.Comment.ListForArticle(c.Request.Context(), articleID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// Create handles POST /api/articles/:article_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	articleID, err := service.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var req models.NewComment
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, apierr.BadRequest(apierr.MsgBadRequest))
		return
	}

	comment, err := h.services.Comment.Create(c.Request.Context(), articleID, &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// UpdateVotes handles PATCH /api/comments/:comment_id
func (h *CommentHandler) UpdateVotes(c *gin.Context) {
	id, err := service.ParseID(c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var patch models.VotePatch
	if err := c.ShouldBindJSON(&patch); err != nil || patch.VoteDifference == nil {
		respondError(c, h.log, apierr.BadRequest(apierr.MsgBadRequest))
		return
	}

	comment, err := h.services.Comment.UpdateVotes(c.Request.Context(), id, *patch.VoteDifference)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedComment": comment})
}

// Delete handles DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := service.ParseID(c.Param("comment_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	if err := h.services.Comment.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
