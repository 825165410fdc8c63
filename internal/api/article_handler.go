package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/news-board-api/internal/apierr"
	"github.com/news-board-api/internal/models"
	"github.com/news-board-api/internal/service"
	"github.com/rs/zerolog"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// List handles GET /api/articles?sort_by=&order=&topic=&limit=&p=
func (h *ArticleHandler) List(c *gin.Context) {
	page, err := h.services.Article.List(
		c.Request.Context(),
		c.Query("sort_by"),
		c.Query("order"),
		c.Query("topic"),
		c.Query("limit"),
		c.Query("p"),
	)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetByID handles GET /api/articles/:article_id
func (h *ArticleHandler) GetByID(c *gin.Context) {
	id, err := service.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	article, err := h.services.Article.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

// Create handles POST /api/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req models.NewArticle
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.log, apierr.BadRequest(apierr.MsgBadRequest))
		return
	}

	article, err := h.services.Article.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"newArticle": article})
}

// UpdateVotes handles PATCH /api/articles/:article_id
func (h *ArticleHandler) UpdateVotes(c *gin.Context) {
	id, err := service.ParseID(c.Param("article_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	var patch models.VotePatch
	if err := c.ShouldBindJSON(&patch); err != nil || patch.VoteDifference == nil {
		respondError(c, h.log, apierr.BadRequest(apierr.MsgBadRequest))
		return
	}

	article, err := h.services.Article.UpdateVotes(c.Request.Context(), id, *patch.VoteDifference)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updatedArticle": article})
}
