package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/unistone/campus/internal/app/models/dto"
	"github.com/unistone/campus/internal/app/services"
	"github.com/unistone/campus/internal/middleware"
)

// NewsController handles news feed operations
type NewsController struct {
	newsService services.NewsService
	logger      zerolog.Logger
}

// NewNewsController creates a new NewsController
func NewNewsController(newsService services.NewsService, logger zerolog.Logger) *NewsController {
	return &NewsController{
		newsService: newsService,
		logger:      logger,
	}
}

// ListNews returns the campus news feed
// @Summary List news articles
// @Tags news
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StructuredResponse{data=[]models.NewsArticle} "Articles"
// @Router /news [get]
func (c *NewsController) ListNews(ctx *gin.Context) {
	articles, err := c.newsService.ListNews(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(articles, "Articles"))
}

// GetNews returns one article
// @Summary Get a news article
// @Tags news
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} dto.StructuredResponse{data=models.NewsArticle} "Article"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /news/{id} [get]
func (c *NewsController) GetNews(ctx *gin.Context) {
	article, err := c.newsService.GetNews(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(article, "Article"))
}

// CreateNews publishes an article
// @Summary Publish a news article
// @Description Publishes an article. Source, category and read time fall back to editorial defaults when omitted.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNewsRequest true "Article"
// @Success 201 {object} dto.StructuredResponse{data=models.NewsArticle} "Published article"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Router /admin/news [post]
func (c *NewsController) CreateNews(ctx *gin.Context) {
	var req dto.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	article, err := c.newsService.CreateNews(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewStructuredResponse(article, "Article published"))
}

// UpdateNews replaces an article
// @Summary Update a news article
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Param request body dto.UpdateNewsRequest true "Article"
// @Success 200 {object} dto.StructuredResponse{data=models.NewsArticle} "Updated article"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /admin/news/{id} [put]
func (c *NewsController) UpdateNews(ctx *gin.Context) {
	var req dto.UpdateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	article, err := c.newsService.UpdateNews(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewStructuredResponse(article, "Article updated"))
}

// DeleteNews removes an article
// @Summary Delete a news article
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Article ID"
// @Success 200 {object} dto.SuccessResponse "Deleted"
// @Failure 404 {object} dto.ErrorResponse "Article not found"
// @Router /admin/news/{id} [delete]
func (c *NewsController) DeleteNews(ctx *gin.Context) {
	if err := c.newsService.DeleteNews(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Article deleted"})
}
