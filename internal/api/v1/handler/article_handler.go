package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/service"

	"github.com/rs/zerolog"
)

// ArticleHandler handles news article endpoints
type ArticleHandler struct {
	articleService service.ArticleService
	logger         zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService service.ArticleService, logger zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, logger: logger}
}

// RegisterRoutes mounts article routes. All reads are public.
func (h *ArticleHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/articles", h.listArticles)
	mux.HandleFunc("/articles/", h.getArticle)
}

// listArticles godoc
// @Summary List articles
// @Description Returns a page of news articles, newest first.
// @Tags articles
// @Produce json
// @Param category query string false "Filter by category"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {array} model.Article
// @Failure 500 {string} string "Failed to list articles"
// @Router /articles [get]
func (h *ArticleHandler) listArticles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	limit, offset := parsePagination(r)
	articles, err := h.articleService.ListArticles(r.Context(), r.URL.Query().Get("category"), limit, offset)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list articles")
		http.Error(w, "Failed to list articles", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(articles)
}

// getArticle godoc
// @Summary Get an article
// @Description Returns one article by its ID.
// @Tags articles
// @Produce json
// @Param articleId path string true "Article ID"
// @Success 200 {object} model.Article
// @Failure 404 {string} string "Article not found"
// @Failure 500 {string} string "Failed to retrieve article"
// @Router /articles/{articleId} [get]
func (h *ArticleHandler) getArticle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	articleID := strings.TrimPrefix(r.URL.Path, "/articles/")
	article, err := h.articleService.GetArticleByID(r.Context(), articleID)
	if err != nil {
		h.logger.Error().Err(err).Str("article_id", articleID).Msg("failed to retrieve article")
		http.Error(w, "Failed to retrieve article", http.StatusInternalServerError)
		return
	}
	if article == nil {
		http.Error(w, "Article not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(article)
}
