package service

import (
	"context"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/repository"
)

// ArticleService defines article read operations
type ArticleService interface {
	ListArticles(ctx context.Context, category string, limit, offset int) ([]model.Article, error)
	// GetArticleByID returns the article, or (nil, nil) when absent
	GetArticleByID(ctx context.Context, articleID string) (*model.Article, error)
}

// articleService is the implementation of ArticleService
type articleService struct {
	repo repository.ArticleRepository
}

// NewArticleService creates a new ArticleService
func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleService{repo: repo}
}

func (s *articleService) ListArticles(ctx context.Context, category string, limit, offset int) ([]model.Article, error) {
	return s.repo.ListArticles(ctx, category, limit, offset)
}

func (s *articleService) GetArticleByID(ctx context.Context, articleID string) (*model.Article, error) {
	return s.repo.GetArticleByID(ctx, articleID)
}
