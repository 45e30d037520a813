package repository

import (
	"context"
	"database/sql"

	"github.com/AlfonsoCifuentes/ainews-platform-sub008/internal/model"
)

// ArticleRepository defines the interface for interacting with news articles
type ArticleRepository interface {
	ListArticles(ctx context.Context, category string, limit, offset int) ([]model.Article, error)
	// GetArticleByID retrieves an article, or (nil, nil) when absent
	GetArticleByID(ctx context.Context, articleID string) (*model.Article, error)
}

type articleRepo struct {
	db *sql.DB
}

// NewArticleRepo creates a new ArticleRepository
func NewArticleRepo(db *sql.DB) ArticleRepository {
	return &articleRepo{db: db}
}

const articleColumns = `
	id, title_en, title_es, summary_en, summary_es, content_en, content_es,
	category, image_url, source_url, source_name, published_at, created_at
`

// ListArticles returns published articles newest first, optionally filtered by
// category.
func (r *articleRepo) ListArticles(ctx context.Context, category string, limit, offset int) ([]model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE ($1 = '' OR category = $1)
		ORDER BY published_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.QueryContext(ctx, query, category, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := []model.Article{}
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID, &a.TitleEN, &a.TitleES, &a.SummaryEN, &a.SummaryES,
			&a.ContentEN, &a.ContentES, &a.Category, &a.ImageURL,
			&a.SourceURL, &a.SourceName, &a.PublishedAt, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetArticleByID retrieves an article by its ID
func (r *articleRepo) GetArticleByID(ctx context.Context, articleID string) (*model.Article, error) {
	query := `
		SELECT ` + articleColumns + `
		FROM articles
		WHERE id = $1
	`
	var a model.Article
	err := r.db.QueryRowContext(ctx, query, articleID).Scan(
		&a.ID, &a.TitleEN, &a.TitleES, &a.SummaryEN, &a.SummaryES,
		&a.ContentEN, &a.ContentES, &a.Category, &a.ImageURL,
		&a.SourceURL, &a.SourceName, &a.PublishedAt, &a.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
