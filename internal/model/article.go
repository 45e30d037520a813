package model

import "time"

// Article represents a bilingual AI-news article
type Article struct {
	ID          string    `db:"id" json:"id"`
	TitleEN     string    `db:"title_en" json:"title_en"`
	TitleES     string    `db:"title_es" json:"title_es"`
	SummaryEN   string    `db:"summary_en" json:"summary_en"`
	SummaryES   string    `db:"summary_es" json:"summary_es"`
	ContentEN   string    `db:"content_en" json:"content_en"`
	ContentES   string    `db:"content_es" json:"content_es"`
	Category    string    `db:"category" json:"category"`
	ImageURL    string    `db:"image_url" json:"image_url"`
	SourceURL   string    `db:"source_url" json:"source_url"`
	SourceName  string    `db:"source_name" json:"source_name"`
	PublishedAt time.Time `db:"published_at" json:"published_at"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
